package service

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeService handles employee provisioning and lookup within a team
type EmployeeService struct {
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(userRepo repository.UserRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		userRepo:  userRepo,
		validator: validator,
		log:       logger.ForComponent("employee"),
	}
}

// CreateEmployeeRequest represents the request to provision an employee
type CreateEmployeeRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID       `json:"id"`
	TeamID    uuid.UUID       `json:"team_id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt string          `json:"created_at"`
}

// Create provisions an employee account on the caller's team. Email
// notification of credentials is handled outside this core.
func (s *EmployeeService) Create(teamID uuid.UUID, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		TeamID:       teamID,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleEmployee,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.log.WithField("employee_id", user.ID).Info("employee provisioned")
	return toEmployeeResponse(user), nil
}

// GetByID retrieves an employee scoped to the caller's team
func (s *EmployeeService) GetByID(teamID, id uuid.UUID) (*EmployeeResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if user.TeamID != teamID || user.Role != models.UserRoleEmployee {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return toEmployeeResponse(user), nil
}

// GetByTeam retrieves the active employees of a team
func (s *EmployeeService) GetByTeam(teamID uuid.UUID) ([]EmployeeResponse, error) {
	users, err := s.userRepo.GetEmployeesByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]EmployeeResponse, len(users))
	for i := range users {
		responses[i] = *toEmployeeResponse(&users[i])
	}
	return responses, nil
}

// Update updates an employee's profile fields
func (s *EmployeeService) Update(teamID, id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if user.TeamID != teamID || user.Role != models.UserRoleEmployee {
		return nil, apperrors.ErrEmployeeNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(user), nil
}

// toEmployeeResponse converts a user model to its response form
func toEmployeeResponse(user *models.User) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        user.ID,
		TeamID:    user.TeamID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
