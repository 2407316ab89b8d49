package service

import (
	"errors"
	"fmt"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkstationService handles workstation CRUD and membership. Membership
// edits never touch already-materialized instances; they only change what the
// next materialization pass derives.
type WorkstationService struct {
	workstationRepo repository.WorkstationRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	validator       *validator.Validate
	log             *logger.Logger
}

// NewWorkstationService creates a new workstation service
func NewWorkstationService(workstationRepo repository.WorkstationRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *WorkstationService {
	return &WorkstationService{
		workstationRepo: workstationRepo,
		userRepo:        userRepo,
		validator:       validator,
		log:             logger.ForComponent("workstation"),
	}
}

// CreateWorkstationRequest represents the request to create a workstation
type CreateWorkstationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateWorkstationRequest represents the request to rename a workstation
type UpdateWorkstationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ReplaceMembersRequest represents the request to replace a workstation's membership
type ReplaceMembersRequest struct {
	EmployeeIDs []uuid.UUID `json:"employee_ids" validate:"required"`
}

// WorkstationResponse represents the response for workstation operations
type WorkstationResponse struct {
	ID      uuid.UUID          `json:"id"`
	TeamID  uuid.UUID          `json:"team_id"`
	Name    string             `json:"name"`
	Members []EmployeeResponse `json:"members,omitempty"`
}

// Create creates a workstation. Names need not be unique within a team.
func (s *WorkstationService) Create(teamID uuid.UUID, req *CreateWorkstationRequest) (*WorkstationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workstation := &models.Workstation{
		TeamID: teamID,
		Name:   req.Name,
	}
	if err := s.workstationRepo.Create(workstation); err != nil {
		return nil, fmt.Errorf("failed to create workstation: %w", err)
	}
	return toWorkstationResponse(workstation, nil), nil
}

// GetByID retrieves a workstation with its current members
func (s *WorkstationService) GetByID(teamID, id uuid.UUID) (*WorkstationResponse, error) {
	workstation, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}
	members, err := s.workstationRepo.GetMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	return toWorkstationResponse(workstation, members), nil
}

// GetByTeam retrieves all workstations of a team
func (s *WorkstationService) GetByTeam(teamID uuid.UUID) ([]WorkstationResponse, error) {
	workstations, err := s.workstationRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workstations: %w", err)
	}
	responses := make([]WorkstationResponse, len(workstations))
	for i := range workstations {
		responses[i] = *toWorkstationResponse(&workstations[i], nil)
	}
	return responses, nil
}

// GetMembers retrieves the current members of a workstation
func (s *WorkstationService) GetMembers(teamID, id uuid.UUID) ([]EmployeeResponse, error) {
	workstation, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}
	members, err := s.workstationRepo.GetMembers(workstation.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	responses := make([]EmployeeResponse, len(members))
	for i := range members {
		responses[i] = *toEmployeeResponse(&members[i])
	}
	return responses, nil
}

// Update renames a workstation
func (s *WorkstationService) Update(teamID, id uuid.UUID, req *UpdateWorkstationRequest) (*WorkstationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	workstation, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}
	workstation.Name = req.Name
	if err := s.workstationRepo.Update(workstation); err != nil {
		return nil, fmt.Errorf("failed to update workstation: %w", err)
	}
	return toWorkstationResponse(workstation, nil), nil
}

// Delete deletes a workstation. Templates targeting it are removed by the
// store's cascade, instances included.
func (s *WorkstationService) Delete(teamID, id uuid.UUID) error {
	workstation, err := s.getScoped(teamID, id)
	if err != nil {
		return err
	}
	if err := s.workstationRepo.Delete(workstation.ID); err != nil {
		return fmt.Errorf("failed to delete workstation: %w", err)
	}
	return nil
}

// ReplaceMembers replaces the workstation's membership with the given team
// employees. Already-materialized instances keep their owners; only future
// materialization reflects the change.
func (s *WorkstationService) ReplaceMembers(teamID, id uuid.UUID, req *ReplaceMembersRequest) (*WorkstationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	workstation, err := s.getScoped(teamID, id)
	if err != nil {
		return nil, err
	}

	members := make([]models.User, 0, len(req.EmployeeIDs))
	for _, employeeID := range req.EmployeeIDs {
		user, err := s.userRepo.GetByID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to verify employee: %w", err)
		}
		if user.TeamID != teamID {
			return nil, apperrors.ErrEmployeeOutsideTeam
		}
		if user.Role != models.UserRoleEmployee {
			return nil, apperrors.ErrManagerNotAssignable
		}
		members = append(members, *user)
	}

	if err := s.workstationRepo.ReplaceMembers(workstation.ID, members); err != nil {
		return nil, fmt.Errorf("failed to replace members: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"workstation_id": workstation.ID,
		"members":        len(members),
	}).Info("workstation membership replaced")

	return toWorkstationResponse(workstation, members), nil
}

func (s *WorkstationService) getScoped(teamID, id uuid.UUID) (*models.Workstation, error) {
	workstation, err := s.workstationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkstationNotFound
		}
		return nil, fmt.Errorf("failed to get workstation: %w", err)
	}
	if workstation.TeamID != teamID {
		return nil, apperrors.ErrWorkstationNotFound
	}
	return workstation, nil
}

// toWorkstationResponse converts a workstation model to its response form
func toWorkstationResponse(workstation *models.Workstation, members []models.User) *WorkstationResponse {
	response := &WorkstationResponse{
		ID:     workstation.ID,
		TeamID: workstation.TeamID,
		Name:   workstation.Name,
	}
	for i := range members {
		response.Members = append(response.Members, *toEmployeeResponse(&members[i]))
	}
	return response
}
