package auth

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims are the JWT claims carried by every authenticated request. TeamID
// rides in the token so team scoping never trusts client-supplied identifiers.
type Claims struct {
	UserID uuid.UUID       `json:"user_id"`
	TeamID uuid.UUID       `json:"team_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service handles authentication: login, token issuance and validation, and
// initial team bootstrap.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	userRepo  *repository.UserRepository
	teamRepo  *repository.TeamRepository
	validator *validator.Validate
	log       *logger.Logger
}

// NewService creates a new auth service
func NewService(cfg *config.Config, db *gorm.DB, userRepo *repository.UserRepository, teamRepo *repository.TeamRepository, validator *validator.Validate) *Service {
	return &Service{
		cfg:       cfg,
		db:        db,
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		validator: validator,
		log:       logger.ForComponent("auth"),
	}
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest bootstraps a new team with its first manager account
type RegisterRequest struct {
	TeamName  string `json:"team_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// AuthResponse represents the response for login and registration
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
	UserID    uuid.UUID       `json:"user_id"`
	TeamID    uuid.UUID       `json:"team_id"`
	Role      models.UserRole `json:"role"`
	FullName  string          `json:"full_name"`
}

// Login verifies credentials and issues a token
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates a team together with its first manager and logs them in
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleManager,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		team := &models.Team{Name: req.TeamName}
		if err := repository.NewTeamRepository(tx).Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		user.TeamID = team.ID
		if err := repository.NewUserRepository(tx).Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrUserExists
			}
			return fmt.Errorf("failed to create manager: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"team_id": user.TeamID,
		"user_id": user.ID,
	}).Info("team registered")

	return s.issue(user)
}

// ValidateToken parses and verifies a token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}

func (s *Service) issue(user *models.User) (*AuthResponse, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWTTTLHours) * time.Hour)

	claims := Claims{
		UserID: user.ID,
		TeamID: user.TeamID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		UserID:    user.ID,
		TeamID:    user.TeamID,
		Role:      user.Role,
		FullName:  user.FullName(),
	}, nil
}
