package auth_test

import (
	"testing"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthSuite struct {
	suite.Suite
	db  *gorm.DB
	cfg *config.Config
	svc *auth.Service
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupSuite() {
	s.db = testutils.GetTestDB(s.T())
	s.cfg = &config.Config{
		Environment: "test",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}
}

func (s *AuthSuite) SetupTest() {
	testutils.CleanTables(s.T(), s.db)
	s.svc = auth.NewService(
		s.cfg,
		s.db,
		repository.NewUserRepository(s.db),
		repository.NewTeamRepository(s.db),
		validator.New(),
	)
}

func (s *AuthSuite) register() *auth.AuthResponse {
	resp, err := s.svc.Register(&auth.RegisterRequest{
		TeamName:  "Ops",
		Email:     "morgan@example.com",
		FirstName: "Morgan",
		LastName:  "Lee",
		Password:  "correct-horse",
	})
	s.Require().NoError(err)
	return resp
}

func (s *AuthSuite) TestRegisterCreatesTeamAndManager() {
	resp := s.register()
	s.NotEmpty(resp.Token)
	s.Equal(models.UserRoleManager, resp.Role)
	s.Equal("Morgan Lee", resp.FullName)

	var team models.Team
	s.Require().NoError(s.db.First(&team, "id = ?", resp.TeamID).Error)
	s.Equal("Ops", team.Name)

	var user models.User
	s.Require().NoError(s.db.First(&user, "id = ?", resp.UserID).Error)
	s.Equal(resp.TeamID, user.TeamID)
	s.NotEqual("correct-horse", user.PasswordHash)
}

func (s *AuthSuite) TestRegisterDuplicateEmailConflicts() {
	s.register()
	_, err := s.svc.Register(&auth.RegisterRequest{
		TeamName:  "Other",
		Email:     "morgan@example.com",
		FirstName: "Morgan",
		LastName:  "Lee",
		Password:  "correct-horse",
	})
	s.ErrorIs(err, apperrors.ErrUserExists)
}

func (s *AuthSuite) TestLoginRoundTrip() {
	registered := s.register()

	resp, err := s.svc.Login(&auth.LoginRequest{
		Email:    "morgan@example.com",
		Password: "correct-horse",
	})
	s.Require().NoError(err)
	s.Equal(registered.UserID, resp.UserID)
	s.Equal(registered.TeamID, resp.TeamID)
}

func (s *AuthSuite) TestLoginWrongPasswordRejected() {
	s.register()
	_, err := s.svc.Login(&auth.LoginRequest{
		Email:    "morgan@example.com",
		Password: "wrong",
	})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthSuite) TestLoginUnknownEmailRejected() {
	_, err := s.svc.Login(&auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthSuite) TestLoginDeactivatedUserRejected() {
	resp := s.register()
	s.Require().NoError(s.db.Model(&models.User{}).
		Where("id = ?", resp.UserID).
		Update("is_active", false).Error)

	_, err := s.svc.Login(&auth.LoginRequest{
		Email:    "morgan@example.com",
		Password: "correct-horse",
	})
	s.ErrorIs(err, apperrors.ErrInactiveUser)
}

func (s *AuthSuite) TestTokenCarriesIdentity() {
	resp := s.register()

	claims, err := s.svc.ValidateToken(resp.Token)
	s.Require().NoError(err)
	s.Equal(resp.UserID, claims.UserID)
	s.Equal(resp.TeamID, claims.TeamID)
	s.Equal(models.UserRoleManager, claims.Role)
}

func (s *AuthSuite) TestTamperedTokenRejected() {
	resp := s.register()
	_, err := s.svc.ValidateToken(resp.Token + "x")
	s.Error(err)
	s.True(apperrors.IsAuthentication(err))
}
