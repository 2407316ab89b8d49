package repository

import (
	"time"

	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetEmployeesByTeamID(teamID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// WorkstationRepositoryInterface defines the interface for workstation repository operations
type WorkstationRepositoryInterface interface {
	Create(workstation *models.Workstation) error
	GetByID(id uuid.UUID) (*models.Workstation, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Workstation, error)
	GetMembers(id uuid.UUID) ([]models.User, error)
	ReplaceMembers(id uuid.UUID, members []models.User) error
	RemoveMember(id uuid.UUID, userID uuid.UUID) error
	Update(workstation *models.Workstation) error
	Delete(id uuid.UUID) error
}

// TaskTemplateRepositoryInterface defines the interface for task template repository operations
type TaskTemplateRepositoryInterface interface {
	Create(template *models.TaskTemplate) error
	GetByID(id uuid.UUID) (*models.TaskTemplate, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TaskTemplate, error)
	GetRecurringByTeamID(teamID uuid.UUID) ([]models.TaskTemplate, error)
	Update(template *models.TaskTemplate) error
	Delete(id uuid.UUID) error
}

// DailyTaskRepositoryInterface defines the interface for daily task repository operations
type DailyTaskRepositoryInterface interface {
	Create(task *models.DailyTask) error
	GetByID(id uuid.UUID) (*models.DailyTask, error)
	GetWithDetails(id uuid.UUID) (*models.DailyTask, error)
	Exists(templateID, employeeID uuid.UUID, date time.Time) (bool, error)
	GetByTemplateAndDate(templateID uuid.UUID, date time.Time) ([]models.DailyTask, error)
	GetByTeamAndDate(teamID uuid.UUID, date time.Time, filter DailyTaskFilter) ([]models.DailyTask, error)
	Save(task *models.DailyTask) error
	UpdateEmployee(id uuid.UUID, employeeID uuid.UUID) error
	DeleteByTemplateID(templateID uuid.UUID) error
}
