package service

import (
	"errors"
	"fmt"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntendedEmployees resolves the employee set a template targets right now:
// the current members of its workstation, or its single direct assignee.
// Empty workstation membership yields an empty set, not an error.
func IntendedEmployees(tx *gorm.DB, template *models.TaskTemplate) ([]models.User, error) {
	if template.IsDirect() {
		userRepo := repository.NewUserRepository(tx)
		employee, err := userRepo.GetByID(*template.AssignedToEmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to load assignee: %w", err)
		}
		if !employee.IsActive {
			return nil, nil
		}
		return []models.User{*employee}, nil
	}

	if template.WorkstationID == nil {
		return nil, apperrors.ErrAmbiguousAssignment
	}

	workstationRepo := repository.NewWorkstationRepository(tx)
	members, err := workstationRepo.GetMembers(*template.WorkstationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkstationNotFound
		}
		return nil, fmt.Errorf("failed to load workstation members: %w", err)
	}

	active := make([]models.User, 0, len(members))
	for _, m := range members {
		if m.IsActive && m.Role == models.UserRoleEmployee {
			active = append(active, m)
		}
	}
	return active, nil
}

// AssignmentService executes reassignment of an existing instance while
// upholding the uniqueness invariant
type AssignmentService struct {
	dailyRepo repository.DailyTaskRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	publisher events.Publisher
	log       *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(dailyRepo repository.DailyTaskRepositoryInterface, userRepo repository.UserRepositoryInterface, publisher events.Publisher) *AssignmentService {
	return &AssignmentService{
		dailyRepo: dailyRepo,
		userRepo:  userRepo,
		publisher: publisher,
		log:       logger.ForComponent("assignment"),
	}
}

// Reassign moves an instance to a new owner. The move preserves identity and
// completion state; it is a transfer of ownership, not a reset of progress.
// When the destination already holds an instance of the same (template, date)
// the operation fails with a conflict the caller can surface and retry.
func (s *AssignmentService) Reassign(teamID, taskID, newEmployeeID uuid.UUID) (*DailyTaskResponse, error) {
	task, err := s.dailyRepo.GetWithDetails(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDailyTaskNotFound
		}
		return nil, fmt.Errorf("failed to get daily task: %w", err)
	}
	if task.TaskTemplate == nil || task.TaskTemplate.TeamID != teamID {
		return nil, apperrors.ErrDailyTaskNotFound
	}

	employee, err := s.userRepo.GetByID(newEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if employee.TeamID != teamID {
		return nil, apperrors.ErrEmployeeOutsideTeam
	}
	if employee.Role != models.UserRoleEmployee {
		return nil, apperrors.ErrManagerNotAssignable
	}

	// Reassigning to the current owner is a no-op
	if employee.ID == task.EmployeeID {
		return toDailyTaskResponse(task), nil
	}

	// Fast-path duplicate check for a friendly error; the unique index is
	// the source of truth when two reassignments race.
	exists, err := s.dailyRepo.Exists(task.TaskTemplateID, newEmployeeID, task.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDailyTaskConflict
	}

	if err := s.dailyRepo.UpdateEmployee(task.ID, newEmployeeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDailyTaskConflict
		}
		return nil, fmt.Errorf("failed to reassign daily task: %w", err)
	}

	task.EmployeeID = newEmployeeID
	task.Employee = employee

	s.publisher.Publish(teamID, events.NewAssigned(events.AssignedPayload{
		TaskID:          task.ID,
		EmployeeID:      employee.ID,
		EmployeeName:    employee.FullName(),
		TaskTitle:       task.TaskTemplate.Title,
		TaskDescription: task.TaskTemplate.Description,
		TaskDate:        models.DayKeyString(task.Date),
	}))

	s.log.WithFields(map[string]interface{}{
		"task_id":     task.ID,
		"employee_id": employee.ID,
	}).Info("daily task reassigned")

	return toDailyTaskResponse(task), nil
}
