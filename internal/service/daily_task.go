package service

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyTaskService owns the instance lifecycle: date-scoped reads with lazy
// materialization, explicit day preparation, and the completion state machine.
type DailyTaskService struct {
	dailyRepo    repository.DailyTaskRepositoryInterface
	materializer *MaterializerService
	publisher    events.Publisher
	log          *logger.Logger
}

// NewDailyTaskService creates a new daily task service
func NewDailyTaskService(dailyRepo repository.DailyTaskRepositoryInterface, materializer *MaterializerService, publisher events.Publisher) *DailyTaskService {
	return &DailyTaskService{
		dailyRepo:    dailyRepo,
		materializer: materializer,
		publisher:    publisher,
		log:          logger.ForComponent("daily-task"),
	}
}

// DailyTaskResponse is the instance joined with template and employee summary
type DailyTaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	TaskTemplateID uuid.UUID  `json:"task_template_id"`
	EmployeeID     uuid.UUID  `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	Date           string     `json:"date"`
	IsCompleted    bool       `json:"is_completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	IsRecurring    bool       `json:"is_recurring"`
	WorkstationID  *uuid.UUID `json:"workstation_id,omitempty"`
}

// SetCompletionRequest carries the desired completion state. The client sends
// the target state, not a bare toggle, so a stale client cannot double-flip.
type SetCompletionRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

// PrepareDayResponse reports the outcome of an explicit materialization pass
type PrepareDayResponse struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
}

// ListForDay returns the team's instances for one day, after lazily
// materializing the day so every applicable template is represented.
func (s *DailyTaskService) ListForDay(teamID uuid.UUID, date time.Time, filter repository.DailyTaskFilter) ([]DailyTaskResponse, error) {
	if _, err := s.materializer.EnsureDay(teamID, date); err != nil {
		return nil, err
	}

	tasks, err := s.dailyRepo.GetByTeamAndDate(teamID, date, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily tasks: %w", err)
	}

	responses := make([]DailyTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toDailyTaskResponse(&tasks[i])
	}
	return responses, nil
}

// PrepareDay runs an explicit materialization pass and emits a single
// batch-level notification, never one event per created instance.
func (s *DailyTaskService) PrepareDay(teamID uuid.UUID, date time.Time) (*PrepareDayResponse, error) {
	created, err := s.materializer.EnsureDay(teamID, date)
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		s.publisher.Publish(teamID, events.NewUpdated(events.UpdatedPayload{}))
	}

	return &PrepareDayResponse{
		Date:    models.DayKeyString(models.DayKey(date)),
		Created: len(created),
	}, nil
}

// SetCompletion applies the desired completion state. CompletedAt is set on
// the PENDING to DONE transition and cleared on the way back; applying the
// current state again is a no-op.
func (s *DailyTaskService) SetCompletion(teamID, taskID uuid.UUID, desired bool) (*DailyTaskResponse, error) {
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

	if task.IsCompleted != desired {
		task.IsCompleted = desired
		if desired {
			now := time.Now().UTC()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
		if err := s.dailyRepo.Save(task); err != nil {
			return nil, fmt.Errorf("failed to update daily task: %w", err)
		}

		s.publisher.Publish(teamID, events.NewUpdated(events.UpdatedPayload{
			TaskID:      task.ID,
			EmployeeID:  task.EmployeeID,
			IsCompleted: task.IsCompleted,
			TaskTitle:   task.TaskTemplate.Title,
		}))
	}

	return toDailyTaskResponse(task), nil
}

// toDailyTaskResponse converts a daily task model to its response form
func toDailyTaskResponse(task *models.DailyTask) *DailyTaskResponse {
	response := &DailyTaskResponse{
		ID:             task.ID,
		TaskTemplateID: task.TaskTemplateID,
		EmployeeID:     task.EmployeeID,
		Date:           models.DayKeyString(task.Date),
		IsCompleted:    task.IsCompleted,
		CompletedAt:    task.CompletedAt,
	}
	if task.Employee != nil {
		response.EmployeeName = task.Employee.FullName()
	}
	if task.TaskTemplate != nil {
		response.Title = task.TaskTemplate.Title
		response.Description = task.TaskTemplate.Description
		response.IsRecurring = task.TaskTemplate.IsRecurring
		response.WorkstationID = task.TaskTemplate.WorkstationID
	}
	return response
}
