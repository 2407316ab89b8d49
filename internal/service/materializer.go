package service

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterializerService turns templates into daily task instances for a given
// business day. Passes are idempotent and transactional: re-invoking for the
// same (team, date) never duplicates instances or resets completed state, and
// a failed pass leaves nothing behind.
//
// The materializer never emits fan-out events. Callers that triggered a pass
// as part of a state-changing action own event emission.
type MaterializerService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewMaterializerService creates a new materializer service
func NewMaterializerService(db *gorm.DB) *MaterializerService {
	return &MaterializerService{
		db:  db,
		log: logger.ForComponent("materializer"),
	}
}

// EnsureDay guarantees that every recurring template of the team has an
// instance for each currently intended employee on the given day. Existing
// instances are never touched, so workstation-membership changes after a
// day's pass do not drift into that day.
func (s *MaterializerService) EnsureDay(teamID uuid.UUID, date time.Time) ([]models.DailyTask, error) {
	day := models.DayKey(date)

	var created []models.DailyTask
	// Two attempts: a concurrent pass can win an insert race and abort the
	// transaction with a duplicate key. The retry re-reads and sees the
	// winner's rows, turning the lost insert into a no-op.
	for attempt := 0; ; attempt++ {
		created = created[:0]
		err := s.db.Transaction(func(tx *gorm.DB) error {
			teamRepo := repository.NewTeamRepository(tx)
			if _, err := teamRepo.GetByID(teamID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrTeamNotFound
				}
				return fmt.Errorf("failed to verify team: %w", err)
			}

			templateRepo := repository.NewTaskTemplateRepository(tx)
			templates, err := templateRepo.GetRecurringByTeamID(teamID)
			if err != nil {
				return fmt.Errorf("failed to load templates: %w", err)
			}

			for i := range templates {
				tasks, err := s.MaterializeTemplateTx(tx, &templates[i], day)
				if err != nil {
					return err
				}
				created = append(created, tasks...)
			}
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt == 0 {
			s.log.WithField("team_id", teamID).Debug("materialization lost an insert race, retrying pass")
			continue
		}
		return nil, err
	}

	if len(created) > 0 {
		s.log.WithFields(map[string]interface{}{
			"team_id": teamID,
			"date":    models.DayKeyString(day),
			"created": len(created),
		}).Info("materialized daily tasks")
	}
	return created, nil
}

// MaterializeTemplateTx derives the missing instances of one template for one
// day inside the caller's transaction. The returned instances carry their
// Employee so callers can build notification payloads without re-reading.
func (s *MaterializerService) MaterializeTemplateTx(tx *gorm.DB, template *models.TaskTemplate, date time.Time) ([]models.DailyTask, error) {
	day := models.DayKey(date)

	employees, err := IntendedEmployees(tx, template)
	if err != nil {
		return nil, err
	}

	dailyRepo := repository.NewDailyTaskRepository(tx)
	var created []models.DailyTask
	for i := range employees {
		employee := employees[i]
		exists, err := dailyRepo.Exists(template.ID, employee.ID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing instance: %w", err)
		}
		if exists {
			continue
		}

		task := models.DailyTask{
			TaskTemplateID: template.ID,
			EmployeeID:     employee.ID,
			Date:           day,
			IsCompleted:    false,
		}
		if err := dailyRepo.Create(&task); err != nil {
			return nil, err
		}
		task.TaskTemplate = template
		task.Employee = &employee
		created = append(created, task)
	}
	return created, nil
}
