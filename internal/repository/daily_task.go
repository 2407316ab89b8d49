package repository

import (
	"time"

	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyTaskFilter narrows a date-scoped daily task query
type DailyTaskFilter struct {
	EmployeeID    *uuid.UUID
	WorkstationID *uuid.UUID
}

// DailyTaskRepository handles database operations for daily task instances
type DailyTaskRepository struct {
	db *gorm.DB
}

// NewDailyTaskRepository creates a new daily task repository
func NewDailyTaskRepository(db *gorm.DB) *DailyTaskRepository {
	return &DailyTaskRepository{db: db}
}

// Create creates a new daily task instance. A unique-index violation surfaces
// as gorm.ErrDuplicatedKey; callers decide whether that is a lost race to
// tolerate or a conflict to report.
func (r *DailyTaskRepository) Create(task *models.DailyTask) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a daily task by ID
func (r *DailyTaskRepository) GetByID(id uuid.UUID) (*models.DailyTask, error) {
	var task models.DailyTask
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetWithDetails retrieves a daily task with its template and employee
func (r *DailyTaskRepository) GetWithDetails(id uuid.UUID) (*models.DailyTask, error) {
	var task models.DailyTask
	err := r.db.Preload("TaskTemplate").Preload("Employee").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Exists reports whether an instance already exists for the uniqueness key
// (template, employee, date)
func (r *DailyTaskRepository) Exists(templateID, employeeID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.DailyTask{}).
		Where("task_template_id = ? AND employee_id = ? AND date = ?",
			templateID, employeeID, models.DayKey(date)).
		Count(&count).Error
	return count > 0, err
}

// GetByTemplateAndDate retrieves all instances of a template for one day
func (r *DailyTaskRepository) GetByTemplateAndDate(templateID uuid.UUID, date time.Time) ([]models.DailyTask, error) {
	var tasks []models.DailyTask
	err := r.db.
		Where("task_template_id = ? AND date = ?", templateID, models.DayKey(date)).
		Find(&tasks).Error
	return tasks, err
}

// GetByTeamAndDate retrieves a team's instances for one day, joined with
// template and employee. Team scoping goes through the owning template.
func (r *DailyTaskRepository) GetByTeamAndDate(teamID uuid.UUID, date time.Time, filter DailyTaskFilter) ([]models.DailyTask, error) {
	query := r.db.
		Joins("JOIN task_templates ON daily_tasks.task_template_id = task_templates.id").
		Where("task_templates.team_id = ? AND daily_tasks.date = ?", teamID, models.DayKey(date))

	if filter.EmployeeID != nil {
		query = query.Where("daily_tasks.employee_id = ?", *filter.EmployeeID)
	}
	if filter.WorkstationID != nil {
		query = query.Where("task_templates.workstation_id = ?", *filter.WorkstationID)
	}

	var tasks []models.DailyTask
	err := query.
		Preload("TaskTemplate").
		Preload("Employee").
		Order("daily_tasks.created_at").
		Find(&tasks).Error
	return tasks, err
}

// Save persists completion-state changes on an existing instance
func (r *DailyTaskRepository) Save(task *models.DailyTask) error {
	return r.db.Save(task).Error
}

// UpdateEmployee moves an instance to a new owner in place. Identity and
// completion state are untouched; the unique index rejects the move when the
// destination already holds an instance of the same (template, date).
func (r *DailyTaskRepository) UpdateEmployee(id uuid.UUID, employeeID uuid.UUID) error {
	return r.db.Model(&models.DailyTask{}).
		Where("id = ?", id).
		Update("employee_id", employeeID).Error
}

// DeleteByTemplateID deletes every instance derived from a template. Used by
// the template delete cascade; hard delete, no retention.
func (r *DailyTaskRepository) DeleteByTemplateID(templateID uuid.UUID) error {
	return r.db.Delete(&models.DailyTask{}, "task_template_id = ?", templateID).Error
}
