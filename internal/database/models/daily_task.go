package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyTask is the per-employee, per-day materialization of a template.
//
// The composite unique index over (task_template_id, employee_id, date) is the
// store-level enforcement of the uniqueness invariant: at most one instance
// per template per employee per day, no matter how writers race. Application
// pre-checks are a fast path only; this index is the source of truth.
type DailyTask struct {
	BaseModel
	TaskTemplateID uuid.UUID  `json:"task_template_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_tasks_template_employee_date" validate:"required"`
	EmployeeID     uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_tasks_template_employee_date" validate:"required"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex:idx_daily_tasks_template_employee_date" validate:"required"`
	IsCompleted    bool       `json:"is_completed" gorm:"not null;default:false"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`

	// Relationships
	TaskTemplate *TaskTemplate `json:"task_template,omitempty" gorm:"foreignKey:TaskTemplateID;constraint:OnDelete:CASCADE"`
	Employee     *User         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DailyTask
func (DailyTask) TableName() string {
	return "daily_tasks"
}
