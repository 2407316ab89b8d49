package models

import (
	"github.com/google/uuid"
)

// TaskTemplate is a manager-authored task definition, recurring or one-shot.
// Exactly one of WorkstationID or AssignedToEmployeeID is set: a template
// targets either the current members of a workstation or a single employee.
type TaskTemplate struct {
	BaseModel
	TeamID               uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	CreatedByID          uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null" validate:"required"`
	Title                string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description          string     `json:"description" gorm:"size:1000" validate:"max=1000"`
	IsRecurring          bool       `json:"is_recurring" gorm:"not null;default:false"`
	NotifyEmployee       bool       `json:"notify_employee" gorm:"not null;default:false"`
	WorkstationID        *uuid.UUID `json:"workstation_id,omitempty" gorm:"type:uuid;index"`
	AssignedToEmployeeID *uuid.UUID `json:"assigned_to_employee_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team               *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Workstation        *Workstation `json:"workstation,omitempty" gorm:"foreignKey:WorkstationID;constraint:OnDelete:CASCADE"`
	AssignedToEmployee *User        `json:"assigned_to_employee,omitempty" gorm:"foreignKey:AssignedToEmployeeID;constraint:OnDelete:CASCADE"`
	DailyTasks         []DailyTask  `json:"daily_tasks,omitempty" gorm:"foreignKey:TaskTemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskTemplate
func (TaskTemplate) TableName() string {
	return "task_templates"
}

// IsDirect reports whether the template targets a single employee rather than
// a workstation.
func (t *TaskTemplate) IsDirect() bool {
	return t.AssignedToEmployeeID != nil
}
