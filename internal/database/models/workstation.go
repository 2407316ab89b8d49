package models

import (
	"github.com/google/uuid"
)

// Workstation is a named grouping of employees used as a template assignment
// target. Names are not unique within a team; duplicates are allowed.
type Workstation struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Team    *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Members []User `json:"members,omitempty" gorm:"many2many:workstation_members;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Workstation
func (Workstation) TableName() string {
	return "workstations"
}
