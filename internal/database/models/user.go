package models

import (
	"github.com/google/uuid"
)

// UserRole represents the role of a user within a team
type UserRole string

const (
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

// IsValid reports whether the role is a known value
func (r UserRole) IsValid() bool {
	return r == UserRoleManager || r == UserRoleEmployee
}

// User is a member of a team, either the manager or an employee.
// Employees belong to exactly one team and may join any number of workstations.
type User struct {
	BaseModel
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	FirstName    string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'EMPLOYEE'" validate:"required"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Team         *Team         `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Workstations []Workstation `json:"workstations,omitempty" gorm:"many2many:workstation_members;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in event payloads and summaries
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
