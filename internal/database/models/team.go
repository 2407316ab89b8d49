package models

// Team groups one manager and its employees. Every query and every fan-out
// event is scoped to a team; nothing crosses this boundary.
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Users        []User        `json:"users,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Workstations []Workstation `json:"workstations,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
