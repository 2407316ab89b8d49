package testutils

import (
	"fmt"
	"testing"
	"time"

	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTeam inserts a team
func CreateTeam(t *testing.T, db *gorm.DB, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}

// CreateManager inserts an active manager on the team
func CreateManager(t *testing.T, db *gorm.DB, team *models.Team, name string) *models.User {
	t.Helper()
	return createUser(t, db, team, name, models.UserRoleManager, true)
}

// CreateEmployee inserts an active employee on the team
func CreateEmployee(t *testing.T, db *gorm.DB, team *models.Team, name string) *models.User {
	t.Helper()
	return createUser(t, db, team, name, models.UserRoleEmployee, true)
}

// CreateInactiveEmployee inserts a deactivated employee on the team
func CreateInactiveEmployee(t *testing.T, db *gorm.DB, team *models.Team, name string) *models.User {
	t.Helper()
	return createUser(t, db, team, name, models.UserRoleEmployee, false)
}

func createUser(t *testing.T, db *gorm.DB, team *models.Team, name string, role models.UserRole, active bool) *models.User {
	t.Helper()
	user := &models.User{
		TeamID:       team.ID,
		Email:        fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		PasswordHash: "$2a$10$test.hash.not.a.real.one.padpadpadpadpadpadpadpad",
		FirstName:    name,
		LastName:     "Test",
		Role:         role,
		IsActive:     active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateWorkstation inserts a workstation with the given members
func CreateWorkstation(t *testing.T, db *gorm.DB, team *models.Team, name string, members ...*models.User) *models.Workstation {
	t.Helper()
	workstation := &models.Workstation{TeamID: team.ID, Name: name}
	if err := db.Create(workstation).Error; err != nil {
		t.Fatalf("failed to create workstation: %v", err)
	}
	for _, member := range members {
		if err := db.Model(workstation).Association("Members").Append(member); err != nil {
			t.Fatalf("failed to add workstation member: %v", err)
		}
	}
	return workstation
}

// TemplateOption customizes a template factory call
type TemplateOption func(*models.TaskTemplate)

// ForWorkstation targets the template at a workstation
func ForWorkstation(workstation *models.Workstation) TemplateOption {
	return func(tmpl *models.TaskTemplate) {
		tmpl.WorkstationID = &workstation.ID
		tmpl.AssignedToEmployeeID = nil
	}
}

// ForEmployee targets the template at one employee
func ForEmployee(employee *models.User) TemplateOption {
	return func(tmpl *models.TaskTemplate) {
		tmpl.AssignedToEmployeeID = &employee.ID
		tmpl.WorkstationID = nil
	}
}

// OneShot makes the template non-recurring
func OneShot() TemplateOption {
	return func(tmpl *models.TaskTemplate) {
		tmpl.IsRecurring = false
	}
}

// WithNotify turns on the assignment notification flag
func WithNotify() TemplateOption {
	return func(tmpl *models.TaskTemplate) {
		tmpl.NotifyEmployee = true
	}
}

// CreateTemplate inserts a recurring template created by the given manager.
// Options set the target; tests must pass exactly one of ForWorkstation or
// ForEmployee.
func CreateTemplate(t *testing.T, db *gorm.DB, team *models.Team, creator *models.User, title string, opts ...TemplateOption) *models.TaskTemplate {
	t.Helper()
	tmpl := &models.TaskTemplate{
		TeamID:      team.ID,
		CreatedByID: creator.ID,
		Title:       title,
		IsRecurring: true,
	}
	for _, opt := range opts {
		opt(tmpl)
	}
	if err := db.Create(tmpl).Error; err != nil {
		t.Fatalf("failed to create template: %v", err)
	}
	return tmpl
}

// CreateDailyTask inserts a daily task instance
func CreateDailyTask(t *testing.T, db *gorm.DB, tmpl *models.TaskTemplate, employee *models.User, date time.Time) *models.DailyTask {
	t.Helper()
	task := &models.DailyTask{
		TaskTemplateID: tmpl.ID,
		EmployeeID:     employee.ID,
		Date:           models.DayKey(date),
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create daily task: %v", err)
	}
	return task
}
