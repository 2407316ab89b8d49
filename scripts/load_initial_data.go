package main

import (
	"fmt"
	"log"
	"os"

	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database"
	"taskboard-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed file
type TeamData struct {
	Name         string            `yaml:"name"`
	Manager      UserData          `yaml:"manager"`
	Employees    []UserData        `yaml:"employees"`
	Workstations []WorkstationData `yaml:"workstations"`
	Templates    []TemplateData    `yaml:"templates"`
}

type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Password  string `yaml:"password"`
}

type WorkstationData struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"` // employee emails
}

type TemplateData struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description,omitempty"`
	IsRecurring    bool   `yaml:"is_recurring"`
	NotifyEmployee bool   `yaml:"notify_employee"`
	Workstation    string `yaml:"workstation,omitempty"` // workstation name
	AssignedTo     string `yaml:"assigned_to,omitempty"` // employee email
}

type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	_ = godotenv.Load()

	path := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	for _, teamData := range seed.Teams {
		if err := loadTeam(db, teamData); err != nil {
			log.Fatalf("failed to load team %q: %v", teamData.Name, err)
		}
		log.Printf("loaded team %q", teamData.Name)
	}
}

func loadTeam(db *gorm.DB, data TeamData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		team := &models.Team{Name: data.Name}
		if err := tx.Create(team).Error; err != nil {
			return fmt.Errorf("create team: %w", err)
		}

		manager, err := createUser(tx, team, data.Manager, models.UserRoleManager)
		if err != nil {
			return err
		}

		employees := make(map[string]*models.User, len(data.Employees))
		for _, userData := range data.Employees {
			employee, err := createUser(tx, team, userData, models.UserRoleEmployee)
			if err != nil {
				return err
			}
			employees[userData.Email] = employee
		}

		workstations := make(map[string]*models.Workstation, len(data.Workstations))
		for _, wsData := range data.Workstations {
			ws := &models.Workstation{TeamID: team.ID, Name: wsData.Name}
			if err := tx.Create(ws).Error; err != nil {
				return fmt.Errorf("create workstation %q: %w", wsData.Name, err)
			}
			for _, email := range wsData.Members {
				member, ok := employees[email]
				if !ok {
					return fmt.Errorf("workstation %q references unknown employee %q", wsData.Name, email)
				}
				if err := tx.Model(ws).Association("Members").Append(member); err != nil {
					return fmt.Errorf("add member %q: %w", email, err)
				}
			}
			workstations[wsData.Name] = ws
		}

		for _, tmplData := range data.Templates {
			tmpl := &models.TaskTemplate{
				TeamID:         team.ID,
				CreatedByID:    manager.ID,
				Title:          tmplData.Title,
				Description:    tmplData.Description,
				IsRecurring:    tmplData.IsRecurring,
				NotifyEmployee: tmplData.NotifyEmployee,
			}
			switch {
			case tmplData.Workstation != "":
				ws, ok := workstations[tmplData.Workstation]
				if !ok {
					return fmt.Errorf("template %q references unknown workstation %q", tmplData.Title, tmplData.Workstation)
				}
				tmpl.WorkstationID = &ws.ID
			case tmplData.AssignedTo != "":
				employee, ok := employees[tmplData.AssignedTo]
				if !ok {
					return fmt.Errorf("template %q references unknown employee %q", tmplData.Title, tmplData.AssignedTo)
				}
				tmpl.AssignedToEmployeeID = &employee.ID
			default:
				return fmt.Errorf("template %q needs a workstation or an assignee", tmplData.Title)
			}
			if err := tx.Create(tmpl).Error; err != nil {
				return fmt.Errorf("create template %q: %w", tmplData.Title, err)
			}
		}

		return nil
	})
}

func createUser(tx *gorm.DB, team *models.Team, data UserData, role models.UserRole) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password for %q: %w", data.Email, err)
	}
	user := &models.User{
		TeamID:       team.ID,
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         role,
		IsActive:     true,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", data.Email, err)
	}
	return user, nil
}
