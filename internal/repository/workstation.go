package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkstationRepository handles database operations for workstations and
// their membership join table
type WorkstationRepository struct {
	db *gorm.DB
}

// NewWorkstationRepository creates a new workstation repository
func NewWorkstationRepository(db *gorm.DB) *WorkstationRepository {
	return &WorkstationRepository{db: db}
}

// Create creates a new workstation
func (r *WorkstationRepository) Create(workstation *models.Workstation) error {
	return r.db.Create(workstation).Error
}

// GetByID retrieves a workstation by ID
func (r *WorkstationRepository) GetByID(id uuid.UUID) (*models.Workstation, error) {
	var workstation models.Workstation
	err := r.db.First(&workstation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workstation, nil
}

// GetByTeamID retrieves all workstations for a team
func (r *WorkstationRepository) GetByTeamID(teamID uuid.UUID) ([]models.Workstation, error) {
	var workstations []models.Workstation
	err := r.db.Where("team_id = ?", teamID).Order("name").Find(&workstations).Error
	return workstations, err
}

// GetMembers retrieves the current members of a workstation
func (r *WorkstationRepository) GetMembers(id uuid.UUID) ([]models.User, error) {
	var workstation models.Workstation
	err := r.db.Preload("Members").First(&workstation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return workstation.Members, nil
}

// ReplaceMembers replaces the full membership of a workstation
func (r *WorkstationRepository) ReplaceMembers(id uuid.UUID, members []models.User) error {
	workstation := models.Workstation{BaseModel: models.BaseModel{ID: id}}
	return r.db.Model(&workstation).Association("Members").Replace(members)
}

// RemoveMember removes a single member from a workstation
func (r *WorkstationRepository) RemoveMember(id uuid.UUID, userID uuid.UUID) error {
	workstation := models.Workstation{BaseModel: models.BaseModel{ID: id}}
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	return r.db.Model(&workstation).Association("Members").Delete(&user)
}

// Update updates a workstation
func (r *WorkstationRepository) Update(workstation *models.Workstation) error {
	return r.db.Save(workstation).Error
}

// Delete deletes a workstation
func (r *WorkstationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workstation{}, "id = ?", id).Error
}
