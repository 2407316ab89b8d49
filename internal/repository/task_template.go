package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskTemplateRepository handles database operations for task templates
type TaskTemplateRepository struct {
	db *gorm.DB
}

// NewTaskTemplateRepository creates a new task template repository
func NewTaskTemplateRepository(db *gorm.DB) *TaskTemplateRepository {
	return &TaskTemplateRepository{db: db}
}

// Create creates a new task template
func (r *TaskTemplateRepository) Create(template *models.TaskTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a task template by ID
func (r *TaskTemplateRepository) GetByID(id uuid.UUID) (*models.TaskTemplate, error) {
	var template models.TaskTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByTeamID retrieves all templates for a team
func (r *TaskTemplateRepository) GetByTeamID(teamID uuid.UUID) ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	err := r.db.Where("team_id = ?", teamID).Order("created_at").Find(&templates).Error
	return templates, err
}

// GetRecurringByTeamID retrieves the recurring templates of a team. These are
// the only templates a materialization pass considers; one-shot templates
// materialize at creation time and never again.
func (r *TaskTemplateRepository) GetRecurringByTeamID(teamID uuid.UUID) ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	err := r.db.Where("team_id = ? AND is_recurring", teamID).Order("created_at").Find(&templates).Error
	return templates, err
}

// Update updates a task template
func (r *TaskTemplateRepository) Update(template *models.TaskTemplate) error {
	return r.db.Save(template).Error
}

// Delete hard-deletes a task template. Instance cleanup is the caller's
// responsibility so it can run in the same transaction.
func (r *TaskTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TaskTemplate{}, "id = ?", id).Error
}
