package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByTeamID retrieves all users of a team
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Order("last_name, first_name").Find(&users).Error
	return users, err
}

// GetEmployeesByTeamID retrieves the active employees of a team
func (r *UserRepository) GetEmployeesByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("team_id = ? AND role = ? AND is_active", teamID, models.UserRoleEmployee).
		Order("last_name, first_name").
		Find(&users).Error
	return users, err
}

// GetWithWorkstations retrieves a user with workstation memberships
func (r *UserRepository) GetWithWorkstations(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Workstations").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
