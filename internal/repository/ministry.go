package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinistryRepository handles database operations for ministries
type MinistryRepository struct {
	db *gorm.DB
}

// NewMinistryRepository creates a new ministry repository
func NewMinistryRepository(db *gorm.DB) *MinistryRepository {
	return &MinistryRepository{db: db}
}

// Create creates a new ministry
func (r *MinistryRepository) Create(ministry *models.Ministry) error {
	return r.db.Create(ministry).Error
}

// GetByID retrieves a ministry by ID
func (r *MinistryRepository) GetByID(id uuid.UUID) (*models.Ministry, error) {
	var ministry models.Ministry
	err := r.db.First(&ministry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ministry, nil
}

// GetByChurchID retrieves the ministries of a church with their departments
func (r *MinistryRepository) GetByChurchID(churchID uuid.UUID) ([]models.Ministry, error) {
	var ministries []models.Ministry
	err := r.db.
		Preload("Departments", func(db *gorm.DB) *gorm.DB { return db.Order("departments.name ASC") }).
		Where("church_id = ?", churchID).
		Order("name ASC").
		Find(&ministries).Error
	return ministries, err
}

// Update updates a ministry
func (r *MinistryRepository) Update(ministry *models.Ministry) error {
	return r.db.Model(ministry).Updates(map[string]interface{}{"name": ministry.Name}).Error
}

// Delete deletes a ministry; its departments cascade
func (r *MinistryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Ministry{}, "id = ?", id).Error
}
