package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChurchRepository handles database operations for churches
type ChurchRepository struct {
	db *gorm.DB
}

// NewChurchRepository creates a new church repository
func NewChurchRepository(db *gorm.DB) *ChurchRepository {
	return &ChurchRepository{db: db}
}

// Create creates a new church
func (r *ChurchRepository) Create(church *models.Church) error {
	return r.db.Create(church).Error
}

// GetByID retrieves a church by ID
func (r *ChurchRepository) GetByID(id uuid.UUID) (*models.Church, error) {
	var church models.Church
	err := r.db.First(&church, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &church, nil
}

// GetBySlug retrieves a church by its slug
func (r *ChurchRepository) GetBySlug(slug string) (*models.Church, error) {
	var church models.Church
	err := r.db.First(&church, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &church, nil
}

// GetAll retrieves every church ordered by name
func (r *ChurchRepository) GetAll() ([]models.Church, error) {
	var churches []models.Church
	err := r.db.Order("name ASC").Find(&churches).Error
	return churches, err
}

// GetByIDs retrieves the churches with the given ids ordered by name
func (r *ChurchRepository) GetByIDs(ids []uuid.UUID) ([]models.Church, error) {
	var churches []models.Church
	if len(ids) == 0 {
		return churches, nil
	}
	err := r.db.Where("id IN ?", ids).Order("name ASC").Find(&churches).Error
	return churches, err
}

// Update updates a church's name and slug
func (r *ChurchRepository) Update(church *models.Church) error {
	return r.db.Model(church).Updates(map[string]interface{}{
		"name": church.Name,
		"slug": church.Slug,
	}).Error
}

// Delete deletes a church; ministries, events and roles cascade
func (r *ChurchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Church{}, "id = ?", id).Error
}
