package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetWithMinistry retrieves a department with its ministry, which carries the church id
func (r *DepartmentRepository) GetWithMinistry(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.Preload("Ministry").First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetByChurchID retrieves all departments of a church (through ministries)
func (r *DepartmentRepository) GetByChurchID(churchID uuid.UUID) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.
		Preload("Ministry").
		Joins("JOIN ministries ON departments.ministry_id = ministries.id").
		Where("ministries.church_id = ?", churchID).
		Order("ministries.name ASC, departments.name ASC").
		Find(&departments).Error
	return departments, err
}

// GetByMinistryID retrieves the departments of a ministry
func (r *DepartmentRepository) GetByMinistryID(ministryID uuid.UUID) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("ministry_id = ?", ministryID).Order("name ASC").Find(&departments).Error
	return departments, err
}

// Update updates a department's name and ministry
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Model(department).Updates(map[string]interface{}{
		"name":        department.Name,
		"ministry_id": department.MinistryID,
	}).Error
}

// Delete deletes a department; members and event links cascade
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Department{}, "id = ?", id).Error
}
