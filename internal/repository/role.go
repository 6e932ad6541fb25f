package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository handles database operations for user church roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func withScopeRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Departments").Preload("Ministry.Departments")
}

// Create creates a role assignment together with its attached departments
func (r *RoleRepository) Create(role *models.UserChurchRole) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a role assignment with its scope relations
func (r *RoleRepository) GetByID(id uuid.UUID) (*models.UserChurchRole, error) {
	var role models.UserChurchRole
	err := withScopeRelations(r.db).First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByUserID retrieves every role of a user with attached departments and the
// departments of attached ministries
func (r *RoleRepository) GetByUserID(userID uuid.UUID) ([]models.UserChurchRole, error) {
	var roles []models.UserChurchRole
	err := withScopeRelations(r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&roles).Error
	return roles, err
}

// Find retrieves the assignment identified by its natural key
func (r *RoleRepository) Find(userID, churchID uuid.UUID, role models.Role) (*models.UserChurchRole, error) {
	var assignment models.UserChurchRole
	err := withScopeRelations(r.db).
		First(&assignment, "user_id = ? AND church_id = ? AND role = ?", userID, churchID, role).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetUserIDsByRole retrieves the distinct users holding the role at any church
func (r *RoleRepository) GetUserIDsByRole(role models.Role) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.UserChurchRole{}).
		Distinct("user_id").
		Where("role = ?", role).
		Pluck("user_id", &ids).Error
	return ids, err
}

// Update updates the ministry attachment of a role
func (r *RoleRepository) Update(role *models.UserChurchRole) error {
	return r.db.Model(role).Select("ministry_id").Updates(map[string]interface{}{
		"ministry_id": role.MinistryID,
	}).Error
}

// ReplaceDepartments swaps the attached departments of a role in one transaction
func (r *RoleRepository) ReplaceDepartments(roleID uuid.UUID, departmentIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_church_role_id = ?", roleID).Delete(&models.UserDepartment{}).Error; err != nil {
			return err
		}
		if len(departmentIDs) == 0 {
			return nil
		}
		links := make([]models.UserDepartment, 0, len(departmentIDs))
		for _, id := range departmentIDs {
			links = append(links, models.UserDepartment{UserChurchRoleID: roleID, DepartmentID: id})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

// Ensure creates the assignment when missing and reports whether it was created
func (r *RoleRepository) Ensure(userID, churchID uuid.UUID, role models.Role) (bool, error) {
	assignment := models.UserChurchRole{UserID: userID, ChurchID: churchID, Role: role}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "church_id"}, {Name: "role"}},
		DoNothing: true,
	}).Create(&assignment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete deletes a role assignment; attached departments cascade
func (r *RoleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.UserChurchRole{}, "id = ?", id).Error
}
