package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const memberOrder = "last_name ASC, first_name ASC"

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIDs retrieves the members with the given ids; unknown ids are skipped
func (r *MemberRepository) GetByIDs(ids []uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	if len(ids) == 0 {
		return members, nil
	}
	err := r.db.Where("id IN ?", ids).Order(memberOrder).Find(&members).Error
	return members, err
}

// GetByDepartmentID retrieves the members of a department ordered by last then first name
func (r *MemberRepository) GetByDepartmentID(departmentID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("department_id = ?", departmentID).Order(memberOrder).Find(&members).Error
	return members, err
}

// GetByDepartmentIDs retrieves the members of several departments with their department
func (r *MemberRepository) GetByDepartmentIDs(departmentIDs []uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	if len(departmentIDs) == 0 {
		return members, nil
	}
	err := r.db.Preload("Department").
		Where("department_id IN ?", departmentIDs).
		Order(memberOrder).
		Find(&members).Error
	return members, err
}

// Update updates a member's names and department. Plannings of the member under
// links of any other department are removed in the same transaction.
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(member).Updates(map[string]interface{}{
			"first_name":    member.FirstName,
			"last_name":     member.LastName,
			"department_id": member.DepartmentID,
		}).Error; err != nil {
			return err
		}

		return tx.
			Where("member_id = ?", member.ID).
			Where("event_department_id IN (SELECT id FROM event_departments WHERE department_id <> ?)", member.DepartmentID).
			Delete(&models.Planning{}).Error
	})
}

// Delete deletes a member; plannings cascade
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}
