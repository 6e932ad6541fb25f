package models

import (
	"github.com/google/uuid"
)

// User is an authenticated identity coming from the OAuth provider
type User struct {
	BaseModel
	Email       string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name        string  `json:"name" gorm:"size:200"`
	DisplayName *string `json:"display_name,omitempty" gorm:"size:100"`
	AvatarURL   string  `json:"avatar_url" gorm:"size:500"`
	GoogleID    *string `json:"-" gorm:"uniqueIndex;size:100"`

	// Relationships
	ChurchRoles []UserChurchRole `json:"church_roles,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserChurchRole binds a user to a church with a role. MINISTER roles may carry a
// ministry, DEPARTMENT_HEAD roles a set of departments.
type UserChurchRole struct {
	BaseModel
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_church_role" validate:"required"`
	ChurchID   uuid.UUID  `json:"church_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_church_role;index" validate:"required"`
	Role       Role       `json:"role" gorm:"type:varchar(32);not null;uniqueIndex:idx_user_church_role" validate:"required"`
	MinistryID *uuid.UUID `json:"ministry_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	User        *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Church      *Church          `json:"church,omitempty" gorm:"foreignKey:ChurchID"`
	Ministry    *Ministry        `json:"ministry,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:SET NULL"`
	Departments []UserDepartment `json:"departments,omitempty" gorm:"foreignKey:UserChurchRoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserChurchRole
func (UserChurchRole) TableName() string {
	return "user_church_roles"
}

// DepartmentIDs returns the ids of the departments attached to the role
func (r *UserChurchRole) DepartmentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Departments))
	for _, d := range r.Departments {
		ids = append(ids, d.DepartmentID)
	}
	return ids
}

// UserDepartment attaches a department to a DEPARTMENT_HEAD role
type UserDepartment struct {
	UserChurchRoleID uuid.UUID `json:"user_church_role_id" gorm:"type:uuid;primaryKey"`
	DepartmentID     uuid.UUID `json:"department_id" gorm:"type:uuid;primaryKey"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserDepartment
func (UserDepartment) TableName() string {
	return "user_departments"
}
