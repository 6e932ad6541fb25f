package models

import (
	"github.com/google/uuid"
)

// Member is a volunteer ("STAR") belonging to exactly one department.
// Members are not login identities.
type Member struct {
	BaseModel
	DepartmentID uuid.UUID `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName    string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string    `json:"last_name" gorm:"not null;size:100;index" validate:"required,max=100"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Plannings  []Planning  `json:"plannings,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
