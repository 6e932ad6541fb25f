package models

import "github.com/google/uuid"

// Church represents the root entity for multi-tenancy
type Church struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`

	// Relationships
	Ministries []Ministry       `json:"ministries,omitempty" gorm:"foreignKey:ChurchID;constraint:OnDelete:CASCADE"`
	Events     []Event          `json:"events,omitempty" gorm:"foreignKey:ChurchID;constraint:OnDelete:CASCADE"`
	Roles      []UserChurchRole `json:"roles,omitempty" gorm:"foreignKey:ChurchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Church
func (Church) TableName() string {
	return "churches"
}

// Ministry groups related departments of a church
type Ministry struct {
	BaseModel
	ChurchID uuid.UUID `json:"church_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	// Relationships
	Church      *Church      `json:"church,omitempty" gorm:"foreignKey:ChurchID"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ministry
func (Ministry) TableName() string {
	return "ministries"
}

// Department is a team inside a ministry whose members are scheduled
type Department struct {
	BaseModel
	MinistryID uuid.UUID `json:"ministry_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	// Relationships
	Ministry *Ministry `json:"ministry,omitempty" gorm:"foreignKey:MinistryID"`
	Members  []Member  `json:"members,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
