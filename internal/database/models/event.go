package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled occurrence (service, meeting) of a church
type Event struct {
	BaseModel
	ChurchID uuid.UUID `json:"church_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title    string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Type     string    `json:"type" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Date     time.Time `json:"date" gorm:"not null;index" validate:"required"`

	// Relationships
	Church           *Church           `json:"church,omitempty" gorm:"foreignKey:ChurchID"`
	EventDepartments []EventDepartment `json:"event_departments,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// EventDepartment states that a department is asked to serve at an event
type EventDepartment struct {
	BaseModel
	EventID      uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_department"`
	DepartmentID uuid.UUID `json:"department_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_department;index"`

	// Relationships
	Event      *Event      `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Plannings  []Planning  `json:"plannings,omitempty" gorm:"foreignKey:EventDepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventDepartment
func (EventDepartment) TableName() string {
	return "event_departments"
}

// Planning is the status of one member for one event department
type Planning struct {
	BaseModel
	EventDepartmentID uuid.UUID       `json:"event_department_id" gorm:"type:uuid;not null;uniqueIndex:idx_planning_member"`
	MemberID          uuid.UUID       `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_planning_member;index"`
	Status            *PlanningStatus `json:"status" gorm:"type:varchar(32)"`

	// Relationships
	EventDepartment *EventDepartment `json:"event_department,omitempty" gorm:"foreignKey:EventDepartmentID"`
	Member          *Member          `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for Planning
func (Planning) TableName() string {
	return "plannings"
}
