package testutils

import (
	"time"

	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ChurchFactory provides methods to create test Church data
type ChurchFactory struct{}

// NewChurchFactory creates a new ChurchFactory
func NewChurchFactory() *ChurchFactory {
	return &ChurchFactory{}
}

// Create creates a test Church with a unique slug
func (f *ChurchFactory) Create() *models.Church {
	base := newBase()
	return &models.Church{
		BaseModel: base,
		Name:      "Test Church",
		Slug:      "test-church-" + base.ID.String()[:8],
	}
}

// WithName sets a custom name (and matching slug) for the church
func (f *ChurchFactory) WithName(name, slug string) *models.Church {
	church := f.Create()
	church.Name = name
	church.Slug = slug
	return church
}

// MinistryFactory provides methods to create test Ministry data
type MinistryFactory struct{}

// NewMinistryFactory creates a new MinistryFactory
func NewMinistryFactory() *MinistryFactory {
	return &MinistryFactory{}
}

// Create creates a test Ministry with default values
func (f *MinistryFactory) Create() *models.Ministry {
	return &models.Ministry{
		BaseModel: newBase(),
		ChurchID:  uuid.New(),
		Name:      "Worship",
	}
}

// WithChurch creates a ministry attached to a church
func (f *MinistryFactory) WithChurch(churchID uuid.UUID) *models.Ministry {
	ministry := f.Create()
	ministry.ChurchID = churchID
	return ministry
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		BaseModel:  newBase(),
		MinistryID: uuid.New(),
		Name:       "Sound",
	}
}

// WithMinistry creates a department attached to a ministry
func (f *DepartmentFactory) WithMinistry(ministryID uuid.UUID) *models.Department {
	department := f.Create()
	department.MinistryID = ministryID
	return department
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	return &models.Member{
		BaseModel:    newBase(),
		DepartmentID: uuid.New(),
		FirstName:    "John",
		LastName:     "Doe",
	}
}

// WithDepartment creates a member of a department
func (f *MemberFactory) WithDepartment(departmentID uuid.UUID) *models.Member {
	member := f.Create()
	member.DepartmentID = departmentID
	return member
}

// WithName creates a member with a custom name
func (f *MemberFactory) WithName(departmentID uuid.UUID, firstName, lastName string) *models.Member {
	member := f.WithDepartment(departmentID)
	member.FirstName = firstName
	member.LastName = lastName
	return member
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel: base,
		Email:     "user-" + base.ID.String()[:8] + "@test.org",
		Name:      "Test User",
	}
}

// WithEmail creates a user with a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// RoleFactory provides methods to create test UserChurchRole data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a role assignment of the user at the church
func (f *RoleFactory) Create(userID, churchID uuid.UUID, role models.Role) *models.UserChurchRole {
	return &models.UserChurchRole{
		BaseModel: newBase(),
		UserID:    userID,
		ChurchID:  churchID,
		Role:      role,
	}
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: newBase(),
		ChurchID:  uuid.New(),
		Title:     "Sunday Service",
		Type:      "CULTE",
		Date:      time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
}

// WithChurch creates an event of a church
func (f *EventFactory) WithChurch(churchID uuid.UUID) *models.Event {
	event := f.Create()
	event.ChurchID = churchID
	return event
}

// WithDate creates an event of a church at a given date
func (f *EventFactory) WithDate(churchID uuid.UUID, date time.Time) *models.Event {
	event := f.WithChurch(churchID)
	event.Date = date
	return event
}

// FactorySet provides access to all factories
type FactorySet struct {
	Church     *ChurchFactory
	Ministry   *MinistryFactory
	Department *DepartmentFactory
	Member     *MemberFactory
	User       *UserFactory
	Role       *RoleFactory
	Event      *EventFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Church:     NewChurchFactory(),
		Ministry:   NewMinistryFactory(),
		Department: NewDepartmentFactory(),
		Member:     NewMemberFactory(),
		User:       NewUserFactory(),
		Role:       NewRoleFactory(),
		Event:      NewEventFactory(),
	}
}

// ChurchHierarchy is a church with one ministry, one department and an event
type ChurchHierarchy struct {
	Church     *models.Church
	Ministry   *models.Ministry
	Department *models.Department
	Event      *models.Event
}

// NewChurchHierarchy builds (without persisting) a consistent church hierarchy
func (fs *FactorySet) NewChurchHierarchy() *ChurchHierarchy {
	church := fs.Church.Create()
	ministry := fs.Ministry.WithChurch(church.ID)
	department := fs.Department.WithMinistry(ministry.ID)
	event := fs.Event.WithChurch(church.ID)
	return &ChurchHierarchy{
		Church:     church,
		Ministry:   ministry,
		Department: department,
		Event:      event,
	}
}
