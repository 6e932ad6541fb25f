package repository

import (
	"time"

	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ChurchRepositoryInterface defines the interface for church repository operations
type ChurchRepositoryInterface interface {
	Create(church *models.Church) error
	GetByID(id uuid.UUID) (*models.Church, error)
	GetBySlug(slug string) (*models.Church, error)
	GetAll() ([]models.Church, error)
	GetByIDs(ids []uuid.UUID) ([]models.Church, error)
	Update(church *models.Church) error
	Delete(id uuid.UUID) error
}

// MinistryRepositoryInterface defines the interface for ministry repository operations
type MinistryRepositoryInterface interface {
	Create(ministry *models.Ministry) error
	GetByID(id uuid.UUID) (*models.Ministry, error)
	GetByChurchID(churchID uuid.UUID) ([]models.Ministry, error)
	Update(ministry *models.Ministry) error
	Delete(id uuid.UUID) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetWithMinistry(id uuid.UUID) (*models.Department, error)
	GetByChurchID(churchID uuid.UUID) ([]models.Department, error)
	GetByMinistryID(ministryID uuid.UUID) ([]models.Department, error)
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByIDs(ids []uuid.UUID) ([]models.Member, error)
	GetByDepartmentID(departmentID uuid.UUID) ([]models.Member, error)
	GetByDepartmentIDs(departmentIDs []uuid.UUID) ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmails(emails []string) ([]models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	GetByChurchID(churchID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	UpdateDisplayName(id uuid.UUID, displayName string) error
}

// RoleRepositoryInterface defines the interface for user church role operations
type RoleRepositoryInterface interface {
	Create(role *models.UserChurchRole) error
	GetByID(id uuid.UUID) (*models.UserChurchRole, error)
	GetByUserID(userID uuid.UUID) ([]models.UserChurchRole, error)
	Find(userID, churchID uuid.UUID, role models.Role) (*models.UserChurchRole, error)
	GetUserIDsByRole(role models.Role) ([]uuid.UUID, error)
	Update(role *models.UserChurchRole) error
	ReplaceDepartments(roleID uuid.UUID, departmentIDs []uuid.UUID) error
	Ensure(userID, churchID uuid.UUID, role models.Role) (bool, error)
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetByChurchID(churchID uuid.UUID) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// PlanningRepositoryInterface defines the interface for event-department links and plannings
type PlanningRepositoryInterface interface {
	GetEventDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error)
	GetEventDepartmentsByEventID(eventID uuid.UUID) ([]models.EventDepartment, error)
	EnsureEventDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error)
	DeleteEventDepartment(eventID, departmentID uuid.UUID) (int64, error)
	GetByEventDepartmentID(eventDepartmentID uuid.UUID) ([]models.Planning, error)
	SavePlannings(eventID, departmentID uuid.UUID, plannings []models.Planning) (*models.EventDepartment, []models.Planning, error)
	GetDepartmentSchedule(departmentID uuid.UUID, from, to time.Time, statuses []models.PlanningStatus) ([]models.EventDepartment, error)
	GetEventRoster(eventID uuid.UUID, statuses []models.PlanningStatus) ([]models.EventDepartment, error)
}
