package service

import (
	"context"

	"church-planning-backend/internal/auth"
	"church-planning-backend/internal/database/models"
	"church-planning-backend/internal/rbac"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccessServiceInterface defines the interface for permission and scope checks
type AccessServiceInterface interface {
	Assignments(userID uuid.UUID) ([]rbac.RoleAssignment, error)
	Authorize(identity *rbac.Identity, permission rbac.Permission, churchID *uuid.UUID) (*rbac.Session, error)
	AuthorizeDepartment(identity *rbac.Identity, permission rbac.Permission, departmentID uuid.UUID) (*rbac.Session, error)
	AuthorizeEvent(identity *rbac.Identity, permission rbac.Permission, eventID uuid.UUID) (*rbac.Session, error)
	DepartmentScope(identity *rbac.Identity, churchID uuid.UUID) (rbac.DepartmentScope, error)
	IsSuperAdmin(identity *rbac.Identity) bool
}

// PlanningServiceInterface defines the interface for the planning engine
type PlanningServiceInterface interface {
	GetPlanning(eventID, departmentID uuid.UUID) (*PlanningResponse, error)
	SetPlanning(ctx context.Context, eventID, departmentID uuid.UUID, req *SetPlanningRequest) (*SetPlanningResponse, error)
	LinkDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error)
	UnlinkDepartment(eventID, departmentID uuid.UUID) error
	GetMonthlyPlanning(departmentID uuid.UUID, month string) (*MonthlyPlanningResponse, error)
	GetStarView(eventID uuid.UUID) (*StarViewResponse, error)
}

// ChurchServiceInterface defines the interface for church service
type ChurchServiceInterface interface {
	Create(ctx context.Context, req *CreateChurchRequest) (*models.Church, error)
	GetByID(id uuid.UUID) (*models.Church, error)
	ListForUser(identity *rbac.Identity, all bool) ([]models.Church, error)
	Update(id uuid.UUID, req *UpdateChurchRequest) (*models.Church, error)
	Delete(id uuid.UUID) error
}

// MinistryServiceInterface defines the interface for ministry service
type MinistryServiceInterface interface {
	Create(req *CreateMinistryRequest) (*models.Ministry, error)
	GetByID(id uuid.UUID) (*models.Ministry, error)
	ListByChurch(churchID uuid.UUID) ([]models.Ministry, error)
	Update(id uuid.UUID, req *UpdateMinistryRequest) (*models.Ministry, error)
	Delete(id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*models.Department, error)
	GetByID(id uuid.UUID) (*models.Department, error)
	ListByChurch(churchID uuid.UUID, scope rbac.DepartmentScope) ([]models.Department, error)
	ListByMinistry(ministryID uuid.UUID, scope rbac.DepartmentScope) ([]models.Department, error)
	Update(id uuid.UUID, req *UpdateDepartmentRequest) (*models.Department, error)
	Delete(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	Create(req *CreateMemberRequest) (*models.Member, error)
	GetByID(id uuid.UUID) (*models.Member, error)
	ListByDepartment(departmentID uuid.UUID) ([]models.Member, error)
	ListByChurch(churchID uuid.UUID, scope rbac.DepartmentScope) ([]models.Member, error)
	Update(id uuid.UUID, req *UpdateMemberRequest) (*models.Member, error)
	Delete(id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*models.Event, error)
	GetByID(id uuid.UUID) (*models.Event, error)
	ListByChurch(churchID uuid.UUID) ([]models.Event, error)
	Update(id uuid.UUID, req *UpdateEventRequest) (*models.Event, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	auth.UserProvisioner
	GetMe(userID uuid.UUID) (*MeResponse, error)
	ListByChurch(churchID uuid.UUID) ([]models.User, error)
	UpdateProfile(identity *rbac.Identity, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error)
	GetRole(userID, roleID uuid.UUID) (*models.UserChurchRole, error)
	AddRole(userID uuid.UUID, req *AddRoleRequest) (*models.UserChurchRole, error)
	UpdateRole(userID uuid.UUID, req *UpdateRoleRequest) (*models.UserChurchRole, error)
	RemoveRole(userID uuid.UUID, req *RemoveRoleRequest) error
}

// SuperAdminServiceInterface defines the interface for super-admin reconciliation
type SuperAdminServiceInterface interface {
	Reconcile(ctx context.Context) (*ReconcileResult, error)
	ReconcileChurch(ctx context.Context, churchID uuid.UUID) (int, error)
	ReconcileUser(ctx context.Context, user *models.User) (int, error)
}
