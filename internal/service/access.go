package service

import (
	"errors"
	"fmt"
	"strings"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessService loads role assignments and answers permission and scope questions
type AccessService struct {
	roleRepo         repository.RoleRepositoryInterface
	departmentRepo   repository.DepartmentRepositoryInterface
	eventRepo        repository.EventRepositoryInterface
	superAdminEmails map[string]bool
}

// NewAccessService creates a new access service
func NewAccessService(roleRepo repository.RoleRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, eventRepo repository.EventRepositoryInterface, superAdminEmails []string) *AccessService {
	emails := make(map[string]bool, len(superAdminEmails))
	for _, e := range superAdminEmails {
		emails[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &AccessService{
		roleRepo:         roleRepo,
		departmentRepo:   departmentRepo,
		eventRepo:        eventRepo,
		superAdminEmails: emails,
	}
}

// Assignments loads every role the user holds, with the departments of attached
// ministries resolved.
func (s *AccessService) Assignments(userID uuid.UUID) ([]rbac.RoleAssignment, error) {
	roles, err := s.roleRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role assignments: %w", err)
	}
	return toAssignments(roles), nil
}

func toAssignments(roles []models.UserChurchRole) []rbac.RoleAssignment {
	assignments := make([]rbac.RoleAssignment, 0, len(roles))
	for i := range roles {
		role := &roles[i]
		a := rbac.RoleAssignment{
			ChurchID:      role.ChurchID,
			Role:          role.Role,
			MinistryID:    role.MinistryID,
			DepartmentIDs: role.DepartmentIDs(),
		}
		if role.Ministry != nil {
			for _, d := range role.Ministry.Departments {
				a.MinistryDepartmentIDs = append(a.MinistryDepartmentIDs, d.ID)
			}
		}
		assignments = append(assignments, a)
	}
	return assignments
}

// Authorize checks a permission at a church, or across all churches when churchID is nil
func (s *AccessService) Authorize(identity *rbac.Identity, permission rbac.Permission, churchID *uuid.UUID) (*rbac.Session, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	assignments, err := s.Assignments(identity.UserID)
	if err != nil {
		return nil, err
	}
	return rbac.RequirePermission(identity, assignments, permission, churchID)
}

// AuthorizeDepartment checks a permission at the department's church and that the
// department is inside the caller's scope.
func (s *AccessService) AuthorizeDepartment(identity *rbac.Identity, permission rbac.Permission, departmentID uuid.UUID) (*rbac.Session, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	department, err := s.departmentRepo.GetWithMinistry(departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if department.Ministry == nil {
		return nil, fmt.Errorf("department %s has no ministry loaded", departmentID)
	}

	churchID := department.Ministry.ChurchID
	session, err := s.Authorize(identity, permission, &churchID)
	if err != nil {
		return nil, err
	}

	if !session.DepartmentScope().Allows(departmentID) {
		return nil, apperrors.ErrOutOfScope
	}
	return session, nil
}

// AuthorizeEvent checks a permission at the event's church
func (s *AccessService) AuthorizeEvent(identity *rbac.Identity, permission rbac.Permission, eventID uuid.UUID) (*rbac.Session, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return s.Authorize(identity, permission, &event.ChurchID)
}

// DepartmentScope returns the departments the user may act on at the church
func (s *AccessService) DepartmentScope(identity *rbac.Identity, churchID uuid.UUID) (rbac.DepartmentScope, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return rbac.DepartmentScope{}, apperrors.ErrUnauthenticated
	}

	assignments, err := s.Assignments(identity.UserID)
	if err != nil {
		return rbac.DepartmentScope{}, err
	}
	return rbac.ResolveDepartmentScope(rbac.FilterByChurch(assignments, &churchID)), nil
}

// IsSuperAdmin reports whether the identity's email is a configured super admin
func (s *AccessService) IsSuperAdmin(identity *rbac.Identity) bool {
	if identity == nil {
		return false
	}
	return s.superAdminEmails[strings.ToLower(strings.TrimSpace(identity.Email))]
}
