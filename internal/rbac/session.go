package rbac

import (
	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"

	"github.com/google/uuid"
)

// Identity is the authenticated principal behind a request
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// RoleAssignment is one role a user holds at a church. MinistryDepartmentIDs
// must hold the departments of MinistryID when the role is ministry scoped.
type RoleAssignment struct {
	ChurchID              uuid.UUID
	Role                  models.Role
	MinistryID            *uuid.UUID
	DepartmentIDs         []uuid.UUID
	MinistryDepartmentIDs []uuid.UUID
}

// Session is the outcome of a successful permission check
type Session struct {
	Identity    Identity
	ChurchID    *uuid.UUID
	Assignments []RoleAssignment
	Permissions PermissionSet
}

// Roles returns the distinct roles of the session's assignments
func (s *Session) Roles() []models.Role {
	return rolesOf(s.Assignments)
}

// HasRole reports whether any assignment carries one of the roles
func (s *Session) HasRole(roles ...models.Role) bool {
	for _, a := range s.Assignments {
		for _, r := range roles {
			if a.Role == r {
				return true
			}
		}
	}
	return false
}

// DepartmentScope resolves the departments reachable from the session's assignments
func (s *Session) DepartmentScope() DepartmentScope {
	return ResolveDepartmentScope(s.Assignments)
}

// FilterByChurch keeps the assignments held at the church. A nil church keeps all.
func FilterByChurch(assignments []RoleAssignment, churchID *uuid.UUID) []RoleAssignment {
	if churchID == nil {
		out := make([]RoleAssignment, len(assignments))
		copy(out, assignments)
		return out
	}
	out := make([]RoleAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ChurchID == *churchID {
			out = append(out, a)
		}
	}
	return out
}

// RequirePermission checks that the identity holds the permission through the
// roles it has at the church (all churches when churchID is nil).
func RequirePermission(identity *Identity, assignments []RoleAssignment, permission Permission, churchID *uuid.UUID) (*Session, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	relevant := FilterByChurch(assignments, churchID)
	permissions := ResolvePermissions(rolesOf(relevant))
	if !permissions.Has(permission) {
		return nil, apperrors.ErrForbidden
	}

	return &Session{
		Identity:    *identity,
		ChurchID:    churchID,
		Assignments: relevant,
		Permissions: permissions,
	}, nil
}

func rolesOf(assignments []RoleAssignment) []models.Role {
	seen := make(map[models.Role]bool, len(assignments))
	roles := make([]models.Role, 0, len(assignments))
	for _, a := range assignments {
		if seen[a.Role] {
			continue
		}
		seen[a.Role] = true
		roles = append(roles, a.Role)
	}
	return roles
}
