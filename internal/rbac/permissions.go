// Package rbac resolves what an authenticated user may do at a church and which
// departments they may act on. It holds no storage; callers pass the user's role
// assignments in.
package rbac

import (
	"sort"

	"church-planning-backend/internal/database/models"
)

// Permission is a named capability checked before an operation
type Permission string

const (
	PermissionPlanningView      Permission = "planning:view"
	PermissionPlanningEdit      Permission = "planning:edit"
	PermissionMembersView       Permission = "members:view"
	PermissionMembersManage     Permission = "members:manage"
	PermissionEventsView        Permission = "events:view"
	PermissionEventsManage      Permission = "events:manage"
	PermissionDepartmentsView   Permission = "departments:view"
	PermissionDepartmentsManage Permission = "departments:manage"
	PermissionChurchManage      Permission = "church:manage"
	PermissionUsersManage       Permission = "users:manage"
)

// ScopeKind tells how far a role reaches inside its church
type ScopeKind int

const (
	// ScopeChurch reaches every department of the church
	ScopeChurch ScopeKind = iota
	// ScopeMinistry reaches the departments of the attached ministry
	ScopeMinistry
	// ScopeDepartments reaches the explicitly attached departments
	ScopeDepartments
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeChurch:
		return "church"
	case ScopeMinistry:
		return "ministry"
	case ScopeDepartments:
		return "departments"
	}
	return "unknown"
}

type roleDefinition struct {
	permissions []Permission
	scope       ScopeKind
}

var roleTable = map[models.Role]roleDefinition{
	models.RoleSuperAdmin: {
		scope: ScopeChurch,
		permissions: []Permission{
			PermissionPlanningView, PermissionPlanningEdit,
			PermissionMembersView, PermissionMembersManage,
			PermissionEventsView, PermissionEventsManage,
			PermissionDepartmentsView, PermissionDepartmentsManage,
			PermissionChurchManage, PermissionUsersManage,
		},
	},
	models.RoleAdmin: {
		scope: ScopeChurch,
		permissions: []Permission{
			PermissionPlanningView, PermissionPlanningEdit,
			PermissionMembersView, PermissionMembersManage,
			PermissionEventsView, PermissionEventsManage,
			PermissionDepartmentsView, PermissionDepartmentsManage,
		},
	},
	models.RoleSecretary: {
		scope: ScopeChurch,
		permissions: []Permission{
			PermissionPlanningView, PermissionPlanningEdit,
			PermissionMembersView,
			PermissionEventsView,
			PermissionDepartmentsView,
		},
	},
	models.RoleMinister: {
		scope: ScopeMinistry,
		permissions: []Permission{
			PermissionPlanningView, PermissionPlanningEdit,
			PermissionMembersView, PermissionMembersManage,
			PermissionEventsView,
			PermissionDepartmentsView,
		},
	},
	models.RoleDepartmentHead: {
		scope: ScopeDepartments,
		permissions: []Permission{
			PermissionPlanningView, PermissionPlanningEdit,
			PermissionMembersView, PermissionMembersManage,
			PermissionEventsView,
			PermissionDepartmentsView,
		},
	},
}

// PermissionsOf returns the permissions granted by a single role.
// Unknown roles grant nothing.
func PermissionsOf(role models.Role) []Permission {
	def, ok := roleTable[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(def.permissions))
	copy(out, def.permissions)
	return out
}

// ScopeOf returns the scope kind of a role and whether the role is known
func ScopeOf(role models.Role) (ScopeKind, bool) {
	def, ok := roleTable[role]
	return def.scope, ok
}

// IsGlobalRole reports whether the role reaches every department of its church
func IsGlobalRole(role models.Role) bool {
	scope, ok := ScopeOf(role)
	return ok && scope == ScopeChurch
}

// PermissionSet is an unordered set of permissions
type PermissionSet map[Permission]struct{}

// Has reports whether the set contains the permission
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// List returns the permissions sorted by name
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolvePermissions returns the union of the permissions of every role.
// Order and duplicates in the input do not matter.
func ResolvePermissions(roles []models.Role) PermissionSet {
	set := make(PermissionSet)
	for _, role := range roles {
		for _, p := range roleTable[role].permissions {
			set[p] = struct{}{}
		}
	}
	return set
}
