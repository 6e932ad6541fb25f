package rbac

import (
	"github.com/google/uuid"
)

// DepartmentScope is either unscoped (every department of the church) or a
// fixed set of department ids.
type DepartmentScope struct {
	unscoped    bool
	departments map[uuid.UUID]struct{}
}

// Unscoped returns a scope reaching every department
func Unscoped() DepartmentScope {
	return DepartmentScope{unscoped: true}
}

// Scoped returns a scope limited to the given departments
func Scoped(ids ...uuid.UUID) DepartmentScope {
	scope := DepartmentScope{departments: make(map[uuid.UUID]struct{}, len(ids))}
	for _, id := range ids {
		scope.departments[id] = struct{}{}
	}
	return scope
}

// IsUnscoped reports whether the scope reaches every department
func (s DepartmentScope) IsUnscoped() bool {
	return s.unscoped
}

// Allows reports whether the department is reachable
func (s DepartmentScope) Allows(departmentID uuid.UUID) bool {
	if s.unscoped {
		return true
	}
	_, ok := s.departments[departmentID]
	return ok
}

// Filter keeps the reachable department ids, preserving input order
func (s DepartmentScope) Filter(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if s.Allows(id) {
			out = append(out, id)
		}
	}
	return out
}

// DepartmentIDs returns the ids of a scoped scope; nil when unscoped
func (s DepartmentScope) DepartmentIDs() []uuid.UUID {
	if s.unscoped {
		return nil
	}
	out := make([]uuid.UUID, 0, len(s.departments))
	for id := range s.departments {
		out = append(out, id)
	}
	return out
}

// ResolveDepartmentScope computes the departments reachable through the
// assignments. Any church wide role makes the scope unscoped; otherwise it is the
// union of attached departments and departments of attached ministries.
func ResolveDepartmentScope(assignments []RoleAssignment) DepartmentScope {
	var ids []uuid.UUID
	for _, a := range assignments {
		kind, ok := ScopeOf(a.Role)
		if !ok {
			continue
		}
		switch kind {
		case ScopeChurch:
			return Unscoped()
		case ScopeMinistry:
			if a.MinistryID != nil {
				ids = append(ids, a.MinistryDepartmentIDs...)
			}
		case ScopeDepartments:
			ids = append(ids, a.DepartmentIDs...)
		}
	}
	return Scoped(ids...)
}
