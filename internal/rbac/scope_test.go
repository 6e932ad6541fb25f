package rbac

import (
	"testing"

	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveDepartmentScope_GlobalRoleIsUnscoped(t *testing.T) {
	for _, role := range []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleSecretary} {
		t.Run(string(role), func(t *testing.T) {
			scope := ResolveDepartmentScope([]RoleAssignment{
				{Role: models.RoleDepartmentHead, DepartmentIDs: []uuid.UUID{uuid.New()}},
				{Role: role},
			})
			assert.True(t, scope.IsUnscoped())
			assert.True(t, scope.Allows(uuid.New()))
			assert.Nil(t, scope.DepartmentIDs())
		})
	}
}

func TestResolveDepartmentScope_DepartmentHead(t *testing.T) {
	d1, d2, other := uuid.New(), uuid.New(), uuid.New()

	scope := ResolveDepartmentScope([]RoleAssignment{
		{Role: models.RoleDepartmentHead, DepartmentIDs: []uuid.UUID{d1, d2}},
	})

	assert.False(t, scope.IsUnscoped())
	assert.True(t, scope.Allows(d1))
	assert.True(t, scope.Allows(d2))
	assert.False(t, scope.Allows(other))
	assert.Equal(t, []uuid.UUID{d2, d1}, scope.Filter([]uuid.UUID{other, d2, d1}))
}

func TestResolveDepartmentScope_MinisterAndHeadUnion(t *testing.T) {
	ministryID := uuid.New()
	m1, m2, h1 := uuid.New(), uuid.New(), uuid.New()

	scope := ResolveDepartmentScope([]RoleAssignment{
		{Role: models.RoleMinister, MinistryID: &ministryID, MinistryDepartmentIDs: []uuid.UUID{m1, m2}},
		{Role: models.RoleDepartmentHead, DepartmentIDs: []uuid.UUID{h1, m1}},
	})

	assert.ElementsMatch(t, []uuid.UUID{m1, m2, h1}, scope.DepartmentIDs())
}

func TestResolveDepartmentScope_MinisterWithoutMinistry(t *testing.T) {
	scope := ResolveDepartmentScope([]RoleAssignment{
		{Role: models.RoleMinister, MinistryDepartmentIDs: []uuid.UUID{uuid.New()}},
	})

	assert.False(t, scope.IsUnscoped())
	assert.Empty(t, scope.DepartmentIDs())
}

func TestResolveDepartmentScope_NoAssignments(t *testing.T) {
	scope := ResolveDepartmentScope(nil)

	assert.False(t, scope.IsUnscoped())
	assert.False(t, scope.Allows(uuid.New()))
	assert.Empty(t, scope.Filter([]uuid.UUID{uuid.New()}))
}

func TestScopeKindString(t *testing.T) {
	assert.Equal(t, "church", ScopeChurch.String())
	assert.Equal(t, "ministry", ScopeMinistry.String())
	assert.Equal(t, "departments", ScopeDepartments.String())
	assert.Equal(t, "unknown", ScopeKind(42).String())
}
