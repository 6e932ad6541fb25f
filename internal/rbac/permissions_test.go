package rbac

import (
	"testing"

	"church-planning-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestResolvePermissions(t *testing.T) {
	testCases := []struct {
		name     string
		roles    []models.Role
		expected []Permission
		missing  []Permission
	}{
		{
			name:    "no roles grants nothing",
			roles:   nil,
			missing: []Permission{PermissionPlanningView},
		},
		{
			name:     "secretary can edit planning but not manage members",
			roles:    []models.Role{models.RoleSecretary},
			expected: []Permission{PermissionPlanningView, PermissionPlanningEdit, PermissionMembersView, PermissionEventsView, PermissionDepartmentsView},
			missing:  []Permission{PermissionMembersManage, PermissionEventsManage, PermissionChurchManage},
		},
		{
			name:     "admin manages events but not users",
			roles:    []models.Role{models.RoleAdmin},
			expected: []Permission{PermissionEventsManage, PermissionDepartmentsManage, PermissionMembersManage},
			missing:  []Permission{PermissionUsersManage, PermissionChurchManage},
		},
		{
			name:     "super admin holds everything",
			roles:    []models.Role{models.RoleSuperAdmin},
			expected: []Permission{PermissionChurchManage, PermissionUsersManage, PermissionPlanningEdit},
		},
		{
			name:     "union of secretary and department head",
			roles:    []models.Role{models.RoleSecretary, models.RoleDepartmentHead},
			expected: []Permission{PermissionPlanningEdit, PermissionMembersManage},
			missing:  []Permission{PermissionEventsManage},
		},
		{
			name:    "unknown role grants nothing",
			roles:   []models.Role{models.Role("JANITOR")},
			missing: []Permission{PermissionPlanningView},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := ResolvePermissions(tc.roles)
			for _, p := range tc.expected {
				assert.True(t, set.Has(p), "expected %s", p)
			}
			for _, p := range tc.missing {
				assert.False(t, set.Has(p), "unexpected %s", p)
			}
		})
	}
}

func TestResolvePermissions_OrderAndDuplicatesIgnored(t *testing.T) {
	a := ResolvePermissions([]models.Role{models.RoleMinister, models.RoleSecretary})
	b := ResolvePermissions([]models.Role{models.RoleSecretary, models.RoleMinister, models.RoleSecretary})

	assert.Equal(t, a.List(), b.List())
}

func TestPermissionsOf_ReturnsCopy(t *testing.T) {
	perms := PermissionsOf(models.RoleSecretary)
	perms[0] = PermissionChurchManage

	assert.False(t, ResolvePermissions([]models.Role{models.RoleSecretary}).Has(PermissionChurchManage))
	assert.Nil(t, PermissionsOf(models.Role("UNKNOWN")))
}

func TestIsGlobalRole(t *testing.T) {
	assert.True(t, IsGlobalRole(models.RoleSuperAdmin))
	assert.True(t, IsGlobalRole(models.RoleAdmin))
	assert.True(t, IsGlobalRole(models.RoleSecretary))
	assert.False(t, IsGlobalRole(models.RoleMinister))
	assert.False(t, IsGlobalRole(models.RoleDepartmentHead))
	assert.False(t, IsGlobalRole(models.Role("UNKNOWN")))
}

func TestEveryRoleHasDefinition(t *testing.T) {
	for _, role := range models.AllRoles {
		_, ok := ScopeOf(role)
		assert.True(t, ok, "role %s has no definition", role)
		assert.NotEmpty(t, PermissionsOf(role))
	}
}
