package rbac

import (
	"testing"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirePermission_Unauthenticated(t *testing.T) {
	churchID := uuid.New()
	assignments := []RoleAssignment{{ChurchID: churchID, Role: models.RoleSuperAdmin}}

	session, err := RequirePermission(nil, assignments, PermissionPlanningView, &churchID)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestRequirePermission_Forbidden(t *testing.T) {
	identity := &Identity{UserID: uuid.New(), Email: "sec@church.org"}
	churchID := uuid.New()
	assignments := []RoleAssignment{{ChurchID: churchID, Role: models.RoleSecretary}}

	session, err := RequirePermission(identity, assignments, PermissionMembersManage, &churchID)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestRequirePermission_ChurchFiltering(t *testing.T) {
	identity := &Identity{UserID: uuid.New()}
	churchA := uuid.New()
	churchB := uuid.New()
	assignments := []RoleAssignment{
		{ChurchID: churchA, Role: models.RoleAdmin},
		{ChurchID: churchB, Role: models.RoleSecretary},
	}

	t.Run("role at another church does not count", func(t *testing.T) {
		_, err := RequirePermission(identity, assignments, PermissionEventsManage, &churchB)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("role at the church counts", func(t *testing.T) {
		session, err := RequirePermission(identity, assignments, PermissionEventsManage, &churchA)
		require.NoError(t, err)
		assert.Len(t, session.Assignments, 1)
		assert.Equal(t, []models.Role{models.RoleAdmin}, session.Roles())
		assert.Equal(t, churchA, *session.ChurchID)
	})

	t.Run("no church considers every role", func(t *testing.T) {
		session, err := RequirePermission(identity, assignments, PermissionEventsManage, nil)
		require.NoError(t, err)
		assert.Len(t, session.Assignments, 2)
		assert.True(t, session.HasRole(models.RoleSecretary))
		assert.False(t, session.HasRole(models.RoleMinister))
	})
}

func TestRequirePermission_NoRoles(t *testing.T) {
	identity := &Identity{UserID: uuid.New()}

	_, err := RequirePermission(identity, nil, PermissionPlanningView, nil)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFilterByChurch(t *testing.T) {
	churchA := uuid.New()
	churchB := uuid.New()
	assignments := []RoleAssignment{
		{ChurchID: churchA, Role: models.RoleAdmin},
		{ChurchID: churchB, Role: models.RoleMinister},
		{ChurchID: churchA, Role: models.RoleSecretary},
	}

	filtered := FilterByChurch(assignments, &churchA)
	assert.Len(t, filtered, 2)
	for _, a := range filtered {
		assert.Equal(t, churchA, a.ChurchID)
	}

	assert.Len(t, FilterByChurch(assignments, nil), 3)
	missing := uuid.New()
	assert.Empty(t, FilterByChurch(assignments, &missing))
}
