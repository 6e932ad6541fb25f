package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"church-planning-backend/internal/api/handlers"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/mocks"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"
	"church-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ReconcileSuperAdmins(t *testing.T) {
	identity := &rbac.Identity{UserID: uuid.New(), Email: "root@church.org"}

	setup := func(t *testing.T) (*mocks.MockSuperAdminServiceInterface, *mocks.MockAccessServiceInterface, *testutils.HTTPTestSuite) {
		ctrl := gomock.NewController(t)
		superAdmin := mocks.NewMockSuperAdminServiceInterface(ctrl)
		access := mocks.NewMockAccessServiceInterface(ctrl)
		handler := handlers.NewAdminHandler(superAdmin, access)

		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.POST("/api/v1/admin/reconcile-super-admins", withIdentity(identity), handler.ReconcileSuperAdmins)
		return superAdmin, access, httpSuite
	}

	t.Run("configured super admin", func(t *testing.T) {
		superAdmin, access, httpSuite := setup(t)
		access.EXPECT().IsSuperAdmin(identity).Return(true)
		superAdmin.EXPECT().Reconcile(gomock.Any()).DoAndReturn(func(_ context.Context) (*service.ReconcileResult, error) {
			return &service.ReconcileResult{Users: 1, Churches: 3, Created: 2}, nil
		})

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/reconcile-super-admins", nil)

		var result service.ReconcileResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &result)
		assert.Equal(t, 2, result.Created)
	})

	t.Run("assigned role without church manage", func(t *testing.T) {
		_, access, httpSuite := setup(t)
		access.EXPECT().IsSuperAdmin(identity).Return(false)
		access.EXPECT().Authorize(identity, rbac.PermissionChurchManage, nil).Return(nil, apperrors.ErrForbidden)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/reconcile-super-admins", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("database failure", func(t *testing.T) {
		superAdmin, access, httpSuite := setup(t)
		access.EXPECT().IsSuperAdmin(identity).Return(true)
		superAdmin.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("connection reset"))

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/reconcile-super-admins", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
	})
}
