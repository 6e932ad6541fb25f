package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes maintenance operations to super admins
type AdminHandler struct {
	superAdmin service.SuperAdminServiceInterface
	access     service.AccessServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(superAdmin service.SuperAdminServiceInterface, access service.AccessServiceInterface) *AdminHandler {
	return &AdminHandler{superAdmin: superAdmin, access: access}
}

// ReconcileSuperAdmins handles POST /admin/reconcile-super-admins
// @Summary Reconcile super admins
// @Description Grant SUPER_ADMIN on every church to every existing user whose email is configured
// @Tags admin
// @Produce json
// @Success 200 {object} service.ReconcileResult "Reconciliation finished"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /admin/reconcile-super-admins [post]
func (h *AdminHandler) ReconcileSuperAdmins(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if !h.access.IsSuperAdmin(identity) {
		if _, err := h.access.Authorize(identity, rbac.PermissionChurchManage, nil); err != nil {
			respondError(c, err)
			return
		}
	}

	result, err := h.superAdmin.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
