package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the current user, profiles and role assignments
type UserHandler struct {
	userService service.UserServiceInterface
	access      service.AccessServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, access service.AccessServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
		access:      access,
	}
}

// GetMe handles GET /me
// @Summary Current user
// @Description Return the authenticated user with role assignments and resolved access per church
// @Tags users
// @Produce json
// @Success 200 {object} service.MeResponse "Successfully retrieved current user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	me, err := h.userService.GetMe(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, me)
}

// ListUsers handles GET /users
// @Summary List users of a church
// @Description List the users holding a role at the church with those roles
// @Tags users
// @Produce json
// @Param churchId query string false "Church ID (UUID); alternatively the X-Church-ID header"
// @Success 200 {array} models.User "Successfully retrieved users"
// @Failure 400 {object} ErrorResponse "Missing or invalid church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	churchID, ok := churchSession(c)
	if !ok {
		return
	}

	users, err := h.userService.ListByChurch(churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateProfile handles PATCH /users/:id/profile
// @Summary Update a display name
// @Description Users edit their own display name; church wide roles edit anyone's
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} models.User "Successfully updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(identity, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// AddRole handles POST /users/:id/roles
// @Summary Grant a role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body service.AddRoleRequest true "Role assignment"
// @Success 201 {object} models.UserChurchRole "Role granted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "User, church or ministry not found"
// @Failure 409 {object} ErrorResponse "Role already held"
// @Security BearerAuth
// @Router /users/{id}/roles [post]
func (h *UserHandler) AddRole(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.AddRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionUsersManage, &req.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	role, err := h.userService.AddRole(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

// UpdateRole handles PATCH /users/:id/roles
// @Summary Change the scope of a role
// @Description Set or clear the ministry of a role and replace its attached departments
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body service.UpdateRoleRequest true "Role changes"
// @Success 200 {object} models.UserChurchRole "Role updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /users/{id}/roles [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	existing, err := h.userService.GetRole(userID, req.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.access.Authorize(identity, rbac.PermissionUsersManage, &existing.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	role, err := h.userService.UpdateRole(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// RemoveRole handles DELETE /users/:id/roles
// @Summary Revoke a role
// @Tags users
// @Accept json
// @Param id path string true "User ID (UUID)"
// @Param role body service.RemoveRoleRequest true "Role to revoke"
// @Success 204 "Role revoked"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /users/{id}/roles [delete]
func (h *UserHandler) RemoveRole(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.RemoveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionUsersManage, &req.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.userService.RemoveRole(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
