package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChurchHandler handles HTTP requests for church operations
type ChurchHandler struct {
	churchService service.ChurchServiceInterface
	access        service.AccessServiceInterface
}

// NewChurchHandler creates a new church handler
func NewChurchHandler(churchService service.ChurchServiceInterface, access service.AccessServiceInterface) *ChurchHandler {
	return &ChurchHandler{
		churchService: churchService,
		access:        access,
	}
}

// canManageChurches reports whether the caller administers churches globally
func (h *ChurchHandler) canManageChurches(identity *rbac.Identity) (bool, error) {
	if h.access.IsSuperAdmin(identity) {
		return true, nil
	}
	if _, err := h.access.Authorize(identity, rbac.PermissionChurchManage, nil); err != nil {
		if isDenied(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListChurches handles GET /churches
// @Summary List churches
// @Description List the churches the caller holds a role at; church administrators see every church
// @Tags churches
// @Produce json
// @Success 200 {array} models.Church "Successfully retrieved churches"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /churches [get]
func (h *ChurchHandler) ListChurches(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	all, err := h.canManageChurches(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	churches, err := h.churchService.ListForUser(identity, all)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, churches)
}

// CreateChurch handles POST /churches
// @Summary Create a church
// @Description Create a church; the slug is derived from the name when omitted
// @Tags churches
// @Accept json
// @Produce json
// @Param church body service.CreateChurchRequest true "Church data"
// @Success 201 {object} models.Church "Successfully created church"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /churches [post]
func (h *ChurchHandler) CreateChurch(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	allowed, err := h.canManageChurches(identity)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "insufficient permissions"})
		return
	}

	var req service.CreateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	church, err := h.churchService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, church)
}

// GetChurch handles GET /churches/:id
// @Summary Get church by ID
// @Tags churches
// @Produce json
// @Param id path string true "Church ID (UUID)"
// @Success 200 {object} models.Church "Successfully retrieved church"
// @Failure 400 {object} ErrorResponse "Invalid church ID"
// @Failure 403 {object} ErrorResponse "No role at this church"
// @Failure 404 {object} ErrorResponse "Church not found"
// @Security BearerAuth
// @Router /churches/{id} [get]
func (h *ChurchHandler) GetChurch(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "church")
	if !ok {
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionEventsView, &id); err != nil {
		respondError(c, err)
		return
	}

	church, err := h.churchService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, church)
}

// UpdateChurch handles PUT /churches/:id
// @Summary Update a church
// @Description Rename a church; the slug is recomputed from the name when omitted
// @Tags churches
// @Accept json
// @Produce json
// @Param id path string true "Church ID (UUID)"
// @Param church body service.UpdateChurchRequest true "Church data"
// @Success 200 {object} models.Church "Successfully updated church"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Church not found"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Security BearerAuth
// @Router /churches/{id} [put]
func (h *ChurchHandler) UpdateChurch(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "church")
	if !ok {
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionChurchManage, &id); err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	church, err := h.churchService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, church)
}

// DeleteChurch handles DELETE /churches/:id
// @Summary Delete a church
// @Description Delete a church with its ministries, departments, members, events and role assignments
// @Tags churches
// @Param id path string true "Church ID (UUID)"
// @Success 204 "Church deleted"
// @Failure 400 {object} ErrorResponse "Invalid church ID"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Church not found"
// @Security BearerAuth
// @Router /churches/{id} [delete]
func (h *ChurchHandler) DeleteChurch(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "church")
	if !ok {
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionChurchManage, &id); err != nil {
		respondError(c, err)
		return
	}

	if err := h.churchService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
