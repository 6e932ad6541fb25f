package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MinistryHandler handles HTTP requests for ministry operations
type MinistryHandler struct {
	ministryService service.MinistryServiceInterface
	access          service.AccessServiceInterface
}

// NewMinistryHandler creates a new ministry handler
func NewMinistryHandler(ministryService service.MinistryServiceInterface, access service.AccessServiceInterface) *MinistryHandler {
	return &MinistryHandler{
		ministryService: ministryService,
		access:          access,
	}
}

// ListMinistries handles GET /ministries
// @Summary List ministries of a church
// @Tags ministries
// @Produce json
// @Param churchId query string false "Church ID (UUID); alternatively the X-Church-ID header"
// @Success 200 {array} models.Ministry "Successfully retrieved ministries"
// @Failure 400 {object} ErrorResponse "Missing or invalid church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /ministries [get]
func (h *MinistryHandler) ListMinistries(c *gin.Context) {
	churchID, ok := churchSession(c)
	if !ok {
		return
	}

	ministries, err := h.ministryService.ListByChurch(churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ministries)
}

// CreateMinistry handles POST /ministries
// @Summary Create a ministry
// @Tags ministries
// @Accept json
// @Produce json
// @Param ministry body service.CreateMinistryRequest true "Ministry data"
// @Success 201 {object} models.Ministry "Successfully created ministry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Church not found"
// @Security BearerAuth
// @Router /ministries [post]
func (h *MinistryHandler) CreateMinistry(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateMinistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionDepartmentsManage, &req.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	ministry, err := h.ministryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ministry)
}

// UpdateMinistry handles PUT /ministries/:id
// @Summary Rename a ministry
// @Tags ministries
// @Accept json
// @Produce json
// @Param id path string true "Ministry ID (UUID)"
// @Param ministry body service.UpdateMinistryRequest true "Ministry data"
// @Success 200 {object} models.Ministry "Successfully updated ministry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Ministry not found"
// @Security BearerAuth
// @Router /ministries/{id} [put]
func (h *MinistryHandler) UpdateMinistry(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "ministry")
	if !ok {
		return
	}

	var req service.UpdateMinistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !h.authorizeMinistry(c, identity, id) {
		return
	}

	ministry, err := h.ministryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ministry)
}

// DeleteMinistry handles DELETE /ministries/:id
// @Summary Delete a ministry
// @Description Delete a ministry with its departments
// @Tags ministries
// @Param id path string true "Ministry ID (UUID)"
// @Success 204 "Ministry deleted"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Ministry not found"
// @Security BearerAuth
// @Router /ministries/{id} [delete]
func (h *MinistryHandler) DeleteMinistry(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "ministry")
	if !ok {
		return
	}

	if !h.authorizeMinistry(c, identity, id) {
		return
	}

	if err := h.ministryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MinistryHandler) authorizeMinistry(c *gin.Context, identity *rbac.Identity, id uuid.UUID) bool {
	ministry, err := h.ministryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return false
	}
	if _, err := h.access.Authorize(identity, rbac.PermissionDepartmentsManage, &ministry.ChurchID); err != nil {
		respondError(c, err)
		return false
	}
	return true
}
