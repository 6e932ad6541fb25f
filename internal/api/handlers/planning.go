package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanningHandler handles reading and writing the planning of one department for one event
type PlanningHandler struct {
	planningService service.PlanningServiceInterface
	access          service.AccessServiceInterface
}

// NewPlanningHandler creates a new planning handler
func NewPlanningHandler(planningService service.PlanningServiceInterface, access service.AccessServiceInterface) *PlanningHandler {
	return &PlanningHandler{
		planningService: planningService,
		access:          access,
	}
}

// GetPlanning handles GET /events/:id/departments/:departmentId/planning
// @Summary Get the planning of a department for an event
// @Description List every member of the department with its status for the event
// @Tags planning
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param departmentId path string true "Department ID (UUID)"
// @Success 200 {object} service.PlanningResponse "Successfully retrieved planning"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Event, department or link not found"
// @Security BearerAuth
// @Router /events/{id}/departments/{departmentId}/planning [get]
func (h *PlanningHandler) GetPlanning(c *gin.Context) {
	eventID, departmentID, ok := h.authorize(c, rbac.PermissionPlanningView)
	if !ok {
		return
	}

	planning, err := h.planningService.GetPlanning(eventID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, planning)
}

// SetPlanning handles PUT /events/:id/departments/:departmentId/planning
// @Summary Set the planning of a department for an event
// @Description Upsert member statuses for the event. A null status clears the assignment. At most one member per department and event may be EN_SERVICE_DEBRIEF.
// @Tags planning
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param departmentId path string true "Department ID (UUID)"
// @Param planning body service.SetPlanningRequest true "Member statuses"
// @Success 200 {object} service.SetPlanningResponse "Planning saved"
// @Failure 400 {object} ErrorResponse "Invalid batch, several debriefs or member outside the department"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Event or department not found"
// @Security BearerAuth
// @Router /events/{id}/departments/{departmentId}/planning [put]
func (h *PlanningHandler) SetPlanning(c *gin.Context) {
	eventID, departmentID, ok := h.authorize(c, rbac.PermissionPlanningEdit)
	if !ok {
		return
	}

	var req service.SetPlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.planningService.SetPlanning(c.Request.Context(), eventID, departmentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PlanningHandler) authorize(c *gin.Context, permission rbac.Permission) (uuid.UUID, uuid.UUID, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	eventID, ok := pathUUID(c, "id", "event")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	departmentID, ok := pathUUID(c, "departmentId", "department")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if _, err := h.access.AuthorizeDepartment(identity, permission, departmentID); err != nil {
		respondError(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	return eventID, departmentID, true
}
