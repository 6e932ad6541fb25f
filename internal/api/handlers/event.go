package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for events and their department links
type EventHandler struct {
	eventService    service.EventServiceInterface
	planningService service.PlanningServiceInterface
	access          service.AccessServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface, planningService service.PlanningServiceInterface, access service.AccessServiceInterface) *EventHandler {
	return &EventHandler{
		eventService:    eventService,
		planningService: planningService,
		access:          access,
	}
}

// EventDepartmentRequest identifies the department to link or unlink
type EventDepartmentRequest struct {
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
}

// ListEvents handles GET /events
// @Summary List events of a church
// @Tags events
// @Produce json
// @Param churchId query string false "Church ID (UUID); alternatively the X-Church-ID header"
// @Success 200 {array} models.Event "Successfully retrieved events"
// @Failure 400 {object} ErrorResponse "Missing or invalid church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	churchID, ok := churchSession(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListByChurch(churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} models.Event "Successfully created event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Church not found"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.access.Authorize(identity, rbac.PermissionEventsManage, &req.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /events/:id
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} models.Event "Successfully retrieved event"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsView)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /events/:id
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} models.Event "Successfully updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsManage)
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Delete an event with its department links and plannings
// @Tags events
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Event deleted"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsManage)
	if !ok {
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStarView handles GET /events/:id/star-view
// @Summary Event roster
// @Description List, for every department serving at the event, the members on duty and the total count
// @Tags planning
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.StarViewResponse "Successfully retrieved roster"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/star-view [get]
func (h *EventHandler) GetStarView(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsView)
	if !ok {
		return
	}

	view, err := h.planningService.GetStarView(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// LinkDepartment handles POST /events/:id/departments
// @Summary Link a department to an event
// @Description Ask a department of the event's church to serve at the event. Linking twice returns the existing link.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param link body EventDepartmentRequest true "Department to link"
// @Success 201 {object} models.EventDepartment "Department linked"
// @Failure 400 {object} ErrorResponse "Invalid request or department of another church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event or department not found"
// @Security BearerAuth
// @Router /events/{id}/departments [post]
func (h *EventHandler) LinkDepartment(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsManage)
	if !ok {
		return
	}

	var req EventDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.planningService.LinkDepartment(id, req.DepartmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UnlinkDepartment handles DELETE /events/:id/departments
// @Summary Unlink a department from an event
// @Description Remove a department from an event along with its plannings
// @Tags events
// @Accept json
// @Param id path string true "Event ID (UUID)"
// @Param link body EventDepartmentRequest true "Department to unlink"
// @Success 204 "Department unlinked"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Event or link not found"
// @Security BearerAuth
// @Router /events/{id}/departments [delete]
func (h *EventHandler) UnlinkDepartment(c *gin.Context) {
	id, ok := h.authorizeEvent(c, rbac.PermissionEventsManage)
	if !ok {
		return
	}

	var req EventDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.planningService.UnlinkDepartment(id, req.DepartmentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventHandler) authorizeEvent(c *gin.Context, permission rbac.Permission) (uuid.UUID, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := pathUUID(c, "id", "event")
	if !ok {
		return uuid.Nil, false
	}
	if _, err := h.access.AuthorizeEvent(identity, permission, id); err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
