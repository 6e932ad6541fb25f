package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepartmentHandler handles HTTP requests for departments and their read models
type DepartmentHandler struct {
	departmentService service.DepartmentServiceInterface
	ministryService   service.MinistryServiceInterface
	memberService     service.MemberServiceInterface
	planningService   service.PlanningServiceInterface
	access            service.AccessServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(
	departmentService service.DepartmentServiceInterface,
	ministryService service.MinistryServiceInterface,
	memberService service.MemberServiceInterface,
	planningService service.PlanningServiceInterface,
	access service.AccessServiceInterface,
) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
		ministryService:   ministryService,
		memberService:     memberService,
		planningService:   planningService,
		access:            access,
	}
}

// ListDepartments handles GET /departments
// @Summary List departments of a church
// @Description List the departments of a church the caller can reach, optionally within one ministry
// @Tags departments
// @Produce json
// @Param churchId query string false "Church ID (UUID); alternatively the X-Church-ID header"
// @Param ministryId query string false "Ministry ID (UUID) to filter departments"
// @Success 200 {array} models.Department "Successfully retrieved departments"
// @Failure 400 {object} ErrorResponse "Missing or invalid church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	churchID, ok := requireChurch(c)
	if !ok {
		return
	}

	session, err := h.access.Authorize(identity, rbac.PermissionDepartmentsView, &churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	scope := session.DepartmentScope()

	if raw := c.Query("ministryId"); raw != "" {
		ministryID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ministry ID"})
			return
		}
		departments, err := h.departmentService.ListByMinistry(ministryID, scope)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, departments)
		return
	}

	departments, err := h.departmentService.ListByChurch(churchID, scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// CreateDepartment handles POST /departments
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} models.Department "Successfully created department"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Ministry not found"
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ministry, err := h.ministryService.GetByID(req.MinistryID)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.access.Authorize(identity, rbac.PermissionDepartmentsManage, &ministry.ChurchID); err != nil {
		respondError(c, err)
		return
	}

	department, err := h.departmentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment handles GET /departments/:id
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} models.Department "Successfully retrieved department"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := h.authorizeDepartment(c, rbac.PermissionDepartmentsView)
	if !ok {
		return
	}

	department, err := h.departmentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// UpdateDepartment handles PUT /departments/:id
// @Summary Rename or move a department
// @Description Rename a department and optionally move it to another ministry of the same church
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} models.Department "Successfully updated department"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Department or ministry not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := h.authorizeDepartment(c, rbac.PermissionDepartmentsManage)
	if !ok {
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	department, err := h.departmentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment handles DELETE /departments/:id
// @Summary Delete a department
// @Description Delete a department with its members, event links and plannings
// @Tags departments
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Department deleted"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := h.authorizeDepartment(c, rbac.PermissionDepartmentsManage)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /departments/:id/members
// @Summary List members of a department
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {array} models.Member "Successfully retrieved members"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id}/members [get]
func (h *DepartmentHandler) ListMembers(c *gin.Context) {
	id, ok := h.authorizeDepartment(c, rbac.PermissionMembersView)
	if !ok {
		return
	}

	members, err := h.memberService.ListByDepartment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMonthlyPlanning handles GET /departments/:id/monthly-planning
// @Summary Monthly planning of a department
// @Description List the department's events in a month with the members on duty
// @Tags planning
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} service.MonthlyPlanningResponse "Successfully retrieved monthly planning"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id}/monthly-planning [get]
func (h *DepartmentHandler) GetMonthlyPlanning(c *gin.Context) {
	id, ok := h.authorizeDepartment(c, rbac.PermissionPlanningView)
	if !ok {
		return
	}

	planning, err := h.planningService.GetMonthlyPlanning(id, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, planning)
}

func (h *DepartmentHandler) authorizeDepartment(c *gin.Context, permission rbac.Permission) (uuid.UUID, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := pathUUID(c, "id", "department")
	if !ok {
		return uuid.Nil, false
	}
	if _, err := h.access.AuthorizeDepartment(identity, permission, id); err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
