package handlers

import (
	"net/http"

	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for department members
type MemberHandler struct {
	memberService service.MemberServiceInterface
	access        service.AccessServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface, access service.AccessServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		access:        access,
	}
}

// ListMembers handles GET /members
// @Summary List members of a church
// @Description List the members of every department of the church the caller can reach
// @Tags members
// @Produce json
// @Param churchId query string false "Church ID (UUID); alternatively the X-Church-ID header"
// @Success 200 {array} models.Member "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Missing or invalid church"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	churchID, ok := requireChurch(c)
	if !ok {
		return
	}

	session, err := h.access.Authorize(identity, rbac.PermissionMembersView, &churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	members, err := h.memberService.ListByChurch(churchID, session.DepartmentScope())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember handles POST /members
// @Summary Add a member to a department
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} models.Member "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.access.AuthorizeDepartment(identity, rbac.PermissionMembersManage, req.DepartmentID); err != nil {
		respondError(c, err)
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateMember handles PUT /members/:id
// @Summary Update a member
// @Description Rename a member or move it to another department of the same church. Both departments must be in scope.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Member data"
// @Success 200 {object} models.Member "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Member or department not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "member")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.access.AuthorizeDepartment(identity, rbac.PermissionMembersManage, member.DepartmentID); err != nil {
		respondError(c, err)
		return
	}
	if req.DepartmentID != member.DepartmentID {
		if _, err := h.access.AuthorizeDepartment(identity, rbac.PermissionMembersManage, req.DepartmentID); err != nil {
			respondError(c, err)
			return
		}
	}

	updated, err := h.memberService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMember handles DELETE /members/:id
// @Summary Delete a member
// @Description Delete a member with its plannings
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member deleted"
// @Failure 403 {object} ErrorResponse "Insufficient permissions or out of scope"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.access.AuthorizeDepartment(identity, rbac.PermissionMembersManage, member.DepartmentID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
