package handlers

import (
	"net/http"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler serves the team roster
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMember adds someone to the roster
// @Summary Add a team member
// @Description Add a team member. Name and role are required; contact is optional.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers lists the roster, optionally searched
// @Summary List members
// @Description List all members, optionally filtered by a case-insensitive match on name or role
// @Tags members
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} service.MemberResponse "Members in creation order"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// @Summary Get a team member
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember applies a partial update
// @Summary Update a team member
// @Description Update any of name, role and contact; omitted fields are left unchanged
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} service.MemberResponse "Updated member"
// @Failure 400 {object} ErrorResponse "Invalid member ID or request body"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// @Summary Remove a team member
// @Description Delete a member together with their task assignments and ratings
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
