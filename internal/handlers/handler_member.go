package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/MeiyanW/inner_court_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests for the member registry.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers all member registry routes. The roster and
// all writes are admin operations; any member can read their own profile.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade, adminOnly gin.HandlerFunc) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("/me", h.getOwnProfile)
		members.POST("", adminOnly, h.createMember)
		members.GET("", adminOnly, h.listMembers)
		members.GET("/:id", adminOnly, h.getMember)
		members.PUT("/:id", adminOnly, h.updateMember)
	}
}

// createMember godoc
// @Summary Register a new member
// @Description Creates a member profile with a six-digit short id. Omitted attributes default to each sequence's starting tier.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 409 {object} ErrorResponse "Name or short id taken"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.memberService.CreateMember(c.Request.Context(), creatorID, req)
	if err != nil {
		respondError(c, err, "Failed to create member")
		return
	}

	logger.Info("Member created", slog.String("new_member_id", created.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(created))
}

// listMembers godoc
// @Summary List all members
// @Description Returns the full roster with balances derived from the ledger.
// @Tags members
// @Produce json
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// getOwnProfile godoc
// @Summary Get own profile
// @Description Returns the signed-in member's profile with derived balance.
// @Tags members
// @Produce json
// @Success 200 {object} dto.MemberResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/me [get]
func (h *memberHandler) getOwnProfile(c *gin.Context) {
	memberID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// getMember godoc
// @Summary Get a member by id
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Apply an administrative profile override
// @Description Updates name or attribute tiers. A balance in the payload is reconciled through a compensating ledger entry, never stored directly.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to override"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	memberID := c.Param("id")
	updated, err := h.memberService.UpdateMember(c.Request.Context(), updaterID, memberID, req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}

	logger.Info("Member updated", slog.String("member_id", memberID))
	c.JSON(http.StatusOK, dto.ToMemberResponse(updated))
}
