package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/MeiyanW/inner_court_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests for atomic ledger movements.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers transfer routes. Any member can gift taels
// to a peer; stipend runs and direct credits are admin operations.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, adminOnly gin.HandlerFunc) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.transferToPeer)
		transfers.POST("/stipends", adminOnly, h.distributeStipends)
		transfers.POST("/credits", adminOnly, h.grantCredit)
	}
}

// transferToPeer godoc
// @Summary Gift taels to another member
// @Description Moves the amount from the caller to the recipient, resolved by display name. Both ledger rows commit atomically or nothing is written.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.PeerTransferRequest true "Recipient, amount, optional reason"
// @Success 200 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse "Invalid input, self target, or insufficient funds"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipient not found"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) transferToPeer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.PeerTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	senderID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transferService.TransferToPeer(c.Request.Context(), senderID, req)
	if err != nil {
		respondError(c, err, "Failed to transfer")
		return
	}

	logger.Info("Peer transfer committed",
		slog.String("recipient", result.RecipientName),
		slog.String("amount", result.Amount.String()),
	)
	c.JSON(http.StatusOK, result)
}

// distributeStipends godoc
// @Summary Run the monthly stipend distribution
// @Description Pays every ordinary member their scheduled stipend in one atomic batch. A failed run writes nothing.
// @Tags transfers
// @Accept json
// @Produce json
// @Param run body dto.DistributeStipendsRequest true "Optional remark appended to every stipend reason"
// @Success 200 {object} dto.StipendRunResult
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /transfers/stipends [post]
func (h *transferHandler) distributeStipends(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DistributeStipendsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transferService.DistributeStipends(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, err, "Failed to distribute stipends")
		return
	}

	logger.Info("Stipend run committed",
		slog.Int("members_paid", result.MembersPaid),
		slog.String("total_paid", result.TotalPaid.String()),
	)
	c.JSON(http.StatusOK, result)
}

// grantCredit godoc
// @Summary Grant a credit to one member
// @Description Appends a single approved credit with an administrative remark.
// @Tags transfers
// @Accept json
// @Produce json
// @Param credit body dto.GrantCreditRequest true "Member, amount, optional remark"
// @Success 204 "Credit recorded"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /transfers/credits [post]
func (h *transferHandler) grantCredit(c *gin.Context) {
	var req dto.GrantCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transferService.GrantCredit(c.Request.Context(), adminID, req); err != nil {
		respondError(c, err, "Failed to grant credit")
		return
	}
	c.Status(http.StatusNoContent)
}
