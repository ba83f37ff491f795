package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/MeiyanW/inner_court_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests for reward items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers inventory routes. Granting is admin only;
// gifting and consumption act on the caller's own items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade, adminOnly gin.HandlerFunc) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", adminOnly, h.grantItem)
		items.GET("/mine", h.listOwnItems)
		items.POST("/:id/gift", h.giftItem)
		items.POST("/:id/use", h.useItem)
	}
}

// grantItem godoc
// @Summary Grant a reward item
// @Description Creates a new unused item in a member's inventory.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.GrantItemRequest true "Owner, item name, effect"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Owner not found"
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) grantItem(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GrantItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	granterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.GrantItem(c.Request.Context(), granterID, req)
	if err != nil {
		respondError(c, err, "Failed to grant item")
		return
	}

	logger.Info("Item granted", slog.Int64("item_id", item.ItemID), slog.String("owner_id", item.OwnerID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listOwnItems godoc
// @Summary List own unused items
// @Tags items
// @Produce json
// @Success 200 {object} dto.ListItemsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/mine [get]
func (h *itemHandler) listOwnItems(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.itemService.ListInventory(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// giftItem godoc
// @Summary Gift an item to another member
// @Description Reassigns an unused item owned by the caller to the named recipient. Ownership and provenance move together.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param gift body dto.GiftItemRequest true "Recipient name"
// @Success 200 {object} dto.GiftItemResult
// @Failure 400 {object} ErrorResponse "Item used or self target"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Item or recipient not found"
// @Security BearerAuth
// @Router /items/{id}/gift [post]
func (h *itemHandler) giftItem(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GiftItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.itemService.GiftItem(c.Request.Context(), callerID, itemID, req)
	if err != nil {
		respondError(c, err, "Failed to gift item")
		return
	}

	logger.Info("Item gifted", slog.Int64("item_id", itemID), slog.String("recipient", result.RecipientName))
	c.JSON(http.StatusOK, result)
}

// useItem godoc
// @Summary Consume an item
// @Description Consumes an unused item exactly once, advancing the governed attribute one tier. A concurrent second use reports applied=false instead of failing.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.UseItemResult
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id}/use [post]
func (h *itemHandler) useItem(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.itemService.UseItem(c.Request.Context(), callerID, itemID)
	if err != nil {
		respondError(c, err, "Failed to use item")
		return
	}

	logger.Info("Item consumption attempted",
		slog.Int64("item_id", itemID),
		slog.Bool("applied", result.Applied),
	)
	c.JSON(http.StatusOK, result)
}
