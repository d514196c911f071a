package auctionhouse

import (
	"wowsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultHistory = 24
	maxHistory     = 500
)

// Handler handles HTTP requests for market data.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the commodity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/commodities")
	group.Get("/:itemID", h.HandleGetCommodity)
}

// HandleGetCommodity returns the latest market record of an item and its
// history, newest first. ?limit= bounds the history. ?indicators= (vwap,
// correlation, mfi or all) adds market indicators computed over that history.
func (h *Handler) HandleGetCommodity(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemID")
	if err != nil || itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid item id",
		})
	}
	limit := c.QueryInt("limit", defaultHistory)
	if limit <= 0 || limit > maxHistory {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 500",
		})
	}

	indicators, err := parseIndicators(c.Query("indicators"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	history, err := h.store.History(c.Context(), int64(itemID), limit)
	if err != nil {
		logger.WithRequestID(h.logger, c).Error("Commodity lookup failed", zap.Int("item_id", itemID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(history) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no market data for item",
		})
	}

	resp := fiber.Map{
		"latest":  history[0],
		"history": history,
	}
	if len(indicators) > 0 {
		resp["indicators"] = computeIndicators(history, indicators)
	}
	return c.JSON(resp)
}
