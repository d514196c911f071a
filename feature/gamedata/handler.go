package gamedata

import (
	"errors"

	"wowsync/core/database"
	"wowsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog data.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Get("/:id", h.HandleGetRecipe)
}

// HandleGetRecipe returns a recipe with its profession, tier and reagents.
func (h *Handler) HandleGetRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid recipe id",
		})
	}

	recipe, err := h.store.GetRecipe(c.Context(), int64(id))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "recipe not found",
		})
	}
	if err != nil {
		logger.WithRequestID(h.logger, c).Error("Recipe lookup failed", zap.Int("recipe_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(recipe)
}
