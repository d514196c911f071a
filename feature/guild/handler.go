package guild

import (
	"errors"
	"strings"

	"wowsync/core/database"
	"wowsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for guilds and characters.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the guild routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	guilds := app.Group("/guilds")
	guilds.Get("/", h.HandleListGuilds)
	guilds.Get("/:id/roster", h.HandleGetRoster)

	app.Get("/characters/by-recipe", h.HandleCharactersByRecipe)
}

// HandleListGuilds returns every tracked guild.
func (h *Handler) HandleListGuilds(c *fiber.Ctx) error {
	guilds, err := h.store.ListGuilds(c.Context())
	if err != nil {
		return h.fail(c, "Guild list failed", err)
	}
	return c.JSON(guilds)
}

// HandleGetRoster returns the current members of a guild.
func (h *Handler) HandleGetRoster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid guild id",
		})
	}

	guild, err := h.store.GetGuild(c.Context(), int64(id))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "guild not found",
		})
	}
	if err != nil {
		return h.fail(c, "Guild lookup failed", err)
	}

	members, err := h.store.Roster(c.Context(), guild.ID)
	if err != nil {
		return h.fail(c, "Roster lookup failed", err)
	}

	return c.JSON(fiber.Map{
		"guild":   guild,
		"members": members,
	})
}

// HandleCharactersByRecipe returns the characters knowing a recipe whose
// name contains the name query parameter.
func (h *Handler) HandleCharactersByRecipe(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name query parameter is required",
		})
	}

	characters, err := h.store.CharactersByRecipe(c.Context(), name)
	if err != nil {
		return h.fail(c, "Recipe search failed", err)
	}
	return c.JSON(characters)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRequestID(h.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
