package guild_test

import (
	"io"
	"net/http/httptest"
	"testing"

	gdmodels "wowsync/feature/gamedata/models"
	"wowsync/feature/guild"
	"wowsync/feature/guild/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t)
	f.seed(t,
		&models.Guild{ID: 77, Name: "Rally Tools", Slug: "rally-tools", Realm: "area-52"},
		&models.Character{ID: 10, Name: "Thrall", Realm: "area-52", GuildID: ptr(int64(77)), GuildRank: ptr(0), PlayableClassID: 1, PlayableRaceID: 2},
		&models.Character{ID: 11, Name: "Jaina", Realm: "area-52", PlayableClassID: 8, PlayableRaceID: 10},
		&gdmodels.Recipe{ID: 1, Name: "Iron Sword", CraftedQuantity: 1},
		&models.CharacterKnownRecipe{CharacterID: 11, RecipeID: 1},
	)

	app := fiber.New()
	guild.NewHandler(f.store, zap.NewNop()).RegisterRoutes(app)

	get := func(path string) (int, []byte) {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, body
	}

	t.Run("list guilds", func(t *testing.T) {
		status, body := get("/guilds")
		assert.Equal(t, fiber.StatusOK, status)

		var guilds []models.Guild
		require.NoError(t, json.Unmarshal(body, &guilds))
		require.Len(t, guilds, 1)
		assert.Equal(t, "rally-tools", guilds[0].Slug)
	})

	t.Run("roster", func(t *testing.T) {
		status, body := get("/guilds/77/roster")
		assert.Equal(t, fiber.StatusOK, status)

		var out struct {
			Guild   models.Guild       `json:"guild"`
			Members []models.Character `json:"members"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out.Members, 1)
		assert.Equal(t, "Thrall", out.Members[0].Name)
		require.NotNil(t, out.Members[0].PlayableClass)
		assert.Equal(t, "Warrior", out.Members[0].PlayableClass.Name)
	})

	t.Run("roster of unknown guild", func(t *testing.T) {
		status, _ := get("/guilds/5/roster")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("characters by recipe", func(t *testing.T) {
		status, body := get("/characters/by-recipe?name=sword")
		assert.Equal(t, fiber.StatusOK, status)

		var characters []models.Character
		require.NoError(t, json.Unmarshal(body, &characters))
		require.Len(t, characters, 1)
		assert.Equal(t, "Jaina", characters[0].Name)
	})

	t.Run("characters by recipe without name", func(t *testing.T) {
		status, _ := get("/characters/by-recipe")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
