package gamedata_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"wowsync/feature/gamedata"
	"wowsync/feature/gamedata/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleGetRecipe(t *testing.T) {
	f := newFixture(t)
	f.seedTier(t)
	ctx := context.Background()

	profession, tier := int64(164), int64(2437)
	_, err := f.store.GetOrCreateRecipe(ctx, &models.Recipe{
		ID:                    7,
		Name:                  "Stormforged Blade",
		ProfessionID:          &profession,
		ProfessionSkillTierID: &tier,
		CraftedQuantity:       1,
	})
	require.NoError(t, err)
	_, err = f.store.GetOrCreateReagent(ctx, &models.Reagent{ID: 100, Name: "Iron Bar"})
	require.NoError(t, err)
	_, err = f.store.GetOrCreateRecipeReagent(ctx, &models.RecipeReagent{RecipeID: 7, ReagentID: 100, Quantity: 4})
	require.NoError(t, err)

	app := fiber.New()
	gamedata.NewHandler(f.store, zap.NewNop()).RegisterRoutes(app)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"found", "/recipes/7", fiber.StatusOK},
		{"unknown", "/recipes/999", fiber.StatusNotFound},
		{"invalid", "/recipes/abc", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/recipes/7", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(body, &recipe))
	assert.Equal(t, "Stormforged Blade", recipe.Name)
	require.NotNil(t, recipe.Profession)
	assert.Equal(t, "Blacksmithing", recipe.Profession.Name)
	require.Len(t, recipe.Reagents, 1)
	assert.Equal(t, int64(4), recipe.Reagents[0].Quantity)
	assert.Equal(t, "Iron Bar", recipe.Reagents[0].Reagent.Name)
}
