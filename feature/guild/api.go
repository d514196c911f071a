package guild

import (
	"context"
	"strings"

	"wowsync/core/battlenet"
	"wowsync/core/result"
	gamedata "wowsync/feature/gamedata/models"
)

// API is the part of the upstream client the guild importer needs.
// *battlenet.Client implements it.
type API interface {
	Region() string
	GetGuild(ctx context.Context, realm, name string) (*battlenet.Guild, error)
	GetGuildRoster(ctx context.Context, realm, name string) (*battlenet.GuildRoster, error)
	GetCharacterSummary(ctx context.Context, realm, name string) (*battlenet.CharacterSummary, error)
	GetCharacterMedia(ctx context.Context, realm, name string) (*battlenet.Media, error)
	GetCharacterProfessions(ctx context.Context, realm, name string) (*battlenet.CharacterProfessions, error)
}

var _ API = (*battlenet.Client)(nil)

// Catalog is the read side of the catalog store the guild importer resolves
// classes, races, specializations and recipes against.
type Catalog interface {
	GetClass(ctx context.Context, id int64) (*gamedata.PlayableClass, error)
	GetRace(ctx context.Context, id int64) (*gamedata.PlayableRace, error)
	GetSpecialization(ctx context.Context, id int64) (*gamedata.PlayableSpecialization, error)
	RecipeIDs(ctx context.Context) ([]int64, error)
}

// RecipeSyncer creates recipes that are not in the catalog yet.
// *gamedata.Importer implements it.
type RecipeSyncer interface {
	SyncRecipe(ctx context.Context, id, tierID int64) (result.Summary, error)
}

var slugReplacer = strings.NewReplacer(" ", "-", "'", "")

// Slug turns a realm or guild name into its URL form ("Kel'Thuzad" becomes
// "kelthuzad", "Rally Tools" becomes "rally-tools").
func Slug(name string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
