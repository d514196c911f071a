package battlenet

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// Namespace kinds.
const (
	NamespaceStatic  = "static"
	NamespaceDynamic = "dynamic"
	NamespaceProfile = "profile"
)

func get[T any](ctx context.Context, c *Client, endpoint, kind string) (*T, error) {
	var out T
	if err := c.Request(ctx, endpoint, c.Namespace(kind), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGuild returns a guild summary.
func (c *Client) GetGuild(ctx context.Context, realm, name string) (*Guild, error) {
	return get[Guild](ctx, c, fmt.Sprintf("/data/wow/guild/%s/%s", realm, name), NamespaceProfile)
}

// GetGuildRoster returns a guild's member list.
func (c *Client) GetGuildRoster(ctx context.Context, realm, name string) (*GuildRoster, error) {
	return get[GuildRoster](ctx, c, fmt.Sprintf("/data/wow/guild/%s/%s/roster", realm, name), NamespaceProfile)
}

// GetCharacterSummary returns a character profile summary.
func (c *Client) GetCharacterSummary(ctx context.Context, realm, name string) (*CharacterSummary, error) {
	return get[CharacterSummary](ctx, c, fmt.Sprintf("/profile/wow/character/%s/%s", realm, name), NamespaceProfile)
}

// GetCharacterMedia returns a character's render assets.
func (c *Client) GetCharacterMedia(ctx context.Context, realm, name string) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/profile/wow/character/%s/%s/character-media", realm, name), NamespaceProfile)
}

// GetCharacterProfessions returns a character's professions and known recipes.
func (c *Client) GetCharacterProfessions(ctx context.Context, realm, name string) (*CharacterProfessions, error) {
	return get[CharacterProfessions](ctx, c, fmt.Sprintf("/profile/wow/character/%s/%s/professions", realm, name), NamespaceProfile)
}

// GetPlayableRaces returns the playable race index.
func (c *Client) GetPlayableRaces(ctx context.Context) (*PlayableRaceIndex, error) {
	return get[PlayableRaceIndex](ctx, c, "/data/wow/playable-race/index", NamespaceStatic)
}

// GetPlayableClasses returns the playable class index.
func (c *Client) GetPlayableClasses(ctx context.Context) (*PlayableClassIndex, error) {
	return get[PlayableClassIndex](ctx, c, "/data/wow/playable-class/index", NamespaceStatic)
}

// GetPlayableClassMedia returns a class's media.
func (c *Client) GetPlayableClassMedia(ctx context.Context, id int64) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/data/wow/media/playable-class/%d", id), NamespaceStatic)
}

// GetPlayableSpecializations returns the specialization index.
func (c *Client) GetPlayableSpecializations(ctx context.Context) (*SpecializationIndex, error) {
	return get[SpecializationIndex](ctx, c, "/data/wow/playable-specialization/index", NamespaceStatic)
}

// GetPlayableSpecialization returns one specialization.
func (c *Client) GetPlayableSpecialization(ctx context.Context, id int64) (*Specialization, error) {
	return get[Specialization](ctx, c, fmt.Sprintf("/data/wow/playable-specialization/%d", id), NamespaceStatic)
}

// GetPlayableSpecializationMedia returns a specialization's media.
func (c *Client) GetPlayableSpecializationMedia(ctx context.Context, id int64) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/data/wow/media/playable-specialization/%d", id), NamespaceStatic)
}

// GetProfessions returns the profession index.
func (c *Client) GetProfessions(ctx context.Context) (*ProfessionIndex, error) {
	return get[ProfessionIndex](ctx, c, "/data/wow/profession/index", NamespaceStatic)
}

// GetProfession returns one profession with its skill tiers.
func (c *Client) GetProfession(ctx context.Context, id int64) (*Profession, error) {
	return get[Profession](ctx, c, fmt.Sprintf("/data/wow/profession/%d", id), NamespaceStatic)
}

// GetProfessionMedia returns a profession's media.
func (c *Client) GetProfessionMedia(ctx context.Context, id int64) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/data/wow/media/profession/%d", id), NamespaceStatic)
}

// GetProfessionSkillTier returns a skill tier with its recipe categories.
func (c *Client) GetProfessionSkillTier(ctx context.Context, professionID, tierID int64) (*SkillTier, error) {
	return get[SkillTier](ctx, c, fmt.Sprintf("/data/wow/profession/%d/skill-tier/%d", professionID, tierID), NamespaceStatic)
}

// GetRecipe returns one recipe.
func (c *Client) GetRecipe(ctx context.Context, id int64) (*Recipe, error) {
	return get[Recipe](ctx, c, fmt.Sprintf("/data/wow/recipe/%d", id), NamespaceStatic)
}

// GetRecipeMedia returns a recipe's media.
func (c *Client) GetRecipeMedia(ctx context.Context, id int64) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/data/wow/media/recipe/%d", id), NamespaceStatic)
}

// GetItem returns one item.
func (c *Client) GetItem(ctx context.Context, id int64) (*Item, error) {
	return get[Item](ctx, c, fmt.Sprintf("/data/wow/item/%d", id), NamespaceStatic)
}

// GetItemMedia returns an item's media.
func (c *Client) GetItemMedia(ctx context.Context, id int64) (*Media, error) {
	return get[Media](ctx, c, fmt.Sprintf("/data/wow/media/item/%d", id), NamespaceStatic)
}

// GetCommodities returns the hourly commodity auction snapshot together with
// its raw body, which callers fingerprint and archive.
func (c *Client) GetCommodities(ctx context.Context) (*RawSnapshot[Commodities], error) {
	endpoint := "/data/wow/auctions/commodities"
	body, err := c.RequestRaw(ctx, endpoint, c.Namespace(NamespaceDynamic), nil)
	if err != nil {
		return nil, err
	}

	snap := &RawSnapshot[Commodities]{Body: body}
	if err := json.Unmarshal(body, &snap.Data); err != nil {
		return nil, &Error{Kind: KindFatal, Endpoint: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return snap, nil
}
