package battlenet

import "github.com/goccy/go-json"

// Ref is a keyed reference to another upstream resource.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RealmRef identifies a realm by slug.
type RealmRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TypedName is a type/name pair such as a faction or role.
type TypedName struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Asset is one media entry.
type Asset struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Media is the response of every media endpoint.
type Media struct {
	ID     int64   `json:"id"`
	Assets []Asset `json:"assets"`
}

// Icon returns the first asset value, which is the icon for catalog media.
func (m *Media) Icon() string {
	if m == nil || len(m.Assets) == 0 {
		return ""
	}
	return m.Assets[0].Value
}

// Asset returns the value of the asset with the given key.
func (m *Media) Asset(key string) string {
	if m == nil {
		return ""
	}
	for _, a := range m.Assets {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// PlayableRaceIndex lists playable races.
type PlayableRaceIndex struct {
	Races []Ref `json:"races"`
}

// PlayableClassIndex lists playable classes.
type PlayableClassIndex struct {
	Classes []Ref `json:"classes"`
}

// SpecializationIndex lists playable specializations.
type SpecializationIndex struct {
	CharacterSpecializations []Ref `json:"character_specializations"`
}

// Specialization is the detail view of a playable specialization.
type Specialization struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	PlayableClass Ref       `json:"playable_class"`
	Role          TypedName `json:"role"`
}

// ProfessionIndex lists professions.
type ProfessionIndex struct {
	Professions []Ref `json:"professions"`
}

// Profession is the detail view of a profession. SkillTiers is empty for
// professions without tiers.
type Profession struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SkillTiers []Ref  `json:"skill_tiers"`
}

// SkillTier groups a tier's recipes into categories.
type SkillTier struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Categories []SkillTierCategory `json:"categories"`
}

// SkillTierCategory is a named group of recipes.
type SkillTierCategory struct {
	Name    string `json:"name"`
	Recipes []Ref  `json:"recipes"`
}

// CraftedQuantity is either a fixed value or a min/max range.
type CraftedQuantity struct {
	Value   *float64 `json:"value"`
	Minimum *float64 `json:"minimum"`
	Maximum *float64 `json:"maximum"`
}

// Quantity resolves the crafted quantity: the value when present, else the
// mean of minimum and maximum, else 1.
func (q *CraftedQuantity) Quantity() float64 {
	switch {
	case q == nil:
		return 1
	case q.Value != nil:
		return *q.Value
	case q.Minimum != nil && q.Maximum != nil:
		return (*q.Minimum + *q.Maximum) / 2
	default:
		return 1
	}
}

// RecipeReagent is a reagent with its required quantity.
type RecipeReagent struct {
	Reagent  Ref   `json:"reagent"`
	Quantity int64 `json:"quantity"`
}

// Recipe is the detail view of a recipe.
type Recipe struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	CraftedQuantity *CraftedQuantity `json:"crafted_quantity"`
	Reagents        []RecipeReagent  `json:"reagents"`
}

// Item is the detail view of an item.
type Item struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ItemClass    Ref    `json:"item_class"`
	ItemSubclass Ref    `json:"item_subclass"`
}

// Auction is one commodity listing.
type Auction struct {
	ID        int64 `json:"id"`
	Item      Ref   `json:"item"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

// Commodities is the region-wide commodity auction snapshot.
type Commodities struct {
	Auctions []Auction `json:"auctions"`
}

// Guild is the guild summary.
type Guild struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Realm   RealmRef  `json:"realm"`
	Faction TypedName `json:"faction"`
}

// RosterCharacter is the character part of a roster entry.
type RosterCharacter struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	Realm         RealmRef `json:"realm"`
	PlayableClass Ref      `json:"playable_class"`
	PlayableRace  Ref      `json:"playable_race"`
}

// RosterMember is one roster entry.
type RosterMember struct {
	Character RosterCharacter `json:"character"`
	Rank      int             `json:"rank"`
}

// GuildRoster lists a guild's members.
type GuildRoster struct {
	Guild   Ref            `json:"guild"`
	Members []RosterMember `json:"members"`
}

// CharacterSummary is the character profile summary.
type CharacterSummary struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Level             int      `json:"level"`
	Realm             RealmRef `json:"realm"`
	ActiveSpec        *Ref     `json:"active_spec"`
	AchievementPoints int      `json:"achievement_points"`
	AverageItemLevel  int      `json:"average_item_level"`
	EquippedItemLevel int      `json:"equipped_item_level"`
}

// CharacterProfessions lists a character's professions.
type CharacterProfessions struct {
	Primaries   []CharacterProfession `json:"primaries"`
	Secondaries []CharacterProfession `json:"secondaries"`
}

// All returns primaries followed by secondaries.
func (p *CharacterProfessions) All() []CharacterProfession {
	out := make([]CharacterProfession, 0, len(p.Primaries)+len(p.Secondaries))
	out = append(out, p.Primaries...)
	return append(out, p.Secondaries...)
}

// CharacterProfession is one profession with its known tiers.
type CharacterProfession struct {
	Profession Ref                  `json:"profession"`
	Tiers      []CharacterSkillTier `json:"tiers"`
}

// CharacterSkillTier lists the recipes known in one tier.
type CharacterSkillTier struct {
	Tier         Ref   `json:"tier"`
	KnownRecipes []Ref `json:"known_recipes"`
}

// RawSnapshot keeps the exact body of a snapshot next to its decoded form.
type RawSnapshot[T any] struct {
	Body json.RawMessage
	Data T
}
