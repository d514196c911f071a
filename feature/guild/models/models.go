package models

import (
	"time"

	gamedata "wowsync/feature/gamedata/models"
)

// Guild is a tracked in-game guild.
type Guild struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name  string `gorm:"column:name;type:varchar(128);index" json:"name"`
	Slug  string `gorm:"column:slug;type:varchar(128);uniqueIndex:idx_guild_realm_slug" json:"slug"`
	Realm string `gorm:"column:realm;type:varchar(128);uniqueIndex:idx_guild_realm_slug" json:"realm"`
	// Region is the API region the guild was imported from.
	Region   string `gorm:"column:region;type:varchar(2)" json:"region"`
	Faction  string `gorm:"column:faction;type:varchar(8)" json:"faction"`
	Icon     string `gorm:"column:icon;type:varchar(255)" json:"icon,omitempty"`
	Timezone string `gorm:"column:timezone;type:varchar(64);default:US/Eastern" json:"timezone"`
}

func (Guild) TableName() string { return "guilds" }

// Character is a player character. GuildID is nil once the character left
// the guild; the row itself is kept.
type Character struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name      string `gorm:"column:name;type:varchar(32);index" json:"name"`
	Level     int    `gorm:"column:level" json:"level"`
	Realm     string `gorm:"column:realm;type:varchar(32);index" json:"realm"`
	GuildID   *int64 `gorm:"column:guild_id;index" json:"guild_id"`
	Guild     *Guild `gorm:"foreignKey:GuildID;constraint:OnDelete:SET NULL" json:"-"`
	GuildRank *int   `gorm:"column:guild_rank" json:"guild_rank"`

	PlayableClassID int64                            `gorm:"column:playable_class_id;index" json:"playable_class_id"`
	PlayableClass   *gamedata.PlayableClass          `gorm:"foreignKey:PlayableClassID" json:"playable_class,omitempty"`
	PlayableRaceID  int64                            `gorm:"column:playable_race_id;index" json:"playable_race_id"`
	PlayableRace    *gamedata.PlayableRace           `gorm:"foreignKey:PlayableRaceID" json:"playable_race,omitempty"`
	ActiveSpecID    *int64                           `gorm:"column:active_spec_id;index" json:"active_spec_id"`
	ActiveSpec      *gamedata.PlayableSpecialization `gorm:"foreignKey:ActiveSpecID" json:"active_spec,omitempty"`

	Icon              string `gorm:"column:icon;type:varchar(128)" json:"icon"`
	InsetIcon         string `gorm:"column:inset_icon;type:varchar(128)" json:"inset_icon"`
	CharacterModel    string `gorm:"column:character_model;type:varchar(128)" json:"character_model"`
	AchievementPoints int    `gorm:"column:achievement_points;default:0" json:"achievement_points"`
	AverageItemLevel  int    `gorm:"column:average_item_level;default:0" json:"average_item_level"`
	EquippedItemLevel int    `gorm:"column:equipped_item_level;default:0" json:"equipped_item_level"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Character) TableName() string { return "characters" }

// CharacterKnownRecipe relates a character to a recipe it can craft.
type CharacterKnownRecipe struct {
	CharacterID int64 `gorm:"column:character_id;primaryKey;autoIncrement:false"`
	RecipeID    int64 `gorm:"column:recipe_id;primaryKey;autoIncrement:false;index"`
}

func (CharacterKnownRecipe) TableName() string { return "character_known_recipes" }

// All returns every model of this package in migration order.
func All() []any {
	return []any{
		&Guild{},
		&Character{},
		&CharacterKnownRecipe{},
	}
}
