package models

// PlayableRace is a playable character race.
type PlayableRace struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(24);index" json:"name"`
}

func (PlayableRace) TableName() string { return "playable_races" }

// PlayableClass is a playable character class.
type PlayableClass struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(14);uniqueIndex" json:"name"`
	Icon string `gorm:"column:icon;type:varchar(128)" json:"icon"`
}

func (PlayableClass) TableName() string { return "playable_classes" }

// PlayableSpecialization is a class specialization.
type PlayableSpecialization struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name            string         `gorm:"column:name;type:varchar(16);index" json:"name"`
	Icon            string         `gorm:"column:icon;type:varchar(128)" json:"icon"`
	PlayableClassID int64          `gorm:"column:playable_class_id;index" json:"playable_class_id"`
	PlayableClass   *PlayableClass `gorm:"foreignKey:PlayableClassID;constraint:OnDelete:CASCADE" json:"playable_class,omitempty"`
	Role            string         `gorm:"column:role;type:varchar(8);index" json:"role"`
}

func (PlayableSpecialization) TableName() string { return "playable_specializations" }

// Profession is a crafting or gathering profession.
type Profession struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(16)" json:"name"`
	Icon string `gorm:"column:icon;type:varchar(128)" json:"icon"`
}

func (Profession) TableName() string { return "professions" }

// ProfessionSkillTier is an expansion tier of a profession.
type ProfessionSkillTier struct {
	ID           int64       `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name         string      `gorm:"column:name;type:varchar(32)" json:"name"`
	ProfessionID int64       `gorm:"column:profession_id;index" json:"profession_id"`
	Profession   *Profession `gorm:"foreignKey:ProfessionID;constraint:OnDelete:CASCADE" json:"profession,omitempty"`
}

func (ProfessionSkillTier) TableName() string { return "profession_skill_tiers" }

// Reagent is a crafting material.
type Reagent struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(64)" json:"name"`
}

func (Reagent) TableName() string { return "reagents" }

// Recipe is a craftable recipe. Profession and tier are empty when the tier
// was unknown locally at import time.
type Recipe struct {
	ID                    int64                `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name                  string               `gorm:"column:name;type:varchar(96);index" json:"name"`
	Icon                  string               `gorm:"column:icon;type:varchar(128)" json:"icon"`
	ProfessionID          *int64               `gorm:"column:profession_id;index" json:"profession_id"`
	Profession            *Profession          `gorm:"foreignKey:ProfessionID;constraint:OnDelete:CASCADE" json:"profession,omitempty"`
	ProfessionSkillTierID *int64               `gorm:"column:profession_skill_tier_id;index" json:"profession_skill_tier_id"`
	ProfessionSkillTier   *ProfessionSkillTier `gorm:"foreignKey:ProfessionSkillTierID;constraint:OnDelete:CASCADE" json:"profession_skill_tier,omitempty"`
	CraftedQuantity       float64              `gorm:"column:crafted_quantity;type:decimal(5,2);default:1" json:"crafted_quantity"`
	Reagents              []RecipeReagent      `gorm:"foreignKey:RecipeID" json:"reagents,omitempty"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeReagent links a reagent and its quantity to a recipe.
type RecipeReagent struct {
	ID        int64    `gorm:"column:id;primaryKey" json:"-"`
	RecipeID  int64    `gorm:"column:recipe_id;uniqueIndex:idx_recipe_reagent" json:"recipe_id"`
	ReagentID int64    `gorm:"column:reagent_id;uniqueIndex:idx_recipe_reagent" json:"reagent_id"`
	Reagent   *Reagent `gorm:"foreignKey:ReagentID;constraint:OnDelete:CASCADE" json:"reagent,omitempty"`
	Quantity  int64    `gorm:"column:quantity" json:"quantity"`
}

func (RecipeReagent) TableName() string { return "recipe_reagents" }

// Item is a tradable in-game item.
type Item struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name         string `gorm:"column:name;type:varchar(64);index" json:"name"`
	Icon         string `gorm:"column:icon;type:varchar(128)" json:"icon"`
	ItemClass    string `gorm:"column:item_class;type:varchar(32);index" json:"item_class"`
	ItemSubclass string `gorm:"column:item_subclass;type:varchar(32);index" json:"item_subclass"`
}

func (Item) TableName() string { return "items" }

// All returns every model of this package in migration order.
func All() []any {
	return []any{
		&PlayableRace{},
		&PlayableClass{},
		&PlayableSpecialization{},
		&Profession{},
		&ProfessionSkillTier{},
		&Reagent{},
		&Recipe{},
		&RecipeReagent{},
		&Item{},
	}
}
