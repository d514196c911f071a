package gamedata

import (
	"context"

	"wowsync/core/database"
	"wowsync/feature/gamedata/models"

	"gorm.io/gorm"
)

// Store is the catalog side of the canonical store. Catalog entities are
// append-only: they are created once and never deleted by an import.
type Store interface {
	GetOrCreateRace(ctx context.Context, race *models.PlayableRace) (bool, error)
	GetOrCreateClass(ctx context.Context, class *models.PlayableClass) (bool, error)
	GetOrCreateSpecialization(ctx context.Context, spec *models.PlayableSpecialization) (bool, error)
	GetOrCreateProfession(ctx context.Context, profession *models.Profession) (bool, error)
	GetOrCreateSkillTier(ctx context.Context, tier *models.ProfessionSkillTier) (bool, error)
	GetOrCreateRecipe(ctx context.Context, recipe *models.Recipe) (bool, error)
	GetOrCreateReagent(ctx context.Context, reagent *models.Reagent) (bool, error)
	GetOrCreateRecipeReagent(ctx context.Context, link *models.RecipeReagent) (bool, error)
	GetOrCreateItem(ctx context.Context, item *models.Item) (bool, error)

	GetClass(ctx context.Context, id int64) (*models.PlayableClass, error)
	GetRace(ctx context.Context, id int64) (*models.PlayableRace, error)
	GetSpecialization(ctx context.Context, id int64) (*models.PlayableSpecialization, error)
	GetSkillTier(ctx context.Context, id int64) (*models.ProfessionSkillTier, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)

	ListProfessions(ctx context.Context) ([]models.Profession, error)
	ListSkillTiers(ctx context.Context) ([]models.ProfessionSkillTier, error)
	RecipeIDs(ctx context.Context) ([]int64, error)
	ItemIDs(ctx context.Context) ([]int64, error)
}

// GormStore implements Store on gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the catalog tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.All()...)
}

func (s *GormStore) GetOrCreateRace(ctx context.Context, race *models.PlayableRace) (bool, error) {
	return database.GetOrCreate(ctx, s.db, race.ID, race)
}

func (s *GormStore) GetOrCreateClass(ctx context.Context, class *models.PlayableClass) (bool, error) {
	return database.GetOrCreate(ctx, s.db, class.ID, class)
}

func (s *GormStore) GetOrCreateSpecialization(ctx context.Context, spec *models.PlayableSpecialization) (bool, error) {
	return database.GetOrCreate(ctx, s.db, spec.ID, spec)
}

func (s *GormStore) GetOrCreateProfession(ctx context.Context, profession *models.Profession) (bool, error) {
	return database.GetOrCreate(ctx, s.db, profession.ID, profession)
}

func (s *GormStore) GetOrCreateSkillTier(ctx context.Context, tier *models.ProfessionSkillTier) (bool, error) {
	return database.GetOrCreate(ctx, s.db, tier.ID, tier)
}

func (s *GormStore) GetOrCreateRecipe(ctx context.Context, recipe *models.Recipe) (bool, error) {
	return database.GetOrCreate(ctx, s.db, recipe.ID, recipe)
}

func (s *GormStore) GetOrCreateReagent(ctx context.Context, reagent *models.Reagent) (bool, error) {
	return database.GetOrCreate(ctx, s.db, reagent.ID, reagent)
}

// GetOrCreateRecipeReagent is keyed on (recipe, reagent).
func (s *GormStore) GetOrCreateRecipeReagent(ctx context.Context, link *models.RecipeReagent) (bool, error) {
	result := s.db.WithContext(ctx).
		Where(models.RecipeReagent{RecipeID: link.RecipeID, ReagentID: link.ReagentID}).
		Attrs(models.RecipeReagent{Quantity: link.Quantity}).
		FirstOrCreate(link)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) GetOrCreateItem(ctx context.Context, item *models.Item) (bool, error) {
	return database.GetOrCreate(ctx, s.db, item.ID, item)
}

func (s *GormStore) GetClass(ctx context.Context, id int64) (*models.PlayableClass, error) {
	return database.Get[models.PlayableClass](ctx, s.db, id)
}

func (s *GormStore) GetRace(ctx context.Context, id int64) (*models.PlayableRace, error) {
	return database.Get[models.PlayableRace](ctx, s.db, id)
}

func (s *GormStore) GetSpecialization(ctx context.Context, id int64) (*models.PlayableSpecialization, error) {
	return database.Get[models.PlayableSpecialization](ctx, s.db, id)
}

func (s *GormStore) GetSkillTier(ctx context.Context, id int64) (*models.ProfessionSkillTier, error) {
	var tier models.ProfessionSkillTier
	err := s.db.WithContext(ctx).Preload("Profession").Where("id = ?", id).Limit(1).Find(&tier).Error
	if err != nil {
		return nil, err
	}
	if tier.ID == 0 {
		return nil, database.NotFound(tier, id)
	}
	return &tier, nil
}

func (s *GormStore) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Profession").
		Preload("ProfessionSkillTier").
		Preload("Reagents.Reagent").
		Where("id = ?", id).Limit(1).Find(&recipe).Error
	if err != nil {
		return nil, err
	}
	if recipe.ID == 0 {
		return nil, database.NotFound(recipe, id)
	}
	return &recipe, nil
}

func (s *GormStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	return database.Get[models.Item](ctx, s.db, id)
}

func (s *GormStore) ListProfessions(ctx context.Context) ([]models.Profession, error) {
	var professions []models.Profession
	err := s.db.WithContext(ctx).Order("id").Find(&professions).Error
	return professions, err
}

func (s *GormStore) ListSkillTiers(ctx context.Context) ([]models.ProfessionSkillTier, error) {
	var tiers []models.ProfessionSkillTier
	err := s.db.WithContext(ctx).Order("id").Find(&tiers).Error
	return tiers, err
}

func (s *GormStore) RecipeIDs(ctx context.Context) ([]int64, error) {
	return database.IDs(ctx, s.db, &models.Recipe{})
}

func (s *GormStore) ItemIDs(ctx context.Context) ([]int64, error) {
	return database.IDs(ctx, s.db, &models.Item{})
}
