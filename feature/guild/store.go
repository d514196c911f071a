package guild

import (
	"context"

	"wowsync/core/database"
	"wowsync/feature/guild/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the guild side of the canonical store.
type Store interface {
	GetOrCreateGuild(ctx context.Context, guild *models.Guild) (bool, error)
	FindGuild(ctx context.Context, realm, slug string) (*models.Guild, error)
	GetGuild(ctx context.Context, id int64) (*models.Guild, error)
	ListGuilds(ctx context.Context) ([]models.Guild, error)

	MemberIDs(ctx context.Context, guildID int64) ([]int64, error)
	GetCharacter(ctx context.Context, id int64) (*models.Character, error)
	SaveCharacter(ctx context.Context, character *models.Character) error
	UpdateProfile(ctx context.Context, character *models.Character) error
	DetachCharacters(ctx context.Context, guildID int64, ids []int64) (int64, error)
	ListCharacters(ctx context.Context) ([]models.Character, error)
	Roster(ctx context.Context, guildID int64) ([]models.Character, error)

	KnownRecipeIDs(ctx context.Context, characterID int64) ([]int64, error)
	AddKnownRecipes(ctx context.Context, characterID int64, recipeIDs []int64) error
	RemoveKnownRecipes(ctx context.Context, characterID int64, recipeIDs []int64) error
	CharactersByRecipe(ctx context.Context, recipeName string) ([]models.Character, error)
}

// GormStore implements Store on gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the guild tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.All()...)
}

func (s *GormStore) GetOrCreateGuild(ctx context.Context, guild *models.Guild) (bool, error) {
	return database.GetOrCreate(ctx, s.db, guild.ID, guild)
}

func (s *GormStore) FindGuild(ctx context.Context, realm, slug string) (*models.Guild, error) {
	var guild models.Guild
	err := s.db.WithContext(ctx).Where("realm = ? AND slug = ?", realm, slug).Limit(1).Find(&guild).Error
	if err != nil {
		return nil, err
	}
	if guild.ID == 0 {
		return nil, database.NotFound(guild, realm+"/"+slug)
	}
	return &guild, nil
}

func (s *GormStore) GetGuild(ctx context.Context, id int64) (*models.Guild, error) {
	return database.Get[models.Guild](ctx, s.db, id)
}

func (s *GormStore) ListGuilds(ctx context.Context) ([]models.Guild, error) {
	var guilds []models.Guild
	err := s.db.WithContext(ctx).Order("id").Find(&guilds).Error
	return guilds, err
}

func (s *GormStore) MemberIDs(ctx context.Context, guildID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&models.Character{}).
		Where("guild_id = ?", guildID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) GetCharacter(ctx context.Context, id int64) (*models.Character, error) {
	return database.Get[models.Character](ctx, s.db, id)
}

// SaveCharacter inserts character or overwrites every column of the stored row.
func (s *GormStore) SaveCharacter(ctx context.Context, character *models.Character) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(character).Error
}

// profileColumns are the columns owned by the character profile sync. Guild
// membership is owned by the roster sync and never written here.
var profileColumns = []string{
	"level",
	"active_spec_id",
	"icon",
	"inset_icon",
	"character_model",
	"achievement_points",
	"average_item_level",
	"equipped_item_level",
	"updated_at",
}

// UpdateProfile writes the profile columns of character, zero values included.
func (s *GormStore) UpdateProfile(ctx context.Context, character *models.Character) error {
	return s.db.WithContext(ctx).Model(character).
		Select(profileColumns).
		Omit(clause.Associations).
		Updates(character).Error
}

// DetachCharacters clears guild and rank of the given members of guildID.
func (s *GormStore) DetachCharacters(ctx context.Context, guildID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).Model(&models.Character{}).
		Where("guild_id = ? AND id IN ?", guildID, ids).
		Updates(map[string]any{"guild_id": nil, "guild_rank": nil})
	return result.RowsAffected, result.Error
}

func (s *GormStore) ListCharacters(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	err := s.db.WithContext(ctx).Order("id").Find(&characters).Error
	return characters, err
}

func (s *GormStore) Roster(ctx context.Context, guildID int64) ([]models.Character, error) {
	var characters []models.Character
	err := s.db.WithContext(ctx).
		Preload("PlayableClass").
		Preload("PlayableRace").
		Preload("ActiveSpec").
		Where("guild_id = ?", guildID).
		Order("guild_rank, name").
		Find(&characters).Error
	return characters, err
}

func (s *GormStore) KnownRecipeIDs(ctx context.Context, characterID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&models.CharacterKnownRecipe{}).
		Where("character_id = ?", characterID).Order("recipe_id").Pluck("recipe_id", &ids).Error
	return ids, err
}

func (s *GormStore) AddKnownRecipes(ctx context.Context, characterID int64, recipeIDs []int64) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	rows := make([]models.CharacterKnownRecipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		rows = append(rows, models.CharacterKnownRecipe{CharacterID: characterID, RecipeID: id})
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100).Error
}

func (s *GormStore) RemoveKnownRecipes(ctx context.Context, characterID int64, recipeIDs []int64) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("character_id = ? AND recipe_id IN ?", characterID, recipeIDs).
		Delete(&models.CharacterKnownRecipe{}).Error
}

// CharactersByRecipe returns the characters knowing a recipe whose name
// contains recipeName.
func (s *GormStore) CharactersByRecipe(ctx context.Context, recipeName string) ([]models.Character, error) {
	var characters []models.Character
	known := s.db.Model(&models.CharacterKnownRecipe{}).
		Select("character_known_recipes.character_id").
		Joins("JOIN recipes ON recipes.id = character_known_recipes.recipe_id").
		Where("LOWER(recipes.name) LIKE LOWER(?)", "%"+recipeName+"%")
	err := s.db.WithContext(ctx).
		Preload("PlayableClass").
		Where("id IN (?)", known).
		Order("name").
		Find(&characters).Error
	return characters, err
}
