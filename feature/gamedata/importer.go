package gamedata

import (
	"context"
	"errors"

	"wowsync/core/battlenet"
	"wowsync/core/database"
	"wowsync/core/result"
	"wowsync/feature/gamedata/models"

	"go.uber.org/zap"
)

// Sync domains of the catalog importer.
const (
	DomainRaces           = "playable_races"
	DomainClasses         = "playable_classes"
	DomainSpecializations = "playable_specializations"
	DomainProfessions     = "professions"
	DomainSkillTiers      = "profession_skill_tiers"
	DomainRecipes         = "recipes"
)

// Importer folds the static catalog into the store.
type Importer struct {
	api    API
	store  Store
	logger *zap.Logger
}

// NewImporter creates a catalog importer.
func NewImporter(api API, store Store, logger *zap.Logger) *Importer {
	return &Importer{api: api, store: store, logger: logger}
}

// count records a get-or-create outcome.
func count(sum *result.Summary, created bool) {
	if created {
		sum.Added++
	} else {
		sum.Skipped++
	}
}

// ImportPlayableRaces creates every race the API lists.
func (i *Importer) ImportPlayableRaces(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainRaces, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		index, err := i.api.GetPlayableRaces(ctx)
		if err != nil {
			return sum, importError(DomainRaces, "failed to get playable races: %w", err)
		}

		for _, race := range index.Races {
			created, err := i.store.GetOrCreateRace(ctx, &models.PlayableRace{ID: race.ID, Name: race.Name})
			if err != nil {
				return sum, importError(DomainRaces, "failed to store race %d: %w", race.ID, err)
			}
			count(&sum, created)
		}
		return sum, nil
	})
}

// ImportPlayableClasses creates every class with its icon.
func (i *Importer) ImportPlayableClasses(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainClasses, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		index, err := i.api.GetPlayableClasses(ctx)
		if err != nil {
			return sum, importError(DomainClasses, "failed to get playable classes: %w", err)
		}

		for _, class := range index.Classes {
			media, err := i.api.GetPlayableClassMedia(ctx, class.ID)
			if battlenet.IsNotFound(err) {
				log.Warn("Class media not found", zap.Int64("class_id", class.ID))
				sum.MissingID(class.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainClasses, "failed to get media for class %d: %w", class.ID, err)
			}

			created, err := i.store.GetOrCreateClass(ctx, &models.PlayableClass{
				ID:   class.ID,
				Name: class.Name,
				Icon: media.Icon(),
			})
			if err != nil {
				return sum, importError(DomainClasses, "failed to store class %d: %w", class.ID, err)
			}
			count(&sum, created)
		}
		return sum, nil
	})
}

// ImportPlayableSpecializations creates every specialization. The owning
// class must already be stored.
func (i *Importer) ImportPlayableSpecializations(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainSpecializations, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		index, err := i.api.GetPlayableSpecializations(ctx)
		if err != nil {
			return sum, importError(DomainSpecializations, "failed to get playable specializations: %w", err)
		}

		for _, ref := range index.CharacterSpecializations {
			spec, err := i.api.GetPlayableSpecialization(ctx, ref.ID)
			var media *battlenet.Media
			if err == nil {
				media, err = i.api.GetPlayableSpecializationMedia(ctx, ref.ID)
			}
			if battlenet.IsNotFound(err) {
				log.Warn("Specialization not found", zap.Int64("specialization_id", ref.ID))
				sum.MissingID(ref.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainSpecializations, "failed to get specialization %d: %w", ref.ID, err)
			}

			created, err := i.storeSpecialization(ctx, ref, spec, media)
			if err != nil {
				return sum, importError(DomainSpecializations, "failed to store specialization %d: %w", ref.ID, err)
			}
			count(&sum, created)
		}
		return sum, nil
	})
}

func (i *Importer) storeSpecialization(ctx context.Context, ref battlenet.Ref, spec *battlenet.Specialization, media *battlenet.Media) (bool, error) {
	class, err := i.store.GetClass(ctx, spec.PlayableClass.ID)
	if err != nil {
		return false, err
	}
	return i.store.GetOrCreateSpecialization(ctx, &models.PlayableSpecialization{
		ID:              ref.ID,
		Name:            ref.Name,
		Icon:            media.Icon(),
		PlayableClassID: class.ID,
		Role:            spec.Role.Name,
	})
}

// ImportProfessions creates every profession with its icon.
func (i *Importer) ImportProfessions(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainProfessions, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		index, err := i.api.GetProfessions(ctx)
		if err != nil {
			return sum, importError(DomainProfessions, "failed to get professions: %w", err)
		}

		for _, profession := range index.Professions {
			media, err := i.api.GetProfessionMedia(ctx, profession.ID)
			if battlenet.IsNotFound(err) {
				log.Warn("Profession media not found", zap.Int64("profession_id", profession.ID))
				sum.MissingID(profession.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainProfessions, "failed to get media for profession %d: %w", profession.ID, err)
			}

			created, err := i.store.GetOrCreateProfession(ctx, &models.Profession{
				ID:   profession.ID,
				Name: profession.Name,
				Icon: media.Icon(),
			})
			if err != nil {
				return sum, importError(DomainProfessions, "failed to store profession %d: %w", profession.ID, err)
			}
			count(&sum, created)
		}
		return sum, nil
	})
}

// ImportProfessionSkillTiers creates the skill tiers of every stored
// profession. Professions without tiers are skipped.
func (i *Importer) ImportProfessionSkillTiers(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainSkillTiers, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		professions, err := i.store.ListProfessions(ctx)
		if err != nil {
			return sum, importError(DomainSkillTiers, "failed to list professions: %w", err)
		}

		for _, profession := range professions {
			detail, err := i.api.GetProfession(ctx, profession.ID)
			if battlenet.IsNotFound(err) {
				log.Warn("Profession not found", zap.Int64("profession_id", profession.ID))
				sum.MissingID(profession.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainSkillTiers, "failed to get profession %d: %w", profession.ID, err)
			}
			if len(detail.SkillTiers) == 0 {
				log.Debug("Profession has no skill tiers", zap.Int64("profession_id", profession.ID))
				continue
			}

			for _, tier := range detail.SkillTiers {
				created, err := i.store.GetOrCreateSkillTier(ctx, &models.ProfessionSkillTier{
					ID:           tier.ID,
					Name:         tier.Name,
					ProfessionID: profession.ID,
				})
				if err != nil {
					return sum, importError(DomainSkillTiers, "failed to store skill tier %d: %w", tier.ID, err)
				}
				count(&sum, created)
			}
		}
		return sum, nil
	})
}

// ImportRecipesAndReagents walks the categories of every stored skill tier
// and creates the recipes not yet known, with their reagents.
func (i *Importer) ImportRecipesAndReagents(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainRecipes, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		tiers, err := i.store.ListSkillTiers(ctx)
		if err != nil {
			return sum, importError(DomainRecipes, "failed to list skill tiers: %w", err)
		}
		ids, err := i.store.RecipeIDs(ctx)
		if err != nil {
			return sum, importError(DomainRecipes, "failed to list known recipes: %w", err)
		}
		known := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			known[id] = struct{}{}
		}

		for _, tier := range tiers {
			detail, err := i.api.GetProfessionSkillTier(ctx, tier.ProfessionID, tier.ID)
			if battlenet.IsNotFound(err) {
				log.Warn("Skill tier not found", zap.Int64("skill_tier_id", tier.ID))
				sum.MissingID(tier.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainRecipes, "failed to get skill tier %d: %w", tier.ID, err)
			}

			for _, category := range detail.Categories {
				for _, recipe := range category.Recipes {
					if _, ok := known[recipe.ID]; ok {
						sum.Skipped++
						continue
					}

					synced, err := i.syncRecipe(ctx, log, recipe.ID, &tier)
					if battlenet.IsNotFound(err) {
						log.Warn("Recipe not found", zap.Int64("recipe_id", recipe.ID), zap.Int64("skill_tier_id", tier.ID))
						sum.MissingID(recipe.ID)
						continue
					}
					if err != nil {
						return sum, importError(DomainRecipes, "failed to import recipe %d of skill tier %d: %w", recipe.ID, tier.ID, err)
					}
					sum.Merge(synced)
					sum.Added += synced.RecipesCreated
					known[recipe.ID] = struct{}{}
				}
			}
		}
		return sum, nil
	})
}

// SyncRecipe creates recipe id with its media and reagents under skill tier
// tierID. A tier that is not stored leaves the recipe without profession and
// tier. Upstream NotFound errors are returned unwrapped so callers can skip
// the recipe.
func (i *Importer) SyncRecipe(ctx context.Context, id, tierID int64) (result.Summary, error) {
	tier, err := i.store.GetSkillTier(ctx, tierID)
	if errors.Is(err, database.ErrNotFound) {
		i.logger.Warn("Skill tier not stored, recipe left without profession",
			zap.Int64("recipe_id", id), zap.Int64("skill_tier_id", tierID))
		tier = nil
	} else if err != nil {
		return result.Summary{}, err
	}
	return i.syncRecipe(ctx, i.logger, id, tier)
}

func (i *Importer) syncRecipe(ctx context.Context, log *zap.Logger, id int64, tier *models.ProfessionSkillTier) (result.Summary, error) {
	var sum result.Summary
	log.Debug("Sync recipe", zap.Int64("recipe_id", id))

	media, err := i.api.GetRecipeMedia(ctx, id)
	if err != nil {
		return sum, err
	}
	detail, err := i.api.GetRecipe(ctx, id)
	if err != nil {
		return sum, err
	}

	recipe := &models.Recipe{
		ID:              id,
		Name:            detail.Name,
		Icon:            media.Icon(),
		CraftedQuantity: detail.CraftedQuantity.Quantity(),
	}
	if tier != nil {
		recipe.ProfessionID = &tier.ProfessionID
		recipe.ProfessionSkillTierID = &tier.ID
	}
	created, err := i.store.GetOrCreateRecipe(ctx, recipe)
	if err != nil {
		return sum, err
	}
	if created {
		sum.RecipesCreated++
	}

	for _, r := range detail.Reagents {
		if _, err := i.store.GetOrCreateReagent(ctx, &models.Reagent{ID: r.Reagent.ID, Name: r.Reagent.Name}); err != nil {
			return sum, err
		}
		created, err := i.store.GetOrCreateRecipeReagent(ctx, &models.RecipeReagent{
			RecipeID:  recipe.ID,
			ReagentID: r.Reagent.ID,
			Quantity:  r.Quantity,
		})
		if err != nil {
			return sum, err
		}
		if created {
			sum.ReagentsCreated++
		}
	}
	return sum, nil
}

// SyncItem creates item id with its icon unless it is already stored. The
// returned flag reports whether a row was created.
func (i *Importer) SyncItem(ctx context.Context, id int64) (bool, error) {
	detail, err := i.api.GetItem(ctx, id)
	if err != nil {
		return false, err
	}
	media, err := i.api.GetItemMedia(ctx, id)
	if err != nil {
		return false, err
	}
	return i.store.GetOrCreateItem(ctx, &models.Item{
		ID:           id,
		Name:         detail.Name,
		Icon:         media.Icon(),
		ItemClass:    detail.ItemClass.Name,
		ItemSubclass: detail.ItemSubclass.Name,
	})
}
