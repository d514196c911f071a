package guild

import (
	"context"
	"errors"

	"wowsync/core/battlenet"
	"wowsync/core/database"
	"wowsync/core/reconcile"
	"wowsync/core/result"
	"wowsync/feature/guild/models"

	"go.uber.org/zap"
)

// Sync domains of the guild importer.
const (
	DomainGuild        = "guild"
	DomainRoster       = "guild_roster"
	DomainCharacters   = "characters"
	DomainKnownRecipes = "known_recipes"
)

// Importer keeps guilds, their rosters and character profiles in step with
// the API.
type Importer struct {
	api     API
	store   Store
	catalog Catalog
	recipes RecipeSyncer
	logger  *zap.Logger
}

// NewImporter creates a guild importer.
func NewImporter(api API, store Store, catalog Catalog, recipes RecipeSyncer, logger *zap.Logger) *Importer {
	return &Importer{
		api:     api,
		store:   store,
		catalog: catalog,
		recipes: recipes,
		logger:  logger,
	}
}

// ImportGuild creates the guild named name on realm.
func (i *Importer) ImportGuild(ctx context.Context, realm, name string) (result.Summary, error) {
	return result.Run(i.logger, DomainGuild, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		resp, err := i.api.GetGuild(ctx, Slug(realm), Slug(name))
		if err != nil {
			return sum, importError(DomainGuild, "failed to get guild %s/%s: %w", realm, name, err)
		}

		created, err := i.store.GetOrCreateGuild(ctx, &models.Guild{
			ID:      resp.ID,
			Name:    resp.Name,
			Slug:    Slug(name),
			Realm:   resp.Realm.Slug,
			Region:  i.api.Region(),
			Faction: resp.Faction.Name,
		})
		if err != nil {
			return sum, importError(DomainGuild, "failed to store guild %d: %w", resp.ID, err)
		}
		if created {
			sum.Added++
		} else {
			sum.Skipped++
		}
		log.Info("Guild imported", zap.Int64("guild_id", resp.ID), zap.String("name", resp.Name))
		return sum, nil
	})
}

// SyncGuildRoster reconciles the stored members of a previously imported
// guild with its upstream roster.
func (i *Importer) SyncGuildRoster(ctx context.Context, realm, name string) (result.Summary, error) {
	return result.Run(i.logger, DomainRoster, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		guild, err := i.store.FindGuild(ctx, Slug(realm), Slug(name))
		if errors.Is(err, database.ErrNotFound) {
			return sum, importError(DomainRoster, "no guild named %s on realm %s, run the guild import first: %w", name, realm, err)
		}
		if err != nil {
			return sum, importError(DomainRoster, "failed to load guild: %w", err)
		}

		roster, err := i.api.GetGuildRoster(ctx, guild.Realm, guild.Slug)
		if err != nil {
			return sum, importError(DomainRoster, "failed to get roster of guild %d: %w", guild.ID, err)
		}

		adapter := newRosterReconciler(i.store, i.catalog, guild, roster, &sum, log)
		plan, _, err := reconcile.ReconcileAndApply[int64](ctx, adapter, reconcile.Options{})
		if plan != nil {
			sum.Skipped = plan.Summary.Kept
			log.Info("Roster plan",
				zap.Int64("guild_id", guild.ID),
				zap.Int("existing", plan.Summary.Existing),
				zap.Int("reported", plan.Summary.Reported),
			)
		}
		if err != nil {
			return sum, importError(DomainRoster, "failed to reconcile roster of guild %d: %w", guild.ID, err)
		}
		return sum, nil
	})
}

// SyncCharacters refreshes the profile of every stored character.
// Characters the API does not know are recorded and skipped.
func (i *Importer) SyncCharacters(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainCharacters, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		characters, err := i.store.ListCharacters(ctx)
		if err != nil {
			return sum, importError(DomainCharacters, "failed to list characters: %w", err)
		}
		log.Debug("Characters to sync", zap.Int("count", len(characters)))

		for idx := range characters {
			character := &characters[idx]

			profile, err := i.api.GetCharacterSummary(ctx, character.Realm, character.Name)
			var media *battlenet.Media
			if err == nil {
				media, err = i.api.GetCharacterMedia(ctx, character.Realm, character.Name)
			}
			if battlenet.IsNotFound(err) {
				log.Warn("Character not found", zap.Int64("character_id", character.ID), zap.String("name", character.Name))
				sum.MissingID(character.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainCharacters, "failed to get character %d: %w", character.ID, err)
			}

			if err := i.applyProfile(ctx, log, character, profile, media); err != nil {
				return sum, importError(DomainCharacters, "failed to update character %d: %w", character.ID, err)
			}
			sum.Updated++
		}
		return sum, nil
	})
}

func (i *Importer) applyProfile(ctx context.Context, log *zap.Logger, character *models.Character, profile *battlenet.CharacterSummary, media *battlenet.Media) error {
	if profile.ActiveSpec != nil {
		spec, err := i.catalog.GetSpecialization(ctx, profile.ActiveSpec.ID)
		switch {
		case errors.Is(err, database.ErrNotFound):
			log.Warn("Active specialization not in catalog",
				zap.Int64("character_id", character.ID),
				zap.Int64("specialization_id", profile.ActiveSpec.ID),
			)
		case err != nil:
			return err
		default:
			character.ActiveSpecID = &spec.ID
		}
	}

	if profile.Level > 0 {
		character.Level = profile.Level
	}
	character.Icon = media.Asset("avatar")
	character.InsetIcon = media.Asset("inset")
	character.CharacterModel = media.Asset("main-raw")
	character.AchievementPoints = profile.AchievementPoints
	character.AverageItemLevel = profile.AverageItemLevel
	character.EquippedItemLevel = profile.EquippedItemLevel

	return i.store.UpdateProfile(ctx, character)
}

// SyncCharacterRecipes reconciles the known recipes of every stored
// character with the recipes its professions report.
func (i *Importer) SyncCharacterRecipes(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainKnownRecipes, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		characters, err := i.store.ListCharacters(ctx)
		if err != nil {
			return sum, importError(DomainKnownRecipes, "failed to list characters: %w", err)
		}
		ids, err := i.catalog.RecipeIDs(ctx)
		if err != nil {
			return sum, importError(DomainKnownRecipes, "failed to list recipes: %w", err)
		}
		catalog := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			catalog[id] = struct{}{}
		}

		for idx := range characters {
			character := &characters[idx]

			professions, err := i.api.GetCharacterProfessions(ctx, character.Realm, character.Name)
			if battlenet.IsNotFound(err) {
				log.Warn("Character not found", zap.Int64("character_id", character.ID), zap.String("name", character.Name))
				sum.MissingID(character.ID)
				continue
			}
			if err != nil {
				return sum, importError(DomainKnownRecipes, "failed to get professions of character %d: %w", character.ID, err)
			}

			adapter := &knownRecipeReconciler{
				store:     i.store,
				recipes:   i.recipes,
				character: character,
				tiers:     map[int64]int64{},
				catalog:   catalog,
				sum:       &sum,
				log:       log,
			}
			for _, profession := range professions.All() {
				for _, tier := range profession.Tiers {
					for _, recipe := range tier.KnownRecipes {
						adapter.reported = append(adapter.reported, recipe.ID)
						adapter.tiers[recipe.ID] = tier.Tier.ID
					}
				}
			}

			plan, _, err := reconcile.ReconcileAndApply[int64](ctx, adapter, reconcile.Options{})
			if err != nil {
				return sum, importError(DomainKnownRecipes, "failed to reconcile recipes of character %d: %w", character.ID, err)
			}
			if !plan.Diff.Empty() {
				log.Debug("Known recipes changed",
					zap.Int64("character_id", character.ID),
					zap.Int("added", plan.Summary.Added),
					zap.Int("removed", plan.Summary.Removed),
				)
			}
		}
		return sum, nil
	})
}
