package guild

import (
	"context"
	"errors"
	"fmt"

	"wowsync/core/battlenet"
	"wowsync/core/database"
	"wowsync/core/reconcile"
	"wowsync/core/result"
	"wowsync/feature/guild/models"

	"go.uber.org/zap"
)

// rosterReconciler makes the stored membership of one guild equal the
// upstream roster. Reported members are created or moved into the guild;
// members no longer reported are detached.
type rosterReconciler struct {
	store   Store
	catalog Catalog
	guild   *models.Guild
	members map[int64]battlenet.RosterMember
	order   []int64
	sum     *result.Summary
	log     *zap.Logger
}

var _ reconcile.Reconciler[int64] = (*rosterReconciler)(nil)

func newRosterReconciler(store Store, catalog Catalog, guild *models.Guild, roster *battlenet.GuildRoster, sum *result.Summary, log *zap.Logger) *rosterReconciler {
	r := &rosterReconciler{
		store:   store,
		catalog: catalog,
		guild:   guild,
		members: make(map[int64]battlenet.RosterMember, len(roster.Members)),
		sum:     sum,
		log:     log,
	}
	for _, m := range roster.Members {
		if _, dup := r.members[m.Character.ID]; dup {
			continue
		}
		r.members[m.Character.ID] = m
		r.order = append(r.order, m.Character.ID)
	}
	return r
}

func (r *rosterReconciler) Name() string { return "guild_roster" }

func (r *rosterReconciler) Existing(ctx context.Context) ([]int64, error) {
	return r.store.MemberIDs(ctx, r.guild.ID)
}

func (r *rosterReconciler) Reported(context.Context) ([]int64, error) {
	return r.order, nil
}

// Add stores the reported member as part of the guild. A character that is
// already stored keeps its profile data; guild, rank and level are updated.
func (r *rosterReconciler) Add(ctx context.Context, id int64) error {
	member := r.members[id]

	class, err := r.catalog.GetClass(ctx, member.Character.PlayableClass.ID)
	if err != nil {
		return fmt.Errorf("character %d: %w", id, err)
	}
	race, err := r.catalog.GetRace(ctx, member.Character.PlayableRace.ID)
	if err != nil {
		return fmt.Errorf("character %d: %w", id, err)
	}

	character, err := r.store.GetCharacter(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		character = &models.Character{ID: id}
	} else if err != nil {
		return err
	}

	rank := member.Rank
	character.Name = member.Character.Name
	character.Level = member.Character.Level
	character.Realm = member.Character.Realm.Slug
	character.GuildID = &r.guild.ID
	character.GuildRank = &rank
	character.PlayableClassID = class.ID
	character.PlayableRaceID = race.ID

	if err := r.store.SaveCharacter(ctx, character); err != nil {
		return err
	}
	r.log.Debug("Member added", zap.Int64("character_id", id), zap.String("name", character.Name))
	r.sum.Added++
	return nil
}

func (r *rosterReconciler) Remove(ctx context.Context, id int64) error {
	n, err := r.store.DetachCharacters(ctx, r.guild.ID, []int64{id})
	if err != nil {
		return err
	}
	r.log.Debug("Member detached", zap.Int64("character_id", id))
	r.sum.Removed += int(n)
	return nil
}

// knownRecipeReconciler makes the stored known recipes of one character
// equal the recipes reported by its professions. Recipes missing from the
// catalog are created on demand.
type knownRecipeReconciler struct {
	store     Store
	recipes   RecipeSyncer
	character *models.Character
	reported  []int64
	tiers     map[int64]int64
	catalog   map[int64]struct{}
	sum       *result.Summary
	log       *zap.Logger
}

var (
	_ reconcile.Reconciler[int64]   = (*knownRecipeReconciler)(nil)
	_ reconcile.BatchMutator[int64] = (*knownRecipeReconciler)(nil)
)

func (r *knownRecipeReconciler) Name() string { return "known_recipes" }

func (r *knownRecipeReconciler) Existing(ctx context.Context) ([]int64, error) {
	return r.store.KnownRecipeIDs(ctx, r.character.ID)
}

func (r *knownRecipeReconciler) Reported(context.Context) ([]int64, error) {
	return r.reported, nil
}

func (r *knownRecipeReconciler) AddBatch(ctx context.Context, ids []int64) error {
	relate := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.catalog[id]; !ok {
			synced, err := r.recipes.SyncRecipe(ctx, id, r.tiers[id])
			if battlenet.IsNotFound(err) {
				r.log.Warn("Known recipe not found", zap.Int64("recipe_id", id), zap.Int64("character_id", r.character.ID))
				r.sum.MissingRecipe(id)
				continue
			}
			if err != nil {
				return fmt.Errorf("recipe %d: %w", id, err)
			}
			r.sum.Merge(synced)
			r.catalog[id] = struct{}{}
		}
		relate = append(relate, id)
	}

	if err := r.store.AddKnownRecipes(ctx, r.character.ID, relate); err != nil {
		return err
	}
	r.sum.Added += len(relate)
	return nil
}

func (r *knownRecipeReconciler) RemoveBatch(ctx context.Context, ids []int64) error {
	if err := r.store.RemoveKnownRecipes(ctx, r.character.ID, ids); err != nil {
		return err
	}
	r.sum.Removed += len(ids)
	return nil
}

func (r *knownRecipeReconciler) Add(ctx context.Context, id int64) error {
	return r.AddBatch(ctx, []int64{id})
}

func (r *knownRecipeReconciler) Remove(ctx context.Context, id int64) error {
	return r.RemoveBatch(ctx, []int64{id})
}
