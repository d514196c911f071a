package gamedata

import (
	"context"

	"wowsync/core/battlenet"
)

// API is the part of the upstream client the catalog importer needs.
// *battlenet.Client implements it.
type API interface {
	GetPlayableRaces(ctx context.Context) (*battlenet.PlayableRaceIndex, error)
	GetPlayableClasses(ctx context.Context) (*battlenet.PlayableClassIndex, error)
	GetPlayableClassMedia(ctx context.Context, id int64) (*battlenet.Media, error)
	GetPlayableSpecializations(ctx context.Context) (*battlenet.SpecializationIndex, error)
	GetPlayableSpecialization(ctx context.Context, id int64) (*battlenet.Specialization, error)
	GetPlayableSpecializationMedia(ctx context.Context, id int64) (*battlenet.Media, error)
	GetProfessions(ctx context.Context) (*battlenet.ProfessionIndex, error)
	GetProfession(ctx context.Context, id int64) (*battlenet.Profession, error)
	GetProfessionMedia(ctx context.Context, id int64) (*battlenet.Media, error)
	GetProfessionSkillTier(ctx context.Context, professionID, tierID int64) (*battlenet.SkillTier, error)
	GetRecipe(ctx context.Context, id int64) (*battlenet.Recipe, error)
	GetRecipeMedia(ctx context.Context, id int64) (*battlenet.Media, error)
	GetItem(ctx context.Context, id int64) (*battlenet.Item, error)
	GetItemMedia(ctx context.Context, id int64) (*battlenet.Media, error)
}

var _ API = (*battlenet.Client)(nil)
