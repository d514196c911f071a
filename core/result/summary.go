package result

import (
	"wowsync/core/metrics"

	"go.uber.org/zap"
)

// Summary accumulates the outcome of one sync run.
type Summary struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Removed int `json:"removed"`
	// NotFound lists upstream ids that were skipped because the API did not know them.
	NotFound []int64 `json:"not_found"`
	// NotFoundRecipes lists recipe ids a run needed but the API did not know,
	// when the run itself iterates over another entity.
	NotFoundRecipes []int64 `json:"not_found_recipes,omitempty"`

	// RecipesCreated and ReagentsCreated count catalog entries created on demand.
	RecipesCreated  int `json:"recipes_created"`
	ReagentsCreated int `json:"reagents_created"`
}

// MissingID records an id the upstream API answered with NotFound.
func (s *Summary) MissingID(id int64) {
	s.NotFound = append(s.NotFound, id)
}

// MissingRecipe records a recipe id the upstream API answered with NotFound.
func (s *Summary) MissingRecipe(id int64) {
	s.NotFoundRecipes = append(s.NotFoundRecipes, id)
}

// Merge adds other's counters into s.
func (s *Summary) Merge(other Summary) {
	s.Added += other.Added
	s.Updated += other.Updated
	s.Skipped += other.Skipped
	s.Removed += other.Removed
	s.NotFound = append(s.NotFound, other.NotFound...)
	s.NotFoundRecipes = append(s.NotFoundRecipes, other.NotFoundRecipes...)
	s.RecipesCreated += other.RecipesCreated
	s.ReagentsCreated += other.ReagentsCreated
}

// Fields returns the summary as log fields.
func (s Summary) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Int("added", s.Added),
		zap.Int("updated", s.Updated),
		zap.Int("skipped", s.Skipped),
		zap.Int("removed", s.Removed),
		zap.Int("not_found", len(s.NotFound)),
	}
	if len(s.NotFound) > 0 {
		fields = append(fields, zap.Int64s("not_found_ids", s.NotFound))
	}
	if len(s.NotFoundRecipes) > 0 {
		fields = append(fields, zap.Int64s("not_found_recipe_ids", s.NotFoundRecipes))
	}
	if s.RecipesCreated > 0 || s.ReagentsCreated > 0 {
		fields = append(fields,
			zap.Int("recipes_created", s.RecipesCreated),
			zap.Int("reagents_created", s.ReagentsCreated),
		)
	}
	return fields
}

// Record exports the item counters for a domain.
func (s Summary) Record(domain string) {
	metrics.RecordItems(domain, metrics.OutcomeAdded, s.Added)
	metrics.RecordItems(domain, metrics.OutcomeUpdated, s.Updated)
	metrics.RecordItems(domain, metrics.OutcomeSkipped, s.Skipped)
	metrics.RecordItems(domain, metrics.OutcomeRemoved, s.Removed)
	metrics.RecordItems(domain, metrics.OutcomeNotFound, len(s.NotFound)+len(s.NotFoundRecipes))
}
