package reconcile

// Diff is the result of comparing a locally held key set against an
// upstream-reported one. The three slices are disjoint.
type Diff[K comparable] struct {
	// Keep holds keys present on both sides, in existing order.
	Keep []K `json:"keep"`
	// Add holds reported keys that are not held locally, in reported order.
	Add []K `json:"add"`
	// Remove holds local keys that are no longer reported, in existing order.
	Remove []K `json:"remove"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionAdd relates a reported key locally.
	ActionAdd ActionType = "add"
	// ActionRemove severs a local key that is no longer reported.
	ActionRemove ActionType = "remove"
)

// Action represents a planned mutation operation.
type Action[K comparable] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key K `json:"key"`
}

// Plan contains the diff and the actions derived from it.
type Plan[K comparable] struct {
	// Diff is the set comparison the plan was built from.
	Diff Diff[K] `json:"diff"`

	// Actions contains planned mutation operations, additions first.
	Actions []Action[K] `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Existing is the number of keys held locally before the run.
	Existing int `json:"existing"`

	// Reported is the number of distinct keys reported upstream.
	Reported int `json:"reported"`

	// Kept counts keys that need no write.
	Kept int `json:"kept"`

	// Added counts planned additions.
	Added int `json:"added"`

	// Removed counts planned removals.
	Removed int `json:"removed"`
}

// Options controls which planned actions ApplyPlan executes.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// SkipRemove leaves local keys in place even when they are no longer reported.
	SkipRemove bool
}
