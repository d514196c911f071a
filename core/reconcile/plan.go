package reconcile

import (
	"context"
	"fmt"
)

// BuildPlan computes the diff of existing against reported and the actions
// needed to make the local set equal the reported one.
func BuildPlan[K comparable](existing, reported []K) *Plan[K] {
	diff := Compute(existing, reported)

	actions := make([]Action[K], 0, len(diff.Add)+len(diff.Remove))
	for _, k := range diff.Add {
		actions = append(actions, Action[K]{Type: ActionAdd, Key: k})
	}
	for _, k := range diff.Remove {
		actions = append(actions, Action[K]{Type: ActionRemove, Key: k})
	}

	return &Plan[K]{
		Diff:    diff,
		Actions: actions,
		Summary: PlanSummary{
			Existing: len(diff.Keep) + len(diff.Remove),
			Reported: len(diff.Keep) + len(diff.Add),
			Kept:     len(diff.Keep),
			Added:    len(diff.Add),
			Removed:  len(diff.Remove),
		},
	}
}

// ReconcileWithPlan loads both key sets from the adapter and returns a plan.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan[K comparable](ctx context.Context, adapter Adapter[K]) (*Plan[K], error) {
	existing, err := adapter.Existing(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load existing keys: %w", adapter.Name(), err)
	}
	reported, err := adapter.Reported(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load reported keys: %w", adapter.Name(), err)
	}
	return BuildPlan(existing, reported), nil
}

// ApplyPlan executes the actions in a plan, additions before removals.
// Returns the number of actions executed and any error encountered; actions
// executed before an error stay applied.
func ApplyPlan[K comparable](ctx context.Context, plan *Plan[K], mutator Mutator[K], opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	var adds, removes []K
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionAdd:
			adds = append(adds, action.Key)
		case ActionRemove:
			if !opts.SkipRemove {
				removes = append(removes, action.Key)
			}
		}
	}

	if batcher, ok := mutator.(BatchMutator[K]); ok {
		if len(adds) > 0 {
			if err := batcher.AddBatch(ctx, adds); err != nil {
				return executed, fmt.Errorf("failed to batch add keys: %w", err)
			}
			executed += len(adds)
		}
		if len(removes) > 0 {
			if err := batcher.RemoveBatch(ctx, removes); err != nil {
				return executed, fmt.Errorf("failed to batch remove keys: %w", err)
			}
			executed += len(removes)
		}
		return executed, nil
	}

	// Fallback to one-at-a-time
	for _, key := range adds {
		if err := mutator.Add(ctx, key); err != nil {
			return executed, fmt.Errorf("failed to add key %v: %w", key, err)
		}
		executed++
	}
	for _, key := range removes {
		if err := mutator.Remove(ctx, key); err != nil {
			return executed, fmt.Errorf("failed to remove key %v: %w", key, err)
		}
		executed++
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and applies actions
// through an adapter that also mutates.
func ReconcileAndApply[K comparable](ctx context.Context, adapter Reconciler[K], opts Options) (*Plan[K], int, error) {
	plan, err := ReconcileWithPlan[K](ctx, adapter)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan[K](ctx, plan, adapter, opts)
	if err != nil {
		return plan, executed, fmt.Errorf("%s: %w", adapter.Name(), err)
	}
	return plan, executed, nil
}
