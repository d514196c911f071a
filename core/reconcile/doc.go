// Package reconcile synchronizes a locally held key set with an upstream
// source of truth.
//
// # Architecture
//
// 1. Engine: Compute set-differences the existing keys against the reported
//    ones and yields three disjoint sets: keep, add, and remove.
//
// 2. Plan: BuildPlan turns a diff into ordered actions plus a summary.
//    ApplyPlan executes them through a Mutator, preferring BatchMutator when
//    the mutator supports it. Kept keys never reach the mutator.
//
// 3. Adapter: domain-specific loading of both key sets. Guild rosters detach
//    removed members; known recipes unrelate removed recipes. Entities are
//    never deleted by a reconciliation.
//
// # Usage Example
//
//	plan, executed, err := reconcile.ReconcileAndApply[int64](ctx, rosterAdapter, reconcile.Options{})
//	log.Info("roster reconciled", zap.Int("added", plan.Summary.Added), zap.Int("executed", executed))
package reconcile
