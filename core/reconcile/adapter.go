package reconcile

import "context"

// Adapter supplies the two key sets of one reconciliation, for example a
// guild's tracked members and the members in the upstream roster.
type Adapter[K comparable] interface {
	// Name returns the unique name of this adapter (e.g., "roster", "known_recipes").
	Name() string

	// Existing returns the keys held locally.
	Existing(ctx context.Context) ([]K, error)

	// Reported returns the keys reported upstream.
	Reported(ctx context.Context) ([]K, error)
}

// Mutator applies single actions. Adapters implement it to let ApplyPlan
// write their changes.
type Mutator[K comparable] interface {
	// Add relates a reported key locally.
	Add(ctx context.Context, key K) error

	// Remove severs a key that is no longer reported. The entity itself is
	// not deleted.
	Remove(ctx context.Context, key K) error
}

// BatchMutator is implemented by mutators that can write many keys at once.
// ApplyPlan prefers it over per-key calls.
type BatchMutator[K comparable] interface {
	AddBatch(ctx context.Context, keys []K) error
	RemoveBatch(ctx context.Context, keys []K) error
}

// Reconciler is an adapter that also writes its changes.
type Reconciler[K comparable] interface {
	Adapter[K]
	Mutator[K]
}
