// Package integrity checks that the local store and the snapshot archive are
// in the state the sync jobs expect: every model has its table and columns,
// and the archive bucket exists.
package integrity
