// Package fingerprint derives origin fingerprints for upstream snapshots.
//
// Importers store the origin next to every record derived from a snapshot;
// a record whose (entity, origin) pair already exists marks a repeat import.
package fingerprint
