// Package storage archives raw upstream snapshots in object storage.
//
// It wraps the MinIO Go client so the archive works against AWS S3 or a
// self-hosted MinIO instance. Archived payloads are keyed by their origin
// fingerprint, which makes uploads idempotent: re-importing an identical
// snapshot finds the existing object and skips the upload.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archive := storage.NewArchive(client, cfg.Storage.Bucket, "commodities")
//	stored, err := archive.Save(ctx, string(origin), payload)
package storage
