package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// Archive stores raw upstream snapshots keyed by their origin fingerprint.
// Objects are write-once: a key that already exists is never overwritten.
type Archive struct {
	client Client
	bucket string
	prefix string
}

// NewArchive creates an archive writing under prefix in bucket.
func NewArchive(client Client, bucket, prefix string) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: prefix}
}

// EnsureBucket creates the archive bucket when it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Key returns the object key for a snapshot name.
func (a *Archive) Key(name string) string {
	return path.Join(a.prefix, name+".json")
}

// Save uploads payload under name unless an object with that key already exists.
// The returned flag reports whether an upload happened.
func (a *Archive) Save(ctx context.Context, name string, payload []byte) (bool, error) {
	key := a.Key(name)

	if _, err := a.client.StatObject(ctx, a.bucket, key, minio.StatObjectOptions{}); err == nil {
		return false, nil
	} else if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return false, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return true, nil
}

// Load downloads the snapshot stored under name.
func (a *Archive) Load(ctx context.Context, name string) ([]byte, error) {
	key := a.Key(name)
	reader, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}
