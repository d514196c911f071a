package checks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wowsync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ArchiveReport describes the snapshot archive.
type ArchiveReport struct {
	Bucket    string     `json:"bucket"`
	Prefix    string     `json:"prefix"`
	Snapshots int        `json:"snapshots"`
	Latest    *time.Time `json:"latest,omitempty"`
}

// CheckArchive verifies the bucket exists and counts the snapshots under prefix.
func CheckArchive(ctx context.Context, client storage.Client, bucket, prefix string) (*ArchiveReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	report := &ArchiveReport{Bucket: bucket, Prefix: prefix}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		report.Snapshots++
		if report.Latest == nil || obj.LastModified.After(*report.Latest) {
			modified := obj.LastModified
			report.Latest = &modified
		}
	}

	return report, nil
}
