package integrity

import (
	"context"
	"errors"

	"wowsync/core/storage"
	"wowsync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrArchiveDisabled is returned when no archive client is configured.
var ErrArchiveDisabled = errors.New("snapshot archive is disabled")

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	models []any
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when the
// archive is disabled.
func NewService(db *gorm.DB, models []any, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		models: models,
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// CheckSchema compares the database against the registered models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// CheckArchive inspects the snapshot archive.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	if s.client == nil {
		return nil, ErrArchiveDisabled
	}
	return checks.CheckArchive(ctx, s.client, s.bucket, s.prefix)
}
