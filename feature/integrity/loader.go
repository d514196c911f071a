package integrity

import (
	"wowsync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the integrity feature. client may be nil.
func NewFeature(db *gorm.DB, models []any, client storage.Client, bucket, prefix string, logger *zap.Logger) *Feature {
	return NewFeatureWithService(NewService(db, models, client, bucket, prefix, logger))
}

// NewFeatureWithService creates the integrity feature around an existing service.
func NewFeatureWithService(service *Service) *Feature {
	return &Feature{handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
