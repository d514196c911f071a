package auctionhouse

import (
	"context"

	"wowsync/feature/auctionhouse/models"

	"gorm.io/gorm"
)

// Store is the commodity side of the canonical store.
type Store interface {
	ItemsWithOrigin(ctx context.Context, origin string) ([]int64, error)
	CreateCommodity(ctx context.Context, commodity *models.Commodity) error
	History(ctx context.Context, itemID int64, limit int) ([]models.Commodity, error)
}

// GormStore implements Store on gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the commodity table.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// ItemsWithOrigin returns the items that already have a record for origin.
func (s *GormStore) ItemsWithOrigin(ctx context.Context, origin string) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&models.Commodity{}).
		Where("origin = ?", origin).Pluck("item_id", &ids).Error
	return ids, err
}

func (s *GormStore) CreateCommodity(ctx context.Context, commodity *models.Commodity) error {
	return s.db.WithContext(ctx).Omit("Item").Create(commodity).Error
}

// History returns the newest records of an item, newest first.
func (s *GormStore) History(ctx context.Context, itemID int64, limit int) ([]models.Commodity, error) {
	var commodities []models.Commodity
	err := s.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&commodities).Error
	return commodities, err
}
