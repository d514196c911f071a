package auctionhouse

import (
	"context"
	"fmt"
	"time"

	"wowsync/core/battlenet"
	"wowsync/core/fingerprint"
	"wowsync/core/market"
	"wowsync/core/result"
	"wowsync/feature/auctionhouse/models"

	"go.uber.org/zap"
)

// DomainCommodities is the sync domain of the commodity importer.
const DomainCommodities = "commodities"

// API is the part of the upstream client the importer needs.
type API interface {
	GetCommodities(ctx context.Context) (*battlenet.RawSnapshot[battlenet.Commodities], error)
}

var _ API = (*battlenet.Client)(nil)

// ItemCatalog lists stored items. *gamedata.GormStore implements it.
type ItemCatalog interface {
	ItemIDs(ctx context.Context) ([]int64, error)
}

// ItemSyncer creates items that are not stored yet. *gamedata.Importer
// implements it.
type ItemSyncer interface {
	SyncItem(ctx context.Context, id int64) (bool, error)
}

// Archiver keeps raw snapshots. *storage.Archive implements it.
type Archiver interface {
	Save(ctx context.Context, name string, payload []byte) (bool, error)
}

// Importer turns commodity snapshots into per-item market records.
type Importer struct {
	api      API
	store    Store
	items    ItemCatalog
	syncer   ItemSyncer
	resolver *market.Resolver
	archive  Archiver
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures an Importer.
type Option func(*Importer)

// WithArchive stores every new raw snapshot in archive.
func WithArchive(archive Archiver) Option {
	return func(i *Importer) { i.archive = archive }
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) { i.now = now }
}

// NewImporter creates a commodity importer.
func NewImporter(api API, store Store, items ItemCatalog, syncer ItemSyncer, resolver *market.Resolver, logger *zap.Logger, opts ...Option) *Importer {
	i := &Importer{
		api:      api,
		store:    store,
		items:    items,
		syncer:   syncer,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func fail(format string, args ...any) error {
	return &ImportError{Op: DomainCommodities, Err: fmt.Errorf(format, args...)}
}

// ImportCommodities fetches the current snapshot and writes one record per
// item. Items that already have a record for the snapshot's origin are
// skipped, so importing the same snapshot twice writes nothing.
func (i *Importer) ImportCommodities(ctx context.Context) (result.Summary, error) {
	return result.Run(i.logger, DomainCommodities, func(log *zap.Logger) (result.Summary, error) {
		var sum result.Summary

		snap, err := i.api.GetCommodities(ctx)
		if err != nil {
			return sum, fail("failed to get commodities: %w", err)
		}
		origin, err := fingerprint.Compute(snap.Body)
		if err != nil {
			return sum, fail("failed to fingerprint snapshot: %w", err)
		}
		log = log.With(zap.String("origin", string(origin)))

		if i.archive != nil {
			if saved, err := i.archive.Save(ctx, string(origin), snap.Body); err != nil {
				log.Warn("Snapshot not archived", zap.Error(err))
			} else if saved {
				log.Info("Snapshot archived", zap.Int("bytes", len(snap.Body)))
			}
		}

		recorded, err := i.store.ItemsWithOrigin(ctx, string(origin))
		if err != nil {
			return sum, fail("failed to load records of origin: %w", err)
		}
		existing := make(map[int64]struct{}, len(recorded))
		for _, id := range recorded {
			existing[id] = struct{}{}
		}

		ids, err := i.items.ItemIDs(ctx)
		if err != nil {
			return sum, fail("failed to list items: %w", err)
		}
		known := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			known[id] = struct{}{}
		}

		listings := make([]market.Listing, 0, len(snap.Data.Auctions))
		for _, a := range snap.Data.Auctions {
			listings = append(listings, market.Listing{ItemID: a.Item.ID, UnitPrice: a.UnitPrice, Quantity: a.Quantity})
		}
		analyses := i.resolver.Analyze(listings)
		log.Debug("Market analysed", zap.Int("listings", len(listings)), zap.Int("items", len(analyses)))

		timestamp := i.now()
		for _, a := range analyses {
			if _, ok := existing[a.ItemID]; ok {
				sum.Skipped++
				continue
			}

			if _, ok := known[a.ItemID]; !ok {
				_, err := i.syncer.SyncItem(ctx, a.ItemID)
				if battlenet.IsNotFound(err) {
					log.Warn("Listed item not found upstream", zap.Int64("item_id", a.ItemID))
					sum.MissingID(a.ItemID)
					continue
				}
				if err != nil {
					return sum, fail("failed to create item %d: %w", a.ItemID, err)
				}
				known[a.ItemID] = struct{}{}
			}

			err := i.store.CreateCommodity(ctx, &models.Commodity{
				ItemID:      a.ItemID,
				Origin:      string(origin),
				Quantity:    a.TotalQuantity,
				MinPrice:    a.MinPrice,
				MaxPrice:    a.MaxPrice,
				MarketPrice: a.MarketPrice,
				Timestamp:   timestamp,
			})
			if err != nil {
				return sum, fail("failed to store commodity for item %d: %w", a.ItemID, err)
			}
			sum.Added++
		}
		return sum, nil
	})
}
