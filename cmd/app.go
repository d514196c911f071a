package cmd

import (
	"context"
	"fmt"

	"wowsync/core/battlenet"
	"wowsync/core/config"
	"wowsync/core/database"
	"wowsync/core/logger"
	"wowsync/core/market"
	"wowsync/core/storage"
	"wowsync/feature/auctionhouse"
	auctionhousemodels "wowsync/feature/auctionhouse/models"
	"wowsync/feature/gamedata"
	gamedatamodels "wowsync/feature/gamedata/models"
	"wowsync/feature/guild"
	guildmodels "wowsync/feature/guild/models"
	"wowsync/feature/integrity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// snapshotPrefix is the object key prefix of archived commodity snapshots.
const snapshotPrefix = "commodities"

// app holds the wired dependencies shared by the sync commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB

	catalog      *gamedata.GormStore
	gamedata     *gamedata.Importer
	guild        *guild.Importer
	auctionhouse *auctionhouse.Importer
}

// loadBase loads configuration, builds the logger and connects the store.
func loadBase() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, l, db, nil
}

// newApp wires the upstream client, the stores and the importers.
func newApp(ctx context.Context) (*app, error) {
	cfg, l, db, err := loadBase()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := battlenet.NewClient(cfg.Battlenet, l.Named("battlenet"))
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	catalog := gamedata.NewGormStore(db)
	gd := gamedata.NewImporter(client, catalog, l)

	var opts []auctionhouse.Option
	if cfg.Storage.Enabled {
		archive, err := newArchive(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		opts = append(opts, auctionhouse.WithArchive(archive))
	}

	return &app{
		cfg:          cfg,
		logger:       l,
		db:           db,
		catalog:      catalog,
		gamedata:     gd,
		guild:        guild.NewImporter(client, guild.NewGormStore(db), catalog, gd, l),
		auctionhouse: auctionhouse.NewImporter(client, auctionhouse.NewGormStore(db), catalog, gd, market.NewResolver(cfg.Market), l, opts...),
	}, nil
}

func newArchive(ctx context.Context, cfg storage.Config) (*storage.Archive, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	archive := storage.NewArchive(client, cfg.Bucket, snapshotPrefix)
	if err := archive.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return archive, nil
}

// migrate creates or updates every table.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := gamedata.NewGormStore(db).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}
	if err := guild.NewGormStore(db).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate guilds: %w", err)
	}
	if err := auctionhouse.NewGormStore(db).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate commodities: %w", err)
	}
	return nil
}

// allModels lists every persisted model, catalog first.
func allModels() []any {
	models := gamedatamodels.All()
	models = append(models, guildmodels.All()...)
	return append(models, auctionhousemodels.All()...)
}

// newIntegrity builds the integrity service. The archive client is only
// created when storage is enabled.
func newIntegrity(cfg *config.Config, db *gorm.DB, l *zap.Logger) (*integrity.Service, error) {
	var client storage.Client
	if cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}
	return integrity.NewService(db, allModels(), client, cfg.Storage.Bucket, snapshotPrefix, l), nil
}
