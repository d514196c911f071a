package auctionhouse_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"wowsync/core/battlenet"
	"wowsync/core/battlenet/battlenettest"
	"wowsync/core/database"
	"wowsync/core/fingerprint"
	"wowsync/core/market"
	"wowsync/core/storage"
	"wowsync/core/storage/mocks"
	"wowsync/feature/auctionhouse"
	"wowsync/feature/gamedata"
	gdmodels "wowsync/feature/gamedata/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const commoditiesPath = "/data/wow/auctions/commodities"

// Item 190 is stored, 191 is created on demand and 192 is unknown upstream.
const snapshot = `{"auctions":[
	{"id":1,"item":{"id":190},"quantity":10,"unit_price":100},
	{"id":2,"item":{"id":190},"quantity":5,"unit_price":102},
	{"id":3,"item":{"id":191},"quantity":1,"unit_price":50},
	{"id":4,"item":{"id":190},"quantity":2,"unit_price":101},
	{"id":5,"item":{"id":190},"quantity":1,"unit_price":5000},
	{"id":6,"item":{"id":192},"quantity":200,"unit_price":1}
]}`

// The same listings with reordered keys and whitespace.
const reordered = `{"auctions":[{"unit_price":100,"quantity":10,"item":{"id":190},"id":1},{"unit_price":102,"quantity":5,"item":{"id":190},"id":2},{"unit_price":50,"quantity":1,"item":{"id":191},"id":3},{"unit_price":101,"quantity":2,"item":{"id":190},"id":4},{"unit_price":5000,"quantity":1,"item":{"id":190},"id":5},{"unit_price":1,"quantity":200,"item":{"id":192},"id":6}]}`

type fixture struct {
	upstream *battlenettest.Server
	store    *auctionhouse.GormStore
	catalog  *gamedata.GormStore
	syncer   *gamedata.Importer
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	catalog := gamedata.NewGormStore(db)
	require.NoError(t, catalog.Migrate(ctx))
	store := auctionhouse.NewGormStore(db)
	require.NoError(t, store.Migrate(ctx))

	_, err = catalog.GetOrCreateItem(ctx, &gdmodels.Item{ID: 190, Name: "Draconium Ore"})
	require.NoError(t, err)

	upstream := battlenettest.New(t)
	upstream.Handle(commoditiesPath, snapshot)
	upstream.Handle("/data/wow/item/191", battlenet.Item{ID: 191, Name: "Serevite Ore", ItemClass: battlenet.Ref{Name: "Tradeskill"}})
	upstream.Handle("/data/wow/media/item/191", battlenet.Media{Assets: []battlenet.Asset{{Key: "icon", Value: "serevite.jpg"}}})
	upstream.Fail("/data/wow/item/192", http.StatusNotFound)

	return &fixture{
		upstream: upstream,
		store:    store,
		catalog:  catalog,
		syncer:   gamedata.NewImporter(upstream.Client(t), catalog, zap.NewNop()),
		now:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) importer(t *testing.T, opts ...auctionhouse.Option) *auctionhouse.Importer {
	opts = append(opts, auctionhouse.WithClock(func() time.Time { return f.now }))
	return auctionhouse.NewImporter(f.upstream.Client(t), f.store, f.catalog, f.syncer,
		market.NewResolver(market.DefaultConfig()), zap.NewNop(), opts...)
}

func TestImportCommodities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sum, err := f.importer(t).ImportCommodities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Added)
	assert.Equal(t, 0, sum.Skipped)
	assert.Equal(t, []int64{192}, sum.NotFound)

	history, err := f.store.History(ctx, 190, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	c := history[0]
	assert.Equal(t, int64(100), c.MarketPrice)
	assert.Equal(t, int64(100), c.MinPrice)
	assert.Equal(t, int64(5000), c.MaxPrice)
	assert.Equal(t, int64(18), c.Quantity)
	assert.True(t, f.now.Equal(c.Timestamp))

	origin, err := fingerprint.Compute([]byte(snapshot))
	require.NoError(t, err)
	assert.Equal(t, string(origin), c.Origin)

	item, err := f.catalog.GetItem(ctx, 191)
	require.NoError(t, err)
	assert.Equal(t, "serevite.jpg", item.Icon)
}

func TestImportCommodities_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	importer := f.importer(t)

	_, err := importer.ImportCommodities(ctx)
	require.NoError(t, err)

	f.upstream.Handle(commoditiesPath, reordered)
	sum, err := importer.ImportCommodities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Added)
	assert.Equal(t, 2, sum.Skipped)

	for _, id := range []int64{190, 191} {
		history, err := f.store.History(ctx, id, 10)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	}
	assert.Equal(t, 1, f.upstream.Hits("/data/wow/item/191"))
}

func TestImportCommodities_NewSnapshotAddsRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	importer := f.importer(t)

	_, err := importer.ImportCommodities(ctx)
	require.NoError(t, err)

	f.upstream.Handle(commoditiesPath, `{"auctions":[{"id":9,"item":{"id":190},"quantity":3,"unit_price":90}]}`)
	f.now = f.now.Add(time.Hour)
	sum, err := importer.ImportCommodities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Added)

	history, err := f.store.History(ctx, 190, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(90), history[0].MarketPrice)
}

func TestImportCommodities_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.upstream.Fail(commoditiesPath, http.StatusBadGateway)

	_, err := f.importer(t).ImportCommodities(context.Background())

	var importErr *auctionhouse.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, battlenet.KindFatal, battlenet.KindOf(err))
}

func TestImportCommodities_ArchivesSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	origin, err := fingerprint.Compute([]byte(snapshot))
	require.NoError(t, err)
	key := "commodities/" + string(origin) + ".json"

	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "snapshots", key, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}).Once()
	client.On("PutObject", mock.Anything, "snapshots", key, mock.Anything, int64(len(snapshot)), mock.Anything).
		Return(minio.UploadInfo{Key: key}, nil).Once()
	client.On("StatObject", mock.Anything, "snapshots", key, mock.Anything).
		Return(minio.ObjectInfo{Key: key}, nil)

	importer := f.importer(t, auctionhouse.WithArchive(storage.NewArchive(client, "snapshots", "commodities")))

	_, err = importer.ImportCommodities(ctx)
	require.NoError(t, err)
	_, err = importer.ImportCommodities(ctx)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "PutObject", 1)
	client.AssertExpectations(t)
}

func TestImportCommodities_ArchiveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)

	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("connection refused"))

	importer := f.importer(t, auctionhouse.WithArchive(storage.NewArchive(client, "snapshots", "commodities")))
	sum, err := importer.ImportCommodities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Added)
}
