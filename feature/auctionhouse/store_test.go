package auctionhouse

import (
	"context"
	"regexp"
	"testing"
	"time"

	"wowsync/feature/auctionhouse/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_ItemsWithOrigin(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `item_id` FROM `commodities` WHERE origin = ?")).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow(190).AddRow(191))

	ids, err := store.ItemsWithOrigin(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []int64{190, 191}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateCommodity(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `commodities` (`item_id`,`origin`,`quantity`,`min_price`,`max_price`,`market_price`,`timestamp`)")).
		WithArgs(int64(190), "abc", int64(18), int64(100), int64(5000), int64(100), ts).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	c := &models.Commodity{ItemID: 190, Origin: "abc", Quantity: 18, MinPrice: 100, MaxPrice: 5000, MarketPrice: 100, Timestamp: ts}
	require.NoError(t, store.CreateCommodity(context.Background(), c))
	assert.Equal(t, int64(7), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateCommodity_DuplicateOrigin(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `commodities`")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.CreateCommodity(context.Background(), &models.Commodity{ItemID: 190, Origin: "abc"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
