package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string
}

var memoryConfig = Config{Driver: "sqlite", Name: ":memory:"}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "wowsync",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(memoryConfig)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(memoryConfig)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	w := widget{ID: 7, Name: "first"}
	created, err := GetOrCreate(ctx, db, w.ID, &w)
	require.NoError(t, err)
	assert.True(t, created)

	// Second call returns the stored row, not the new values
	again := widget{ID: 7, Name: "second"}
	created, err = GetOrCreate(ctx, db, again.ID, &again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "first", again.Name)

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetAndIDs(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(memoryConfig)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	for _, w := range []widget{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}} {
		require.NoError(t, db.Create(&w).Error)
	}

	got, err := Get[widget](ctx, db, 3)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Name)

	_, err = Get[widget](ctx, db, 99)
	assert.True(t, errors.Is(err, ErrNotFound))

	ids, err := IDs(ctx, db, &widget{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
}
