package checks

import (
	"testing"

	"wowsync/core/database"
	guildmodels "wowsync/feature/guild/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &guildmodels.Guild{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.AutoMigrate(&guildmodels.Guild{}))

	report, err := CheckSchema(db, &guildmodels.Guild{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["guilds"].Status)
	assert.Empty(t, report.Tables["guilds"].MissingColumns)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db := setupDB(t)

	report, err := CheckSchema(db, &guildmodels.Guild{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.False(t, report.Tables["guilds"].Exists)
	assert.Equal(t, "missing", report.Tables["guilds"].Status)
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("CREATE TABLE guilds (id integer PRIMARY KEY, name text)").Error)

	report, err := CheckSchema(db, &guildmodels.Guild{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["guilds"]
	assert.True(t, tbl.Exists)
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "slug")
	assert.Contains(t, tbl.MissingColumns, "realm")
	assert.NotContains(t, tbl.MissingColumns, "name")
}
