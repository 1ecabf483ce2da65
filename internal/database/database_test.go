package database_test

import (
	"path/filepath"
	"testing"

	"github.com/cafe-employee-api/internal/config"
	"github.com/cafe-employee-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "cafes.db"),
	}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db, cfg.Driver))
	// повторный запуск ничего не делает
	require.NoError(t, database.Migrate(db, cfg.Driver))

	assert.True(t, db.Migrator().HasTable("cafes"))
	assert.True(t, db.Migrator().HasTable("employees"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
