package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-showcase/internal/config"
	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "database.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("database.db"))
	assert.Equal(t, "file:x.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:x.db?mode=rwc"))
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgres("postgresql://localhost/db"))
	assert.False(t, isPostgres("database.db"))
}

func TestNewDB_CreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDB(&config.Config{DBUrl: path, MaxOpenConns: 4, MaxIdleConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	for _, m := range []any{&models.Barber{}, &models.Hairstyle{}, &models.Example{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}

	// reopening an existing file is a no-op migration
	again, err := NewDB(&config.Config{DBUrl: path})
	require.NoError(t, err)
	require.NoError(t, Close(again))
}

func TestNewDB_ForeignKeysEnforced(t *testing.T) {
	db, err := NewDB(&config.Config{DBUrl: filepath.Join(t.TempDir(), "fk.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	missing := uint(42)
	err = db.Create(&models.Hairstyle{Name: "Fade", BarberID: &missing}).Error
	assert.Error(t, err)
}
