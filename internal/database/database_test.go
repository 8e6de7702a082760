package database

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/models"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, RunMigrations(db, Migrations()))
	require.NoError(t, HealthCheck(context.Background(), db))

	for _, table := range []string{"users", "verification_tokens", "categories", "restaurants", "reservations", "reviews", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	category := models.Category{CategoryName: "和食"}
	require.NoError(t, db.Create(&category).Error)
	assert.NotZero(t, category.ID)

	user := models.User{Name: "山田", Furigana: "ヤマダ", Email: "a@example.com", Password: "x", Role: models.RoleGeneral}
	require.NoError(t, db.Create(&user).Error)
	restaurant := models.Restaurant{Name: "店", Description: "d", LowestPrice: 1000, HighestPrice: 2000, PostalCode: "4600002", Address: "a", PhoneNumber: "0", OpeningTime: "11:00", ClosingTime: "22:00"}
	require.NoError(t, db.Create(&restaurant).Error)

	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, RestaurantID: restaurant.ID}).Error)
	err = db.Create(&models.Favorite{UserID: user.ID, RestaurantID: restaurant.ID}).Error
	assert.Error(t, err, "favorite pair must be unique")

	reservation := models.Reservation{
		RestaurantID:    restaurant.ID,
		UserID:          user.ID,
		ReservationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		ReservationTime: "18:00",
		NumberOfPeople:  2,
	}
	require.NoError(t, db.Create(&reservation).Error)
}

func TestMigrationsBundleInitScript(t *testing.T) {
	content, err := fs.ReadFile(Migrations(), "001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS categories")
	assert.Contains(t, string(content), "idx_favorites_user_restaurant")

	rollback, err := fs.ReadFile(Migrations(), "001_init_rollback.sql")
	require.NoError(t, err)
	assert.Contains(t, string(rollback), "DROP TABLE IF EXISTS categories")
}

func TestRunMigrationsSQLiteIgnoresFiles(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "empty.db")}
	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	// sqlite never reads the SQL files
	require.NoError(t, RunMigrations(db, fstest.MapFS{}))
	assert.True(t, db.Migrator().HasTable("categories"))
}

func TestRedisConfigured(t *testing.T) {
	assert.False(t, RedisConfigured(&config.Config{}))
	assert.True(t, RedisConfigured(&config.Config{RedisURL: "redis://localhost:6379"}))
	assert.True(t, RedisConfigured(&config.Config{RedisHost: "localhost"}))
}
