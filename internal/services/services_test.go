package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database. The shared-cache
// DSN keeps the database alive across pooled connections for the test's
// lifetime.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.WorkoutPlan{},
		&models.MealPlan{},
		&models.ChatMessage{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}
