package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	dsn := cfg.DBPath + "?_foreign_keys=on&_busy_timeout=5000"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite has a single writer; one connection avoids lock contention.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "path", cfg.DBPath)
	return nil
}

// Migrate runs AutoMigrate for all models. Additive only: the nullable
// medical columns on profiles arrived after launch and AutoMigrate adds
// them to existing databases without touching old rows.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.WorkoutPlan{},
		&models.MealPlan{},
		&models.ChatMessage{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
