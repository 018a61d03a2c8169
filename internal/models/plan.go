package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkoutPlan and MealPlan are append-only history rows. The payload is
// stored opaquely; shape is the generation contract's responsibility.

type WorkoutPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Plan      datatypes.JSON `json:"plan"`
	CreatedAt time.Time      `json:"created_at"`
}

func (WorkoutPlan) TableName() string { return "workouts" }

type MealPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Plan      datatypes.JSON `json:"plan"`
	CreatedAt time.Time      `json:"created_at"`
}

func (MealPlan) TableName() string { return "meals" }
