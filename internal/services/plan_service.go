package services

import (
	"errors"
	"fmt"

	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanService is the append-only history store for generated workout and
// meal plans. Payloads are opaque JSON; prior rows are retained but never
// surfaced, only the most recent one.
type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

func (s *PlanService) AppendWorkout(userID uuid.UUID, plan datatypes.JSON) error {
	if err := s.db.Create(&models.WorkoutPlan{UserID: userID, Plan: plan}).Error; err != nil {
		return fmt.Errorf("failed to save workout plan: %w", err)
	}
	return nil
}

// LatestWorkout returns nil without error when the user has no plans yet.
func (s *PlanService) LatestWorkout(userID uuid.UUID) (datatypes.JSON, error) {
	var workout models.WorkoutPlan
	err := s.db.Where("user_id = ?", userID).Order("id DESC").First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workout plan: %w", err)
	}
	return workout.Plan, nil
}

func (s *PlanService) AppendMeal(userID uuid.UUID, plan datatypes.JSON) error {
	if err := s.db.Create(&models.MealPlan{UserID: userID, Plan: plan}).Error; err != nil {
		return fmt.Errorf("failed to save meal plan: %w", err)
	}
	return nil
}

func (s *PlanService) LatestMeal(userID uuid.UUID) (datatypes.JSON, error) {
	var meal models.MealPlan
	err := s.db.Where("user_id = ?", userID).Order("id DESC").First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal plan: %w", err)
	}
	return meal.Plan, nil
}
