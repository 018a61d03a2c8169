package services

import (
	"errors"
	"fmt"

	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns nil without error when no row exists; absence means "use
// placeholder defaults", not failure.
func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// Put replaces the whole row in one upsert. Fields absent from the request
// arrive zero-valued and overwrite prior state; there is no merge.
func (s *ProfileService) Put(userID uuid.UUID, profile *models.Profile) error {
	profile.UserID = userID
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
