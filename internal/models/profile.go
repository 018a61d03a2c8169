package models

import "github.com/google/uuid"

// Profile is the 1:1 health profile consumed by plan generation. Saves are
// whole-row replacements; there is no partial patch.
type Profile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Age                int       `json:"age"`
	Gender             string    `gorm:"size:50" json:"gender"`
	Weight             float64   `json:"weight"`
	Height             float64   `json:"height"`
	Goal               string    `gorm:"size:255" json:"goal"`
	ActivityLevel      string    `gorm:"size:100" json:"activity_level"`
	DietaryPreferences string    `gorm:"size:255" json:"dietary_preferences"`
	Medications        *string   `gorm:"type:text" json:"medications"`
	HealthConditions   *string   `gorm:"type:text" json:"health_conditions"`
	Allergies          *string   `gorm:"type:text" json:"allergies"`
}

func (Profile) TableName() string { return "profiles" }

// DefaultProfile returns the placeholder profile created at signup.
func DefaultProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:             userID,
		Age:                25,
		Gender:             "Male",
		Weight:             70,
		Height:             175,
		Goal:               "General Fitness",
		ActivityLevel:      "Moderate",
		DietaryPreferences: "None",
	}
}
