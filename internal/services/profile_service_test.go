package services

import (
	"testing"

	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileGetMissing(t *testing.T) {
	svc := NewProfileService(setupTestDB(t))

	profile, err := svc.Get(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfilePutGet(t *testing.T) {
	svc := NewProfileService(setupTestDB(t))
	userID := uuid.New()

	meds := "metformin"
	in := models.Profile{
		Age:                42,
		Gender:             "Female",
		Weight:             61.5,
		Height:             168,
		Goal:               "Weight Loss",
		ActivityLevel:      "High",
		DietaryPreferences: "Vegetarian",
		Medications:        &meds,
	}
	require.NoError(t, svc.Put(userID, &in))

	out, err := svc.Get(userID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 42, out.Age)
	assert.Equal(t, "Female", out.Gender)
	assert.Equal(t, 61.5, out.Weight)
	assert.Equal(t, 168.0, out.Height)
	assert.Equal(t, "Weight Loss", out.Goal)
	assert.Equal(t, "High", out.ActivityLevel)
	assert.Equal(t, "Vegetarian", out.DietaryPreferences)
	require.NotNil(t, out.Medications)
	assert.Equal(t, "metformin", *out.Medications)
}

func TestProfilePutReplacesWholeRow(t *testing.T) {
	svc := NewProfileService(setupTestDB(t))
	userID := uuid.New()

	meds := "metformin"
	require.NoError(t, svc.Put(userID, &models.Profile{
		Age: 42, Gender: "Female", Goal: "Weight Loss", Medications: &meds,
	}))

	// Second save omits medications and goal; both must revert to the
	// submitted (zero) values, not merge with the first save.
	require.NoError(t, svc.Put(userID, &models.Profile{Age: 43, Gender: "Female"}))

	out, err := svc.Get(userID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 43, out.Age)
	assert.Empty(t, out.Goal)
	assert.Nil(t, out.Medications)
}
