package services

import (
	"fmt"
	"testing"

	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentWindowIsChronological(t *testing.T) {
	svc := NewChatService(setupTestDB(t))
	userID := uuid.New()

	for i := 1; i <= 25; i++ {
		role := models.RoleUser
		if i%2 == 0 {
			role = models.RoleAssistant
		}
		require.NoError(t, svc.Append(userID, role, fmt.Sprintf("message %d", i)))
	}

	messages, err := svc.Recent(userID, 20)
	require.NoError(t, err)
	require.Len(t, messages, 20)

	// Window is the newest 20, returned oldest-first.
	assert.Equal(t, "message 6", messages[0].Content)
	assert.Equal(t, "message 25", messages[19].Content)
	for i := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i+6), messages[i].Content)
	}
}

func TestRecentDefaultsLimit(t *testing.T) {
	svc := NewChatService(setupTestDB(t))
	userID := uuid.New()

	for i := 1; i <= 25; i++ {
		require.NoError(t, svc.Append(userID, models.RoleUser, fmt.Sprintf("m%d", i)))
	}

	messages, err := svc.Recent(userID, 0)
	require.NoError(t, err)
	assert.Len(t, messages, DefaultHistoryLimit)
}

func TestClearPurgesTranscript(t *testing.T) {
	svc := NewChatService(setupTestDB(t))
	userID := uuid.New()

	require.NoError(t, svc.Append(userID, models.RoleUser, "hello"))
	require.NoError(t, svc.Append(userID, models.RoleAssistant, "hi there"))

	require.NoError(t, svc.Clear(userID))

	messages, err := svc.Recent(userID, 20)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestClearIsScopedPerUser(t *testing.T) {
	svc := NewChatService(setupTestDB(t))
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, svc.Append(alice, models.RoleUser, "alice says"))
	require.NoError(t, svc.Append(bob, models.RoleUser, "bob says"))

	require.NoError(t, svc.Clear(alice))

	messages, err := svc.Recent(bob, 20)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "bob says", messages[0].Content)
}
