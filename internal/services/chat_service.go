package services

import (
	"fmt"

	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultHistoryLimit bounds the transcript window returned to clients.
const DefaultHistoryLimit = 20

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) Append(userID uuid.UUID, role, content string) error {
	msg := models.ChatMessage{UserID: userID, Role: role, Content: content}
	if err := s.db.Create(&msg).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// Recent returns the newest `limit` messages in chronological order. Storage
// order is newest-first, so the window is fetched descending and reversed.
func (s *ChatService) Recent(userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	messages := make([]models.ChatMessage, 0, limit)
	err := s.db.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Clear hard-deletes the whole transcript for the user. Irreversible; any
// confirmation is the caller's concern.
func (s *ChatService) Clear(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error; err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
