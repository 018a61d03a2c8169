package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the coach transcript. The autoincrement id is
// the recency order; created_at alone is not tie-safe within a second.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"-"`
}

func (ChatMessage) TableName() string { return "chat_history" }
