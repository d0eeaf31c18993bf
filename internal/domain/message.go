package domain

import (
	"encoding/json"
	"time"
)

// Message is a single turn inside a conversation. Messages are immutable
// once created and ordered by creation time within their conversation.
type Message struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ConversationID uint      `json:"conversation_id" gorm:"not null;index"`
	IsUser         bool      `json:"is_user" gorm:"not null;default:true"`
	Text           string    `json:"text" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

// Role reports the speaker of the message as the API exposes it.
func (m *Message) Role() string {
	if m.IsUser {
		return "user"
	}
	return "ai"
}

// MarshalJSON adds the derived role field next to the stored columns so API
// clients never have to interpret is_user themselves.
func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	return json.Marshal(struct {
		alias
		Role string `json:"role"`
	}{alias(m), m.Role()})
}
