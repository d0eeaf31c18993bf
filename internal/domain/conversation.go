package domain

import "time"

// titleMaxLen is the number of characters of the first message kept as the
// conversation title before the ellipsis is appended.
const titleMaxLen = 50

// Conversation represents a single symptom-check thread owned by one user.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// DeriveTitle builds a conversation title from the first message of a
// session: the first 50 characters, with "..." appended when truncated.
// The title is set once at creation and never recomputed.
func DeriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) > titleMaxLen {
		return string(runes[:titleMaxLen]) + "..."
	}
	return message
}
