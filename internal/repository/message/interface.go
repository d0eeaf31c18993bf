package message

import (
	"context"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// MessageRepository handles message data operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	FindByConversationID(ctx context.Context, convID uint) ([]domain.Message, error)
	CountByConversationID(ctx context.Context, convID uint) (int64, error)
	DeleteByConversationID(ctx context.Context, convID uint) error
}
