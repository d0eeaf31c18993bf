package conversation

import (
	"context"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// ConversationRepository handles conversation data operations.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error)
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*domain.Conversation, error)
	FindWithMessages(ctx context.Context, id, userID uint) (*domain.Conversation, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Conversation, error)
	Delete(ctx context.Context, convID, userID uint) error
	DeleteAllByUserID(ctx context.Context, userID uint) (int64, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}
