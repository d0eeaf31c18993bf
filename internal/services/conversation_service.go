package services

import (
	"context"
	"strings"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/prediction"
)

// ConversationService exposes the conversation history API: list, create,
// inspect and delete a user's symptom-check threads.
type ConversationService struct {
	convRepo conversation.ConversationRepository
	logger   Logger
}

func NewConversationService(convRepo conversation.ConversationRepository, logger Logger) (*ConversationService, error) {
	if convRepo == nil {
		return nil, prediction.NewValidationError("constructor", "conversation repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &ConversationService{convRepo: convRepo, logger: logger}, nil
}

// GetUserConversations lists the user's conversations, newest first, with
// their full message logs.
func (s *ConversationService) GetUserConversations(ctx context.Context, userID uint) ([]domain.Conversation, error) {
	return s.convRepo.FindByUserID(ctx, userID)
}

// CreateConversation creates an empty conversation with an explicit title.
func (s *ConversationService) CreateConversation(ctx context.Context, userID uint, title string) (*domain.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, prediction.NewValidationError("create_conversation", "conversation title cannot be empty")
	}
	if len(title) > 255 {
		title = title[:255]
	}

	return s.convRepo.Create(ctx, &domain.Conversation{UserID: userID, Title: title})
}

// GetConversation loads one conversation with its ordered messages,
// enforcing ownership.
func (s *ConversationService) GetConversation(ctx context.Context, userID, convID uint) (*domain.Conversation, error) {
	return s.convRepo.FindWithMessages(ctx, convID, userID)
}

// DeleteConversation removes a conversation and cascades to its messages.
func (s *ConversationService) DeleteConversation(ctx context.Context, userID, convID uint) error {
	return s.convRepo.Delete(ctx, convID, userID)
}

// DeleteAllConversations wipes the user's whole history and reports how
// many conversations were removed.
func (s *ConversationService) DeleteAllConversations(ctx context.Context, userID uint) (int64, error) {
	deleted, err := s.convRepo.DeleteAllByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("deleted all conversations", "user_id", userID, "count", deleted)
	return deleted, nil
}
