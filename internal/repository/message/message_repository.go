package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create appends a message to its conversation. Messages are immutable once
// stored, so this is the only write path.
func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if err := r.validateInput(msg); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		log.Printf("[MessageRepository] Database error during message creation for conversation ID %d: %v", msg.ConversationID, err)
		return nil, errors.New("database error creating message")
	}

	return msg, nil
}

// FindByConversationID returns the full message log, oldest first.
func (r *gormMessageRepository) FindByConversationID(ctx context.Context, convID uint) ([]domain.Message, error) {
	if convID == 0 {
		return nil, errors.New("invalid conversation ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error

	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for conversation ID %d: %v", convID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// CountByConversationID efficiently counts the turns in a conversation.
func (r *gormMessageRepository) CountByConversationID(ctx context.Context, convID uint) (int64, error) {
	if convID == 0 {
		return 0, errors.New("invalid conversation ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("conversation_id = ?", convID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for conversation ID %d: %v", convID, err)
		return 0, errors.New("database error counting messages")
	}

	return count, nil
}

// DeleteByConversationID performs a bulk deletion of all messages belonging
// to the given conversation.
func (r *gormMessageRepository) DeleteByConversationID(ctx context.Context, convID uint) error {
	if convID == 0 {
		return errors.New("invalid conversation ID")
	}

	result := r.db.WithContext(ctx).Where("conversation_id = ?", convID).Delete(&domain.Message{})
	if result.Error != nil {
		log.Printf("[MessageRepository] Database error deleting messages for conversation ID %d: %v", convID, result.Error)
		return errors.New("database error deleting messages by conversation ID")
	}

	return nil
}

func (r *gormMessageRepository) validateInput(msg *domain.Message) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}
	if msg.ConversationID == 0 {
		return errors.New("conversation ID is required")
	}
	if strings.TrimSpace(msg.Text) == "" {
		return errors.New("message text cannot be empty")
	}
	return nil
}
