package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

var ErrConversationNotFound = errors.New("conversation not found")
var ErrUnauthorizedAccess = errors.New("unauthorized access to conversation")

type gormConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

// Create stores a new conversation after validating its input.
func (r *gormConversationRepository) Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error) {
	if err := r.validateInput(conv); err != nil {
		log.Printf("[ConversationRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		log.Printf("[ConversationRepository] Database error during creation for user ID %d: %v", conv.UserID, err)
		return nil, errors.New("database error creating conversation")
	}

	return conv, nil
}

// FindByIDAndUserID resolves a conversation only when it belongs to the
// given user, so ownership checks never need a second query.
func (r *gormConversationRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*domain.Conversation, error) {
	if id == 0 || userID == 0 {
		return nil, errors.New("invalid conversation ID or user ID")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conv).Error
	return r.handleFindError(err, &conv, "FindByIDAndUserID")
}

// FindWithMessages loads a conversation and its full ordered message log.
func (r *gormConversationRepository) FindWithMessages(ctx context.Context, id, userID uint) (*domain.Conversation, error) {
	if id == 0 || userID == 0 {
		return nil, errors.New("invalid conversation ID or user ID")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conv).Error
	return r.handleFindError(err, &conv, "FindWithMessages")
}

// FindByUserID lists a user's conversations, newest first.
func (r *gormConversationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Conversation, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var convs []domain.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&convs).Error

	if err != nil {
		log.Printf("[ConversationRepository] Database error listing conversations for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching conversations")
	}

	return convs, nil
}

// Delete removes a conversation and its messages, enforcing ownership.
func (r *gormConversationRepository) Delete(ctx context.Context, convID, userID uint) error {
	if convID == 0 || userID == 0 {
		return errors.New("invalid conversation ID or user ID")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND user_id = ?", convID, userID).
			Delete(&domain.Conversation{})

		if result.Error != nil {
			log.Printf("[ConversationRepository] Database error deleting conversation ID %d for user ID %d: %v", convID, userID, result.Error)
			return errors.New("database error deleting conversation")
		}
		if result.RowsAffected == 0 {
			return ErrUnauthorizedAccess
		}

		if err := tx.Where("conversation_id = ?", convID).Delete(&domain.Message{}).Error; err != nil {
			log.Printf("[ConversationRepository] Database error deleting messages of conversation ID %d: %v", convID, err)
			return errors.New("database error deleting conversation messages")
		}
		return nil
	})
}

// DeleteAllByUserID removes every conversation owned by the user along with
// all of their messages, returning how many conversations were deleted.
func (r *gormConversationRepository) DeleteAllByUserID(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.New("invalid user ID")
	}

	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("conversation_id IN (?)",
				tx.Model(&domain.Conversation{}).Select("id").Where("user_id = ?", userID)).
			Delete(&domain.Message{}).Error; err != nil {
			return err
		}

		result := tx.Where("user_id = ?", userID).Delete(&domain.Conversation{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})

	if err != nil {
		log.Printf("[ConversationRepository] Database error in bulk delete for user ID %d: %v", userID, err)
		return 0, errors.New("database error deleting conversations")
	}

	return deleted, nil
}

// CountByUserID efficiently counts a user's conversations.
func (r *gormConversationRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.New("invalid user ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Conversation{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error counting conversations for user ID %d: %v", userID, err)
		return 0, errors.New("database error counting conversations")
	}

	return count, nil
}

func (r *gormConversationRepository) validateInput(conv *domain.Conversation) error {
	if conv == nil {
		return errors.New("conversation cannot be nil")
	}
	if conv.UserID == 0 {
		return errors.New("user ID is required")
	}
	if len(conv.Title) > 255 {
		return errors.New("title must be 255 characters or less")
	}
	return nil
}

// handleFindError maps lookup failures to sentinel errors without leaking
// database details.
func (r *gormConversationRepository) handleFindError(err error, conv *domain.Conversation, operation string) (*domain.Conversation, error) {
	if err == nil {
		return conv, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}

	log.Printf("[ConversationRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
