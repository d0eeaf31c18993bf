package conversation

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Conversation{}, &domain.Message{}))
	return db
}

func seedConversation(t *testing.T, repo ConversationRepository, userID uint, title string) *domain.Conversation {
	t.Helper()
	conv, err := repo.Create(context.Background(), &domain.Conversation{UserID: userID, Title: title})
	require.NoError(t, err)
	return conv
}

func TestCreateConversation(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))

	conv := seedConversation(t, repo, 1, "fever and chills")
	assert.NotZero(t, conv.ID)

	t.Run("rejects nil", func(t *testing.T) {
		_, err := repo.Create(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := repo.Create(context.Background(), &domain.Conversation{Title: "x"})
		assert.Error(t, err)
	})
}

func TestFindByIDAndUserID(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	created := seedConversation(t, repo, 1, "fever")

	found, err := repo.FindByIDAndUserID(context.Background(), created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	t.Run("wrong owner", func(t *testing.T) {
		_, err := repo.FindByIDAndUserID(context.Background(), created.ID, 2)
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByIDAndUserID(context.Background(), 9999, 1)
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}

func TestFindWithMessagesOrdersAscending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	created := seedConversation(t, repo, 1, "fever")

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, db.Create(&domain.Message{ConversationID: created.ID, IsUser: true, Text: text}).Error)
	}

	found, err := repo.FindWithMessages(context.Background(), created.ID, 1)
	require.NoError(t, err)
	require.Len(t, found.Messages, 3)
	assert.Equal(t, "first", found.Messages[0].Text)
	assert.Equal(t, "third", found.Messages[2].Text)
}

func TestFindByUserIDNewestFirst(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	first := seedConversation(t, repo, 1, "first")
	second := seedConversation(t, repo, 1, "second")
	seedConversation(t, repo, 2, "someone else")

	convs, err := repo.FindByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, second.ID, convs[0].ID)
	assert.Equal(t, first.ID, convs[1].ID)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	created := seedConversation(t, repo, 1, "fever")
	require.NoError(t, db.Create(&domain.Message{ConversationID: created.ID, IsUser: true, Text: "hi"}).Error)

	err := repo.Delete(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, ErrUnauthorizedAccess)

	require.NoError(t, repo.Delete(context.Background(), created.ID, 1))

	_, err = repo.FindByIDAndUserID(context.Background(), created.ID, 1)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	var msgCount int64
	require.NoError(t, db.Model(&domain.Message{}).Where("conversation_id = ?", created.ID).Count(&msgCount).Error)
	assert.Zero(t, msgCount)
}

func TestDeleteAllByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	mine := seedConversation(t, repo, 1, "mine")
	seedConversation(t, repo, 1, "also mine")
	other := seedConversation(t, repo, 2, "not mine")
	require.NoError(t, db.Create(&domain.Message{ConversationID: mine.ID, IsUser: true, Text: "hi"}).Error)

	deleted, err := repo.DeleteAllByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.CountByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The other user's data is untouched.
	_, err = repo.FindByIDAndUserID(context.Background(), other.ID, 2)
	assert.NoError(t, err)
}
