package prediction

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/message"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Conversation{}, &domain.Message{}))
	return db
}

func TestResolveAnonymousSkipsPersistence(t *testing.T) {
	repo := conversation.NewConversationRepository(setupTestDB(t))
	r := NewReconciler(repo, noopLogger{})

	conv, isNew := r.Resolve(context.Background(), 0, 0, "fever")
	assert.Nil(t, conv)
	assert.False(t, isNew)
}

func TestResolveCreatesConversationWithDerivedTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := conversation.NewConversationRepository(db)
	r := NewReconciler(repo, noopLogger{})

	text := strings.Repeat("x", 60)
	conv, isNew := r.Resolve(context.Background(), 1, 0, text)
	require.NotNil(t, conv)
	assert.True(t, isNew)
	assert.NotZero(t, conv.ID)
	assert.Equal(t, strings.Repeat("x", 50)+"...", conv.Title)
	assert.Equal(t, uint(1), conv.UserID)
}

func TestResolveEachRequestGetsOwnConversation(t *testing.T) {
	repo := conversation.NewConversationRepository(setupTestDB(t))
	r := NewReconciler(repo, noopLogger{})
	ctx := context.Background()

	first, _ := r.Resolve(ctx, 1, 0, "fever")
	second, _ := r.Resolve(ctx, 1, 0, "headache")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestResolveFindsExistingConversation(t *testing.T) {
	repo := conversation.NewConversationRepository(setupTestDB(t))
	r := NewReconciler(repo, noopLogger{})
	ctx := context.Background()

	created, isNew := r.Resolve(ctx, 1, 0, "fever")
	require.NotNil(t, created)
	require.True(t, isNew)

	found, isNew := r.Resolve(ctx, 1, created.ID, "still feverish")
	require.NotNil(t, found)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, found.ID)
}

func TestResolveLookupMissDegradesToUnbound(t *testing.T) {
	repo := conversation.NewConversationRepository(setupTestDB(t))
	r := NewReconciler(repo, noopLogger{})

	conv, isNew := r.Resolve(context.Background(), 1, 9999, "fever")
	assert.Nil(t, conv)
	assert.False(t, isNew)
}

func TestResolveDoesNotCrossUsers(t *testing.T) {
	repo := conversation.NewConversationRepository(setupTestDB(t))
	r := NewReconciler(repo, noopLogger{})
	ctx := context.Background()

	created, _ := r.Resolve(ctx, 1, 0, "fever")
	require.NotNil(t, created)

	conv, _ := r.Resolve(ctx, 2, created.ID, "fever")
	assert.Nil(t, conv)
}

// failingMessageRepo forces persistence errors for recorder tests.
type failingMessageRepo struct{}

func (failingMessageRepo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	return nil, assert.AnError
}
func (failingMessageRepo) FindByConversationID(ctx context.Context, convID uint) ([]domain.Message, error) {
	return nil, nil
}
func (failingMessageRepo) CountByConversationID(ctx context.Context, convID uint) (int64, error) {
	return 0, nil
}
func (failingMessageRepo) DeleteByConversationID(ctx context.Context, convID uint) error {
	return nil
}

var _ message.MessageRepository = failingMessageRepo{}
