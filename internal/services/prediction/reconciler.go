package prediction

import (
	"context"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
)

// Reconciler resolves the conversation a prediction request belongs to:
// an existing one when the caller names it, a fresh one otherwise.
type Reconciler struct {
	convRepo conversation.ConversationRepository
	logger   Logger
}

func NewReconciler(convRepo conversation.ConversationRepository, logger Logger) *Reconciler {
	return &Reconciler{convRepo: convRepo, logger: logger}
}

// Resolve returns the bound conversation and whether it was just created.
//
// userID 0 is the anonymous path: nothing is looked up or created and the
// request proceeds without persistence. convID 0 means no identifier was
// supplied (invalid identifiers are coerced to 0 at the boundary) and a new
// conversation is created, titled from the message text. A supplied
// identifier is looked up filtered by owner; a miss is a recoverable local
// failure, not an error: the request simply proceeds unbound and no
// messages get recorded.
func (r *Reconciler) Resolve(ctx context.Context, userID, convID uint, text string) (*domain.Conversation, bool) {
	if userID == 0 {
		return nil, false
	}

	if convID == 0 {
		conv, err := r.convRepo.Create(ctx, &domain.Conversation{
			UserID: userID,
			Title:  domain.DeriveTitle(text),
		})
		if err != nil {
			r.logger.Warn("could not create conversation, continuing without persistence",
				"user_id", userID, "error", err)
			return nil, false
		}
		r.logger.Debug("created new conversation", "user_id", userID, "conversation_id", conv.ID)
		return conv, true
	}

	conv, err := r.convRepo.FindByIDAndUserID(ctx, convID, userID)
	if err != nil {
		r.logger.Warn("conversation lookup miss, continuing without persistence",
			"user_id", userID, "conversation_id", convID, "error", err)
		return nil, false
	}
	return conv, false
}
