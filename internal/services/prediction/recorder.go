package prediction

import (
	"context"
	"encoding/json"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/message"
)

// Recorder appends the user and assistant turns of one exchange to the
// resolved conversation's message log.
type Recorder struct {
	messageRepo message.MessageRepository
	logger      Logger
}

func NewRecorder(messageRepo message.MessageRepository, logger Logger) *Recorder {
	return &Recorder{messageRepo: messageRepo, logger: logger}
}

// Record stores the user message first, then the assistant reply. A nil
// conversation is a silent no-op (anonymous or unbound requests). Recording
// never fails the request: persistence errors are logged and swallowed so
// the classification response still reaches the client.
func (r *Recorder) Record(ctx context.Context, conv *domain.Conversation, userText string, envelope *Envelope) {
	if conv == nil {
		return
	}

	if _, err := r.messageRepo.Create(ctx, &domain.Message{
		ConversationID: conv.ID,
		IsUser:         true,
		Text:           userText,
	}); err != nil {
		r.logger.Error("could not save user message",
			"conversation_id", conv.ID, "error", err)
		return
	}

	if _, err := r.messageRepo.Create(ctx, &domain.Message{
		ConversationID: conv.ID,
		IsUser:         false,
		Text:           assistantText(envelope),
	}); err != nil {
		r.logger.Error("could not save assistant message",
			"conversation_id", conv.ID, "error", err)
	}
}

// assistantText serializes the assistant turn: the structured payload for
// successful matches, the guidance message otherwise.
func assistantText(envelope *Envelope) string {
	if envelope.Data != nil {
		if raw, err := json.Marshal(envelope.Data); err == nil {
			return string(raw)
		}
	}
	return envelope.Message
}
