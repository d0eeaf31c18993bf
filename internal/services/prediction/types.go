package prediction

import (
	"net/http"
	"strconv"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// Envelope statuses. Every response leaving the pipeline carries exactly one.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Client-facing messages. Internal failure details are logged, never sent.
const (
	NoMatchMessage      = "No matching conditions found. Please provide more details about your symptoms."
	NoSymptomsMessage   = "No symptoms provided in the request"
	GenericErrorMessage = "An error occurred while processing your request"
)

// MatchResult pairs a catalog record with the confidence of the match.
// It is transient: it is serialized into envelopes and message logs but
// never persisted on its own.
type MatchResult struct {
	domain.DiseaseRecord
	Confidence float64 `json:"confidence"`
}

// Data is the success payload. The classifier path fills Predictions with
// the ranked matches; the heuristic path fills Disease with its single best
// match. Exactly one of the two is set.
type Data struct {
	Predictions    []MatchResult `json:"predictions,omitempty"`
	Disease        *MatchResult  `json:"disease,omitempty"`
	ConversationID *string       `json:"conversation_id"`
}

// Envelope is the normalized response shape for the prediction endpoint.
type Envelope struct {
	Status            string  `json:"status"`
	Data              *Data   `json:"data,omitempty"`
	Message           string  `json:"message,omitempty"`
	ConversationID    *string `json:"conversation_id"`
	IsNewConversation bool    `json:"is_new_conversation"`

	// HTTPStatus is the transport status the envelope should be sent with.
	HTTPStatus int `json:"-"`
}

// SuccessEnvelope builds a success response around a filled Data payload.
func SuccessEnvelope(data *Data, conv *domain.Conversation, isNew bool) *Envelope {
	id := conversationIDString(conv)
	data.ConversationID = id
	return &Envelope{
		Status:            StatusSuccess,
		Data:              data,
		ConversationID:    id,
		IsNewConversation: isNew,
		HTTPStatus:        http.StatusOK,
	}
}

// NotFoundEnvelope builds the zero-matches response with its guidance text.
func NotFoundEnvelope(conv *domain.Conversation, isNew bool) *Envelope {
	return &Envelope{
		Status:            StatusNotFound,
		Message:           NoMatchMessage,
		ConversationID:    conversationIDString(conv),
		IsNewConversation: isNew,
		HTTPStatus:        http.StatusOK,
	}
}

// ErrorEnvelope builds an error response carrying only a client-safe message.
func ErrorEnvelope(message string, httpStatus int) *Envelope {
	return &Envelope{
		Status:     StatusError,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func conversationIDString(conv *domain.Conversation) *string {
	if conv == nil {
		return nil
	}
	id := strconv.FormatUint(uint64(conv.ID), 10)
	return &id
}

// Logger is the minimal logging surface this package needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
