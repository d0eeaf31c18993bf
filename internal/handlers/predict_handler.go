// File: internal/handlers/predict_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/middleware"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/prediction"
)

type PredictHandler struct {
	PredictionService *services.PredictionService
}

func NewPredictHandler(ps *services.PredictionService) *PredictHandler {
	return &PredictHandler{PredictionService: ps}
}

// predictRequest accepts both field names the clients send. ConversationID
// is raw because callers send it as a JSON string or a JSON number.
type predictRequest struct {
	Message        string          `json:"message"`
	Symptoms       string          `json:"symptoms"`
	ConversationID json.RawMessage `json:"conversation_id"`
}

// HandlePredict runs the symptom text through the prediction pipeline and
// writes the resulting envelope at its transport status.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		env := prediction.ErrorEnvelope("Invalid JSON data in request", http.StatusBadRequest)
		writeJSON(w, env.HTTPStatus, env)
		return
	}

	text := req.Message
	if text == "" {
		text = req.Symptoms
	}

	userID := middleware.UserIDFromContext(r.Context())
	convID := parseConversationID(req.ConversationID)

	env := h.PredictionService.Predict(r.Context(), userID, convID, text)
	writeJSON(w, env.HTTPStatus, env)
}

// parseConversationID tolerates string and numeric encodings. Anything it
// cannot parse means "no conversation supplied".
func parseConversationID(raw json.RawMessage) uint {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	s = strings.Trim(s, `"`)
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
