// File: internal/handlers/conversation_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/middleware"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services"
)

type ConversationHandler struct {
	ConversationService *services.ConversationService
}

func NewConversationHandler(cs *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{ConversationService: cs}
}

// GetUserConversations lists the caller's conversations, newest first.
func (h *ConversationHandler) GetUserConversations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	conversations, err := h.ConversationService.GetUserConversations(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not retrieve conversations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

// CreateConversation creates an empty conversation with a caller-chosen title.
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	conv, err := h.ConversationService.CreateConversation(r.Context(), userID, req.Title)
	if err != nil {
		writeError(w, "Could not create conversation", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}

// GetConversation returns one conversation with its messages in order.
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	convID, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	conv, err := h.ConversationService.GetConversation(r.Context(), userID, convID)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve conversation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// DeleteConversation removes a conversation the caller owns.
func (h *ConversationHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	convID, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	if err := h.ConversationService.DeleteConversation(r.Context(), userID, convID); err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) ||
			errors.Is(err, conversation.ErrUnauthorizedAccess) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not delete conversation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllConversations wipes the caller's entire history.
func (h *ConversationHandler) DeleteAllConversations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	count, err := h.ConversationService.DeleteAllConversations(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not delete conversations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("Successfully deleted %d conversations.", count),
	})
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
