package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"leetcode-assistant/models"

	"github.com/gorilla/mux"
)

// ChatExchanger runs one exchange with the model capability.
type ChatExchanger interface {
	Exchange(ctx context.Context, userMessage, problemURL string) (*models.ExchangeResult, error)
}

type ChatHandler struct {
	service ChatExchanger
}

func NewChatHandler(service ChatExchanger) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.Chat).Methods("POST")
	router.HandleFunc("/", h.Liveness).Methods("GET")
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload", "")
		return
	}

	if strings.TrimSpace(req.UserMessage) == "" {
		log.Printf("[ERROR] No user message provided in chat request")
		h.writeErrorResponse(w, http.StatusBadRequest, "A user message is required", "")
		return
	}

	result, err := h.service.Exchange(r.Context(), req.UserMessage, req.LeetcodeURL)
	if err != nil {
		log.Printf("[ERROR] Chat exchange failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError,
			"An error occurred while processing your request.", err.Error())
		return
	}

	log.Printf("[INFO] Chat exchange completed successfully")
	h.writeJSONResponse(w, http.StatusOK, models.ChatResponse{
		Response:   result.DisplayText,
		AIResponse: result.RawText,
	})
}

func (h *ChatHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("LeetCode Assistant Backend is running."))
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(models.ChatErrorResponse{
		Error:   message,
		Details: details,
	})
}
