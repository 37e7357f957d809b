package chatbot

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/logger"
)

// Handler serves POST /api/chatbot.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new chatbot handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes returns the router mounted at /api/chatbot.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Respond)
	return r
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	reply, err := h.service.Respond(r.Context(), req.Message)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, chatResponse{Response: reply}, h.logger)
}
