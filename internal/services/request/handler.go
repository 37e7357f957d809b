package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// Handler serves the table request HTTP surface.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new request handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes returns the router mounted at /api/table-requests.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/pending", h.ListPending)
	r.Get("/table/{tableId}", h.ListByTable)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}/status", h.UpdateStatus)
	return r
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, requests, h.logger)
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListPending(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, requests, h.logger)
}

func (h *Handler) ListByTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(chi.URLParam(r, "tableId"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid table id", h.logger)
		return
	}
	requests, err := h.service.ListByTable(r.Context(), tableID)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, requests, h.logger)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid request id", h.logger)
		return
	}
	tr, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, tr, h.logger)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateTableRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	tr, err := h.service.Create(r.Context(), &req)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("table_request_created", requestID, "Table request created", map[string]interface{}{
		"request_id":   tr.ID,
		"table_id":     tr.TableID,
		"request_type": tr.RequestType,
	})
	api.WriteJSON(w, http.StatusCreated, tr, h.logger)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid request id", h.logger)
		return
	}

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	tr, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, tr, h.logger)
}
