package table

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// Handler serves the table directory HTTP surface.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new table handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes returns the router mounted at /api/tables.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/number/{number}", h.GetByNumber)
	return r
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.List(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, tables, h.logger)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid table id", h.logger)
		return
	}
	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, t, h.logger)
}

func (h *Handler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, t, h.logger)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Table
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	created, err := h.service.Create(r.Context(), &t)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusCreated, created, h.logger)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid table id", h.logger)
		return
	}
	var t models.Table
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	updated, err := h.service.Update(r.Context(), id, &t)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, updated, h.logger)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid table id", h.logger)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil, h.logger)
}
