package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// Handler serves the order ledger HTTP surface.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Routes returns the router mounted at /api/orders.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Get("/table/{tableId}", h.ListByTable)
	r.Put("/{id}/status", h.UpdateStatus)
	return r
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, orders, h.logger)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid order id", h.logger)
		return
	}
	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, order, h.logger)
}

func (h *Handler) ListByTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(chi.URLParam(r, "tableId"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid table id", h.logger)
		return
	}
	orders, err := h.service.ListByTable(r.Context(), tableID)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, orders, h.logger)
}

// Create handles POST /api/orders. An unresolvable table is a client
// error here, same as missing items or prices.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) || errors.Is(err, models.ErrNotFound) {
			h.logger.Error("order_rejected", requestID, "Order creation rejected", err, map[string]interface{}{
				"table_id": req.TableID,
			})
			api.WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		h.logger.Error("order_creation_failed", requestID, "Failed to create order", err, nil)
		api.WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	h.logger.Info("order_created", requestID, "Order created", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"table_id":     order.TableID,
		"total_amount": order.TotalAmount.String(),
	})
	api.WriteJSON(w, http.StatusCreated, order, h.logger)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid order id", h.logger)
		return
	}

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("order_status_updated", requestID, "Order status updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})
	api.WriteJSON(w, http.StatusOK, order, h.logger)
}
