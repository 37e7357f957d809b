package menu

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/api"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// Handler serves the menu catalog HTTP surface.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// CategoryRoutes returns the router mounted at /api/categories.
func (h *Handler) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCategories)
	r.Post("/", h.CreateCategory)
	r.Put("/{id}", h.UpdateCategory)
	r.Delete("/{id}", h.DeleteCategory)
	return r
}

// ProductRoutes returns the router mounted at /api/products.
func (h *Handler) ProductRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListProducts)
	r.Post("/", h.CreateProduct)
	r.Get("/available", h.ListAvailableProducts)
	r.Get("/category/{categoryId}", h.ListProductsByCategory)
	r.Get("/{id}", h.GetProduct)
	r.Put("/{id}", h.UpdateProduct)
	r.Delete("/{id}", h.DeleteProduct)
	return r
}

func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, categories, h.logger)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	created, err := h.service.CreateCategory(r.Context(), &c)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusCreated, created, h.logger)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid category id", h.logger)
		return
	}
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	updated, err := h.service.UpdateCategory(r.Context(), id, &c)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, updated, h.logger)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid category id", h.logger)
		return
	}
	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil, h.logger)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, products, h.logger)
}

func (h *Handler) ListAvailableProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAvailableProducts(r.Context())
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, products, h.logger)
}

func (h *Handler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseID(r, "categoryId")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid category id", h.logger)
		return
	}
	products, err := h.service.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, products, h.logger)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}
	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, product, h.logger)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	created, err := h.service.CreateProduct(r.Context(), &p)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusCreated, created, h.logger)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	updated, err := h.service.UpdateProduct(r.Context(), id, &p)
	if err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, updated, h.logger)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		api.WriteServiceError(w, err, h.logger)
		return
	}
	api.WriteJSON(w, http.StatusNoContent, nil, h.logger)
}
