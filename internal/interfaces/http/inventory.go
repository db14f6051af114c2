package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stockroom/internal/domain/inventory"
	"stockroom/internal/domain/sales"
	"stockroom/internal/infrastructure/cache"
	"stockroom/internal/shared/apperr"
	"stockroom/internal/shared/middleware"
)

type InventoryHandler struct {
	service  *inventory.Service
	sales    sales.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewInventoryHandler(service *inventory.Service, salesRepo sales.Repository, c cache.Cache, cacheTTL time.Duration, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		sales:    salesRepo,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ItemRequest carries the add/edit form fields.
type ItemRequest struct {
	Name           string  `json:"name"`
	SKU            string  `json:"sku"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	EbayListingURL string  `json:"ebay_listing_url"`
}

func (r ItemRequest) params() inventory.ItemParams {
	return inventory.ItemParams{
		Name:           r.Name,
		SKU:            r.SKU,
		Quantity:       r.Quantity,
		Price:          r.Price,
		Category:       r.Category,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		EbayListingURL: r.EbayListingURL,
	}
}

// DashboardSummary extends the inventory aggregates with the all-time units
// sold, which comes off the sales log rather than the inventory table.
type DashboardSummary struct {
	inventory.Summary
	ItemsSold int `json:"itemsSold"`
}

type inventoryResponse struct {
	Items   []inventory.Item `json:"items"`
	Summary DashboardSummary `json:"summary"`
}

// HandleInventory routes /api/inventory by method.
func (h *InventoryHandler) HandleInventory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleInventoryByID routes /api/inventory/{id} by method.
func (h *InventoryHandler) HandleInventoryByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.handleUpdate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleList returns the caller's items plus dashboard aggregates. An optional
// ?q= term narrows the item list; the aggregates always cover the full
// inventory so the summary cards don't jump around while searching.
func (h *InventoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	items, err := h.listCached(r, userID)
	if err != nil {
		writeError(w, h.logger, apperr.RemoteRead("Failed to load inventory", err))
		return
	}

	summary := DashboardSummary{Summary: inventory.Summarize(items)}

	// Units sold comes from the sales log. If that read fails the dashboard
	// still renders, with the card at zero.
	if salesRows, err := h.sales.List(r.Context(), userID); err != nil {
		h.logger.Warn("failed to load sales for dashboard", zap.Error(err))
	} else {
		summary.ItemsSold = sales.Summarize(salesRows).ItemsSold
	}

	writeJSON(w, http.StatusOK, inventoryResponse{
		Items:   inventory.Filter(items, r.URL.Query().Get("q")),
		Summary: summary,
	})
}

func (h *InventoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("Invalid request body"))
		return
	}

	if err := h.service.Create(r.Context(), userID, req.params()); err != nil {
		writeError(w, h.logger, classifyItemError(err, "Failed to add item"))
		return
	}

	h.invalidate(r, userID)
	w.WriteHeader(http.StatusCreated)
}

func (h *InventoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	id := r.PathValue("id")
	if id == "" {
		writeError(w, h.logger, apperr.Validation("Item ID is required"))
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("Invalid request body"))
		return
	}

	if err := h.service.Update(r.Context(), userID, id, req.params()); err != nil {
		writeError(w, h.logger, classifyItemError(err, "Failed to update item"))
		return
	}

	h.invalidate(r, userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	id := r.PathValue("id")
	if id == "" {
		writeError(w, h.logger, apperr.Validation("Item ID is required"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, h.logger, classifyItemError(err, "Failed to delete item"))
		return
	}

	h.invalidate(r, userID)
	w.WriteHeader(http.StatusNoContent)
}

func classifyItemError(err error, writeMessage string) error {
	switch {
	case errors.Is(err, inventory.ErrNameRequired),
		errors.Is(err, inventory.ErrNegativeQty),
		errors.Is(err, inventory.ErrNegativePrice):
		return apperr.Validation(err.Error())
	case errors.Is(err, inventory.ErrItemNotFound):
		return apperr.NotFound("Item not found")
	default:
		return apperr.RemoteWrite(writeMessage, err)
	}
}

func inventoryCacheKey(userID string) string {
	return "inventory:" + userID
}

// listCached serves the item list out of the cache when possible. A cache
// failure of any sort falls through to the store.
func (h *InventoryHandler) listCached(r *http.Request, userID string) ([]inventory.Item, error) {
	key := inventoryCacheKey(userID)

	var cached []inventory.Item
	if err := cache.GetJSON(r.Context(), h.cache, key, &cached); err == nil {
		return cached, nil
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(r.Context(), h.cache, key, items, h.cacheTTL); err != nil {
		h.logger.Warn("failed to cache inventory list", zap.Error(err))
	}
	return items, nil
}

func (h *InventoryHandler) invalidate(r *http.Request, userID string) {
	if err := h.cache.Delete(r.Context(), inventoryCacheKey(userID)); err != nil {
		h.logger.Warn("failed to invalidate inventory cache", zap.Error(err))
	}
}
