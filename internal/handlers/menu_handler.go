package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles menu item HTTP requests
type MenuHandler struct {
	service *service.InventoryService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.InventoryService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenuItems handles GET /api/menu-items
// With ?available=true only items that can be made at least once are returned.
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	availableOnly, _ := strconv.ParseBool(r.URL.Query().Get("available"))
	WriteJSON(w, http.StatusOK, h.service.ListMenuItems(r.Context(), availableOnly), h.logger)
}

// GetMenuItem handles GET /api/menu-items/{menuItemId}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "menuItemId")
	if err != nil {
		h.logger.Warn("invalid menu item ID", "menuItemId", chi.URLParam(r, "menuItemId"))
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.logger)
}

// CreateMenuItem handles POST /api/menu-items
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItem
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("failed to decode menu item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.CreateMenuItem(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("menu item created", "menu_item_id", item.ID, "name", item.Name)
	WriteJSON(w, http.StatusCreated, item, h.logger)
}

// UpdateMenuItem handles PUT /api/menu-items/{menuItemId}
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "menuItemId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	var req models.MenuItem
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("failed to decode menu item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.UpdateMenuItem(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.logger)
}

// DeleteMenuItem handles DELETE /api/menu-items/{menuItemId}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "menuItemId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("menu item deleted", "menu_item_id", id)
	WriteNoContent(w)
}

// CheckAvailability handles GET /api/menu-items/{menuItemId}/availability?quantity=n
// quantity defaults to 1.
func (h *MenuHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "menuItemId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	quantity := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Quantity must be an integer", h.logger)
			return
		}
	}

	availability, err := h.service.CheckAvailability(r.Context(), id, quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, availability, h.logger)
}

func (h *MenuHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
	case errors.Is(err, service.ErrInvalidMenuItem), errors.Is(err, service.ErrUnknownSupply):
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.logger)
	default:
		h.logger.Error("menu item request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
