package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/service"
	"github.com/go-chi/chi/v5"
)

// SupplyHandler handles supply-related HTTP requests
type SupplyHandler struct {
	service *service.InventoryService
	logger  *slog.Logger
}

// NewSupplyHandler creates a new supply handler
func NewSupplyHandler(service *service.InventoryService, logger *slog.Logger) *SupplyHandler {
	return &SupplyHandler{
		service: service,
		logger:  logger,
	}
}

// supplyResponse adds the stock status shown next to each supply
type supplyResponse struct {
	models.Supply
	Status models.StockStatus `json:"status"`
}

func newSupplyResponse(s models.Supply) supplyResponse {
	return supplyResponse{Supply: s, Status: models.StatusFor(s.Stock)}
}

// ListSupplies handles GET /api/supplies
func (h *SupplyHandler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	supplies := h.service.ListSupplies(r.Context())

	response := make([]supplyResponse, len(supplies))
	for i, s := range supplies {
		response[i] = newSupplyResponse(s)
	}
	WriteJSON(w, http.StatusOK, response, h.logger)
}

// GetSupply handles GET /api/supplies/{supplyId}
func (h *SupplyHandler) GetSupply(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "supplyId")
	if err != nil {
		h.logger.Warn("invalid supply ID", "supplyId", chi.URLParam(r, "supplyId"))
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	supply, err := h.service.GetSupply(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newSupplyResponse(*supply), h.logger)
}

// CreateSupply handles POST /api/supplies
func (h *SupplyHandler) CreateSupply(w http.ResponseWriter, r *http.Request) {
	var req models.Supply
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("failed to decode supply", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	supply, err := h.service.CreateSupply(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("supply created", "supply_id", supply.ID, "name", supply.Name)
	WriteJSON(w, http.StatusCreated, newSupplyResponse(*supply), h.logger)
}

// UpdateSupply handles PUT /api/supplies/{supplyId}
func (h *SupplyHandler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "supplyId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	var req models.Supply
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("failed to decode supply", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	supply, err := h.service.UpdateSupply(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newSupplyResponse(*supply), h.logger)
}

// DeleteSupply handles DELETE /api/supplies/{supplyId}
func (h *SupplyHandler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "supplyId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.service.DeleteSupply(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("supply deleted", "supply_id", id)
	WriteNoContent(w)
}

func (h *SupplyHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSupplyNotFound):
		WriteError(w, http.StatusNotFound, "Supply not found", h.logger)
	case errors.Is(err, service.ErrInvalidSupply):
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
	default:
		h.logger.Error("supply request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
