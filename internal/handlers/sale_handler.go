package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/service"
)

// SaleHandler serves the sales history and dashboard statistics
type SaleHandler struct {
	service *service.SalesService
	log     *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service *service.SalesService, log *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		log:     log,
	}
}

// ListSales handles GET /api/sales[?customer=name]
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales := h.service.ListSales(r.Context(), r.URL.Query().Get("customer"))
	WriteJSON(w, http.StatusOK, sales, h.log)
}

// GetSale handles GET /api/sales/{saleId}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "saleId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	sale, err := h.service.GetSale(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, sale, h.log)
}

// DeleteSale handles DELETE /api/sales/{saleId}
// Supplies consumed by the sale are not restocked.
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "saleId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	if err := h.service.DeleteSale(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.log.Info("sale deleted", "sale_id", id)
	WriteNoContent(w)
}

// GetStats handles GET /api/stats
func (h *SaleHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Stats(r.Context()), h.log)
}

func (h *SaleHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSaleNotFound):
		WriteError(w, http.StatusNotFound, "Sale not found", h.log)
	default:
		h.log.Error("sale request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
