package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/ledger"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/service"
)

// CartHandler handles cart sessions and checkout
type CartHandler struct {
	service *service.SalesService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.SalesService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// stockErrorResponse is returned with 409 when stock cannot cover a request
type stockErrorResponse struct {
	Error      string             `json:"error"`
	ProductID  int64              `json:"productId,omitempty"`
	Shortfalls []ledger.Shortfall `json:"shortfalls,omitempty"`
}

// OpenCart handles POST /api/carts
func (h *CartHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	c := h.service.OpenCart(r.Context())
	WriteJSON(w, http.StatusCreated, c, h.log)
}

// GetCart handles GET /api/carts/{cartId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}

	c, err := h.service.GetCart(r.Context(), cartID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, c, h.log)
}

// AbandonCart handles DELETE /api/carts/{cartId}
func (h *CartHandler) AbandonCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}

	if err := h.service.AbandonCart(r.Context(), cartID); err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteNoContent(w)
}

// AddItem handles POST /api/carts/{cartId}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}

	var req models.CartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode cart item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	c, err := h.service.AddToCart(r.Context(), cartID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, c, h.log)
}

// UpdateItem handles PUT /api/carts/{cartId}/items/{productId}
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}
	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req models.CartQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode cart quantity", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	c, err := h.service.UpdateCartQuantity(r.Context(), cartID, productID, req.Quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, c, h.log)
}

// RemoveItem handles DELETE /api/carts/{cartId}/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}
	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	c, err := h.service.RemoveFromCart(r.Context(), cartID, productID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, c, h.log)
}

// Checkout handles POST /api/carts/{cartId}/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseCartID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cart ID", h.log)
		return
	}

	var req models.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sale, err := h.service.Checkout(r.Context(), cartID, req.CustomerName)
	if err != nil {
		h.log.Warn("checkout rejected", "cart_id", cartID, "error", err)
		h.writeServiceError(w, err)
		return
	}

	h.log.Info("sale recorded", "sale_id", sale.ID, "items_count", len(sale.Items), "total", sale.Total)
	WriteJSON(w, http.StatusCreated, sale, h.log)
}

func (h *CartHandler) writeServiceError(w http.ResponseWriter, err error) {
	var stockErr *service.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		WriteJSON(w, http.StatusConflict, stockErrorResponse{
			Error:      "Insufficient stock",
			ProductID:  stockErr.ProductID,
			Shortfalls: stockErr.Shortfalls,
		}, h.log)
	case errors.Is(err, service.ErrCartNotFound):
		WriteError(w, http.StatusNotFound, "Cart not found", h.log)
	case errors.Is(err, service.ErrCartItemNotFound):
		WriteError(w, http.StatusNotFound, "Product is not in the cart", h.log)
	case errors.Is(err, service.ErrEmptyOrder):
		WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
	case errors.Is(err, service.ErrBlankCustomer):
		WriteError(w, http.StatusBadRequest, "Customer name is required", h.log)
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	default:
		h.log.Error("cart request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
