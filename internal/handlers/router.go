package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Health *HealthHandler
	Supply *SupplyHandler
	Menu   *MenuHandler
	Cart   *CartHandler
	Sale   *SaleHandler
}

// Mount registers all routes on r
func (h Handlers) Mount(r chi.Router) {
	r.Get("/health", h.Health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/supplies", func(r chi.Router) {
			r.Get("/", h.Supply.ListSupplies)
			r.Post("/", h.Supply.CreateSupply)
			r.Get("/{supplyId}", h.Supply.GetSupply)
			r.Put("/{supplyId}", h.Supply.UpdateSupply)
			r.Delete("/{supplyId}", h.Supply.DeleteSupply)
		})

		r.Route("/menu-items", func(r chi.Router) {
			r.Get("/", h.Menu.ListMenuItems)
			r.Post("/", h.Menu.CreateMenuItem)
			r.Get("/{menuItemId}", h.Menu.GetMenuItem)
			r.Put("/{menuItemId}", h.Menu.UpdateMenuItem)
			r.Delete("/{menuItemId}", h.Menu.DeleteMenuItem)
			r.Get("/{menuItemId}/availability", h.Menu.CheckAvailability)
		})

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", h.Cart.OpenCart)
			r.Get("/{cartId}", h.Cart.GetCart)
			r.Delete("/{cartId}", h.Cart.AbandonCart)
			r.Post("/{cartId}/items", h.Cart.AddItem)
			r.Put("/{cartId}/items/{productId}", h.Cart.UpdateItem)
			r.Delete("/{cartId}/items/{productId}", h.Cart.RemoveItem)
			r.Post("/{cartId}/checkout", h.Cart.Checkout)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.Sale.ListSales)
			r.Get("/{saleId}", h.Sale.GetSale)
			r.Delete("/{saleId}", h.Sale.DeleteSale)
		})

		r.Get("/stats", h.Sale.GetStats)
	})
}
