package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/google/uuid"
)

func TestSalesService_AddToCart(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CartItemRequest
		wantErr error
	}{
		{
			name: "valid item",
			req:  models.CartItemRequest{ProductID: 1, Quantity: 2},
		},
		{
			name:    "zero quantity",
			req:     models.CartItemRequest{ProductID: 1, Quantity: 0},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			req:     models.CartItemRequest{ProductID: 1, Quantity: -1},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "unknown product",
			req:     models.CartItemRequest{ProductID: 99999, Quantity: 1},
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "more than stock allows",
			req:     models.CartItemRequest{ProductID: 1, Quantity: 251},
			wantErr: ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSalesService(newSeededLedger(t))
			ctx := context.Background()
			c := svc.OpenCart(ctx)

			got, err := svc.AddToCart(ctx, c.ID, tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddToCart() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("AddToCart() unexpected error = %v", err)
			}
			if len(got.Items) != 1 {
				t.Fatalf("AddToCart() items = %d, want 1", len(got.Items))
			}
			if got.Items[0].ProductName != "Signature Brew" || got.Total != 280 {
				t.Errorf("AddToCart() = %+v", got)
			}
		})
	}
}

func TestSalesService_AddToCartChecksMergedQuantity(t *testing.T) {
	svc := NewSalesService(newSeededLedger(t))
	ctx := context.Background()
	c := svc.OpenCart(ctx)

	if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 1, Quantity: 200}); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	_, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 1, Quantity: 51})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("AddToCart() error = %v, want InsufficientStockError", err)
	}
	if stockErr.ProductID != 1 {
		t.Errorf("ProductID = %d, want 1", stockErr.ProductID)
	}

	got, _ := svc.GetCart(ctx, c.ID)
	if got.Items[0].Quantity != 200 {
		t.Errorf("rejected add changed the cart: quantity = %d", got.Items[0].Quantity)
	}
}

func TestSalesService_UpdateAndRemove(t *testing.T) {
	svc := NewSalesService(newSeededLedger(t))
	ctx := context.Background()
	c := svc.OpenCart(ctx)

	if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 3, Quantity: 1}); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	got, err := svc.UpdateCartQuantity(ctx, c.ID, 3, 4)
	if err != nil {
		t.Fatalf("UpdateCartQuantity() error = %v", err)
	}
	if got.Total != 800 {
		t.Errorf("total = %v, want 800", got.Total)
	}

	if _, err := svc.UpdateCartQuantity(ctx, c.ID, 3, 201); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("UpdateCartQuantity() beyond stock error = %v, want ErrInsufficientStock", err)
	}
	if _, err := svc.UpdateCartQuantity(ctx, c.ID, 2, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("UpdateCartQuantity() missing line error = %v, want ErrCartItemNotFound", err)
	}

	got, err = svc.UpdateCartQuantity(ctx, c.ID, 3, 0)
	if err != nil {
		t.Fatalf("UpdateCartQuantity(0) error = %v", err)
	}
	if len(got.Items) != 1 {
		t.Errorf("quantity 0 should remove the line, items = %d", len(got.Items))
	}

	got, err = svc.RemoveFromCart(ctx, c.ID, 1)
	if err != nil {
		t.Fatalf("RemoveFromCart() error = %v", err)
	}
	if len(got.Items) != 0 || got.Total != 0 {
		t.Errorf("cart should be empty, got %+v", got)
	}
	if _, err := svc.RemoveFromCart(ctx, c.ID, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("RemoveFromCart() twice error = %v, want ErrCartItemNotFound", err)
	}
}

func TestSalesService_Checkout(t *testing.T) {
	l := newSeededLedger(t)
	svc := NewSalesService(l)
	ctx := context.Background()
	c := svc.OpenCart(ctx)

	if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 1, Quantity: 3}); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	sale, err := svc.Checkout(ctx, c.ID, "  Alex  ")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if sale.Total != 420 || sale.CustomerName != "Alex" {
		t.Errorf("Checkout() = %+v", sale)
	}

	coffee, _ := l.Supply(1)
	milk, _ := l.Supply(2)
	if coffee.Stock != 99.7 || milk.Stock != 49.4 {
		t.Errorf("stock after checkout = %v / %v, want 99.7 / 49.4", coffee.Stock, milk.Stock)
	}

	if _, err := svc.GetCart(ctx, c.ID); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("cart should be closed after checkout, error = %v", err)
	}
}

func TestSalesService_CheckoutRejections(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.CartItemRequest
		customer string
		prepare  func(t *testing.T, svc *SalesService, inv *InventoryService)
		wantErr  error
	}{
		{
			name:     "empty cart",
			customer: "Alex",
			wantErr:  ErrEmptyOrder,
		},
		{
			name:     "blank customer",
			items:    []models.CartItemRequest{{ProductID: 1, Quantity: 1}},
			customer: "   ",
			wantErr:  ErrBlankCustomer,
		},
		{
			name:     "aggregated demand exceeds stock",
			items:    []models.CartItemRequest{{ProductID: 3, Quantity: 150}, {ProductID: 4, Quantity: 100}},
			customer: "Alex",
			wantErr:  ErrInsufficientStock,
		},
		{
			name:     "stock dropped after adding",
			items:    []models.CartItemRequest{{ProductID: 1, Quantity: 5}},
			customer: "Alex",
			prepare: func(t *testing.T, svc *SalesService, inv *InventoryService) {
				if _, err := inv.UpdateSupply(context.Background(), 2, models.Supply{Name: "Milk", Stock: 0.5, Unit: "L"}); err != nil {
					t.Fatalf("UpdateSupply() error = %v", err)
				}
			},
			wantErr: ErrInsufficientStock,
		},
		{
			name:     "menu item deleted after adding",
			items:    []models.CartItemRequest{{ProductID: 2, Quantity: 1}},
			customer: "Alex",
			prepare: func(t *testing.T, svc *SalesService, inv *InventoryService) {
				if err := inv.DeleteMenuItem(context.Background(), 2); err != nil {
					t.Fatalf("DeleteMenuItem() error = %v", err)
				}
			},
			wantErr: ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newSeededLedger(t)
			svc := NewSalesService(l)
			inv := NewInventoryService(l)
			ctx := context.Background()
			c := svc.OpenCart(ctx)

			for _, item := range tt.items {
				if _, err := svc.AddToCart(ctx, c.ID, item); err != nil {
					t.Fatalf("AddToCart() error = %v", err)
				}
			}
			if tt.prepare != nil {
				tt.prepare(t, svc, inv)
			}
			before := l.Supplies()

			_, err := svc.Checkout(ctx, c.ID, tt.customer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Checkout() error = %v, wantErr %v", err, tt.wantErr)
			}

			if len(l.Sales()) != 0 {
				t.Error("rejected checkout recorded a sale")
			}
			after := l.Supplies()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("rejected checkout changed supply %d: %+v -> %+v", before[i].ID, before[i], after[i])
				}
			}
			if _, err := svc.GetCart(ctx, c.ID); err != nil {
				t.Error("rejected checkout should keep the cart open")
			}
		})
	}
}

func TestSalesService_CheckoutReportsShortfalls(t *testing.T) {
	svc := NewSalesService(newSeededLedger(t))
	ctx := context.Background()
	c := svc.OpenCart(ctx)

	_, _ = svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 3, Quantity: 150}) // 30 kg flour
	_, _ = svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 4, Quantity: 100}) // 15 kg flour

	_, err := svc.Checkout(ctx, c.ID, "Alex")
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Checkout() error = %v, want InsufficientStockError", err)
	}
	if len(stockErr.Shortfalls) != 1 {
		t.Fatalf("Shortfalls = %+v, want one entry", stockErr.Shortfalls)
	}
	sf := stockErr.Shortfalls[0]
	if sf.SupplyID != 4 || sf.Required != 45 || sf.Available != 40 {
		t.Errorf("Shortfall = %+v", sf)
	}
}

func TestSalesService_SequentialCheckoutsSeeFreshStock(t *testing.T) {
	l := newSeededLedger(t)
	svc := NewSalesService(l)
	inv := NewInventoryService(l)
	ctx := context.Background()

	if _, err := inv.UpdateSupply(ctx, 4, models.Supply{Name: "Flour", Stock: 0.3, Unit: "kg"}); err != nil {
		t.Fatalf("UpdateSupply() error = %v", err)
	}

	first := svc.OpenCart(ctx)
	second := svc.OpenCart(ctx)
	for _, c := range []*models.Cart{first, second} {
		if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 3, Quantity: 1}); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
	}

	if _, err := svc.Checkout(ctx, first.ID, "Ana"); err != nil {
		t.Fatalf("first Checkout() error = %v", err)
	}
	if _, err := svc.Checkout(ctx, second.ID, "Ben"); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("second Checkout() error = %v, want ErrInsufficientStock", err)
	}
}

func TestSalesService_CartNotFound(t *testing.T) {
	svc := NewSalesService(newSeededLedger(t))
	ctx := context.Background()
	missing := uuid.New()

	if _, err := svc.GetCart(ctx, missing); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("GetCart() error = %v", err)
	}
	if _, err := svc.AddToCart(ctx, missing, models.CartItemRequest{ProductID: 1, Quantity: 1}); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("AddToCart() error = %v", err)
	}
	if _, err := svc.Checkout(ctx, missing, "Alex"); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("Checkout() error = %v", err)
	}
	if err := svc.AbandonCart(ctx, missing); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("AbandonCart() error = %v", err)
	}
}

func TestSalesService_AbandonCart(t *testing.T) {
	l := newSeededLedger(t)
	svc := NewSalesService(l)
	ctx := context.Background()
	c := svc.OpenCart(ctx)
	_, _ = svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: 1, Quantity: 1})

	if err := svc.AbandonCart(ctx, c.ID); err != nil {
		t.Fatalf("AbandonCart() error = %v", err)
	}

	coffee, _ := l.Supply(1)
	if coffee.Stock != 100 {
		t.Errorf("abandoning a cart changed stock to %v", coffee.Stock)
	}
}

func TestSalesService_History(t *testing.T) {
	l := newSeededLedger(t)
	svc := NewSalesService(l)
	ctx := context.Background()

	checkout := func(customer string, productID int64) *models.Sale {
		c := svc.OpenCart(ctx)
		if _, err := svc.AddToCart(ctx, c.ID, models.CartItemRequest{ProductID: productID, Quantity: 1}); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
		sale, err := svc.Checkout(ctx, c.ID, customer)
		if err != nil {
			t.Fatalf("Checkout() error = %v", err)
		}
		return sale
	}

	a := checkout("Alex", 1)
	checkout("Jamie", 2)
	checkout("Alex", 3)

	if got := len(svc.ListSales(ctx, "")); got != 3 {
		t.Errorf("ListSales() = %d, want 3", got)
	}
	if got := len(svc.ListSales(ctx, "alex")); got != 2 {
		t.Errorf("ListSales(alex) = %d, want 2", got)
	}

	stats := svc.Stats(ctx)
	if stats.TotalSales != 3 || stats.TotalRevenue != 495 || stats.TodaySales != 3 {
		t.Errorf("Stats() = %+v", stats)
	}

	before := l.Supplies()
	if err := svc.DeleteSale(ctx, a.ID); err != nil {
		t.Fatalf("DeleteSale() error = %v", err)
	}
	if err := svc.DeleteSale(ctx, a.ID); !errors.Is(err, ErrSaleNotFound) {
		t.Errorf("DeleteSale() twice error = %v, want ErrSaleNotFound", err)
	}
	if _, err := svc.GetSale(ctx, a.ID); !errors.Is(err, ErrSaleNotFound) {
		t.Errorf("GetSale() after delete error = %v", err)
	}

	after := l.Supplies()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("deleting a sale restocked supply %d", before[i].ID)
		}
	}
}
