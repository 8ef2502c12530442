package handlers

import (
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
)

func TestListSupplies(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/supplies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var supplies []supplyResponse
	decodeBody(t, w, &supplies)

	if len(supplies) != 4 {
		t.Fatalf("expected 4 supplies, got %d", len(supplies))
	}
	if supplies[0].Name != "Coffee Beans" || supplies[0].Status != models.StockIn {
		t.Errorf("unexpected first supply: %+v", supplies[0])
	}
}

func TestGetSupply(t *testing.T) {
	r, _ := newTestRouter(t)

	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{"found", "/api/supplies/2", http.StatusOK, ""},
		{"not found", "/api/supplies/999", http.StatusNotFound, "Supply not found"},
		{"letters", "/api/supplies/abc", http.StatusBadRequest, "Invalid ID supplied"},
		{"float", "/api/supplies/1.5", http.StatusBadRequest, "Invalid ID supplied"},
		{"negative", "/api/supplies/-3", http.StatusBadRequest, "Invalid ID supplied"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tc.path, nil)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}

			if tc.expectedError != "" {
				var response map[string]string
				decodeBody(t, w, &response)
				if response["error"] != tc.expectedError {
					t.Errorf("expected error %q, got %q", tc.expectedError, response["error"])
				}
				return
			}

			var supply supplyResponse
			decodeBody(t, w, &supply)
			if supply.ID != 2 || supply.Name != "Milk" || supply.Unit != "L" {
				t.Errorf("unexpected supply: %+v", supply)
			}
		})
	}
}

func TestCreateSupply(t *testing.T) {
	r, l := newTestRouter(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"valid", models.Supply{Name: "Cocoa", Stock: 4.5, Unit: "kg", Category: "Raw Materials"}, http.StatusCreated},
		{"blank name", models.Supply{Name: " ", Stock: 1}, http.StatusBadRequest},
		{"negative stock", models.Supply{Name: "Cream", Stock: -2}, http.StatusBadRequest},
		{"invalid JSON", "invalid json", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/supplies", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusCreated {
				var supply supplyResponse
				decodeBody(t, w, &supply)
				if supply.ID == 0 {
					t.Error("created supply has no id")
				}
				if supply.Status != models.StockLow {
					t.Errorf("status = %s, want %s", supply.Status, models.StockLow)
				}
				if _, ok := l.Supply(supply.ID); !ok {
					t.Error("created supply not stored in ledger")
				}
			}
		})
	}
}

func TestUpdateAndDeleteSupply(t *testing.T) {
	r, l := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/supplies/3", models.Supply{Name: "Brown Sugar", Stock: 0, Unit: "kg"})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", w.Code)
	}
	var updated supplyResponse
	decodeBody(t, w, &updated)
	if updated.ID != 3 || updated.Status != models.StockOut {
		t.Errorf("unexpected updated supply: %+v", updated)
	}

	w = doRequest(t, r, http.MethodPut, "/api/supplies/404", models.Supply{Name: "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT unknown status = %d, want 404", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, "/api/supplies/3", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", w.Code)
	}
	if _, ok := l.Supply(3); ok {
		t.Error("supply still present after delete")
	}

	w = doRequest(t, r, http.MethodDelete, "/api/supplies/3", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", w.Code)
	}
}
