package service

import (
	"context"
	"testing"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/ledger"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/pkg/logger"
)

// newSeededLedger returns a ledger over an empty store, so it holds the default seed:
// supplies 1 Coffee Beans 100kg, 2 Milk 50L, 3 Sugar 30kg, 4 Flour 40kg and
// menu items 1 Signature Brew, 2 Iced Spanish Latte, 3 Almond Croissant, 4 Matcha Cheesecake Slice.
func newSeededLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	l, err := ledger.New(context.Background(), repository.NewInMemoryStore(),
		ledger.WithLogger(logger.New("error")),
		ledger.WithClock(func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }),
		ledger.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("ledger.New() error = %v", err)
	}
	return l
}
