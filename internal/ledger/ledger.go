// Package ledger owns the supplies, menu items and sales of a storefront and
// provides the only mutation paths for them. Every successful mutation is
// written through to a repository.Store; the in-memory state stays
// authoritative when a save fails.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
)

var (
	ErrEmptyCart     = errors.New("cart must contain at least one item")
	ErrBlankCustomer = errors.New("customer name is required")
)

// Ledger holds the storefront collections.
// All methods are safe for concurrent use; calls are serialized.
type Ledger struct {
	mu sync.RWMutex

	store  repository.Store
	seed   *repository.Seed
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location

	supplies  []models.Supply
	menuItems []models.MenuItem
	sales     []models.Sale // most recent first

	lastID    int64
	customers *customerIndex
}

// Option configures a Ledger
type Option func(*Ledger)

// WithLogger sets the logger used for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock overrides the time source used for ids, sale dates and "today"
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLocation sets the time zone that defines a calendar day for statistics
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		l.loc = loc
	}
}

// WithSeed replaces the embedded default seed dataset
func WithSeed(seed *repository.Seed) Option {
	return func(l *Ledger) {
		l.seed = seed
	}
}

// New builds a ledger and loads each collection from store exactly once.
// Collections that are missing or unreadable are replaced by the seed dataset.
func New(ctx context.Context, store repository.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.seed == nil {
		seed, err := repository.DefaultSeed()
		if err != nil {
			return nil, fmt.Errorf("failed to load default seed: %w", err)
		}
		l.seed = seed
	}

	l.supplies = loadCollection(ctx, l, repository.KeySupplies, l.seed.Supplies)
	l.menuItems = loadCollection(ctx, l, repository.KeyMenuItems, l.seed.MenuItems)
	l.sales = loadCollection(ctx, l, repository.KeySales, l.seed.Sales)

	for i := range l.menuItems {
		if l.menuItems[i].SupplyRequirements == nil {
			l.menuItems[i].SupplyRequirements = []models.SupplyRequirement{}
		}
	}

	l.lastID = l.maxID()
	l.customers = newCustomerIndex(l.sales)

	l.logger.Info("ledger loaded",
		"supplies", len(l.supplies),
		"menu_items", len(l.menuItems),
		"sales", len(l.sales),
	)

	return l, nil
}

// loadCollection decodes the stored blob for key, falling back to a copy of def
func loadCollection[T any](ctx context.Context, l *Ledger, key string, def []T) []T {
	fallback := func() []T {
		out := make([]T, len(def))
		copy(out, def)
		return out
	}

	data, err := l.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			l.logger.Debug("no stored collection, using seed", "key", key)
		} else {
			l.logger.Warn("failed to load collection, using seed", "key", key, "error", err)
		}
		return fallback()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		l.logger.Warn("corrupt stored collection, using seed", "key", key, "error", err)
		return fallback()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persist writes a collection to the store. Failures are logged and ignored.
// Callers must hold l.mu.
func (l *Ledger) persist(ctx context.Context, key string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		l.logger.Error("failed to encode collection", "key", key, "error", err)
		return
	}

	if err := l.store.Save(ctx, key, data); err != nil {
		l.logger.Warn("failed to save collection", "key", key, "error", err)
	}
}

// nextID returns a millisecond timestamp id, bumped past the last issued id
// so ids stay unique within the process. Callers must hold l.mu.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) maxID() int64 {
	var maxID int64
	for _, s := range l.supplies {
		maxID = max(maxID, s.ID)
	}
	for _, m := range l.menuItems {
		maxID = max(maxID, m.ID)
	}
	for _, s := range l.sales {
		maxID = max(maxID, s.ID)
	}
	return maxID
}
