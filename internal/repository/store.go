package repository

import (
	"context"
	"errors"
)

// Keys under which the ledger collections are persisted
const (
	KeySupplies  = "supplies"
	KeyMenuItems = "menuItems"
	KeySales     = "sales"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("invalid key")
)

// Store persists one JSON blob per key
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
