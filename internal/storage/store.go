// Package storage provides abstractions for the receipt journal.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/hostelbilling/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store records every receipt the ledger issues.
// This abstraction allows swapping journal backends without changing the
// service layer. The ledger remains the source of truth for bill state.
type Store interface {
	// CreateReceipt appends an issued receipt to the journal.
	// Recording the same receipt ID twice is an error.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt by its ID.
	// Returns an error wrapping ErrNotFound if no such receipt was recorded.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// ListReceipts returns every recorded receipt, most recent first.
	ListReceipts(ctx context.Context) ([]*models.Receipt, error)

	// Close releases any resources held by the store.
	Close() error
}
