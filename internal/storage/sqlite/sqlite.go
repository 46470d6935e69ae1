// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/hostelbilling/internal/models"
	"github.com/mmynk/hostelbilling/internal/storage"
)

// MemoryPath opens a private in-memory database that disappears with the process.
const MemoryPath = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// MemoryPath keeps the journal in memory for the lifetime of the store.
func New(dbPath string) (*SQLiteStore, error) {
	inMemory := dbPath == MemoryPath
	if !inMemory {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if inMemory {
		// Every new connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateReceipt appends a receipt to the journal.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, r *models.Receipt) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO receipts (receipt_id, bill_id, paid_date, amount, currency, fee_type, description, payment_method, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ReceiptID, r.BillID, r.PaidDate.String(), r.Amount.String(), r.Currency,
		r.FeeType, r.Description, r.PaymentMethod, time.Now().Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("receipt %s already recorded: %w", r.ReceiptID, err)
		}
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

const receiptColumns = `receipt_id, bill_id, paid_date, amount, currency, fee_type, description, payment_method`

// GetReceipt retrieves a receipt by ID.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE receipt_id = ?",
		receiptID,
	)
	r, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return r, nil
}

// ListReceipts returns all receipts, latest paid date first. Receipts paid on
// the same day are ordered by when they were recorded, newest first.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts ORDER BY paid_date DESC, seq DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}

func scanReceipt(scanner interface{ Scan(...any) error }) (*models.Receipt, error) {
	var (
		r        models.Receipt
		paidDate string
		amount   string
	)
	if err := scanner.Scan(&r.ReceiptID, &r.BillID, &paidDate, &amount, &r.Currency,
		&r.FeeType, &r.Description, &r.PaymentMethod); err != nil {
		return nil, err
	}

	var err error
	if r.PaidDate, err = models.ParseDate(paidDate); err != nil {
		return nil, err
	}
	if r.Amount, err = models.ParseAmount(amount); err != nil {
		return nil, err
	}
	return &r, nil
}
