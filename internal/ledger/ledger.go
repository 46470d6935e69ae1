// Package ledger holds the authoritative in-memory collection of bills and
// implements the pay-then-receipt lifecycle on top of it.
//
// A Ledger is safe for concurrent use. Reads copy bills out under a read lock;
// PayBill holds the write lock across its precondition check and mutation, so
// two payments racing on the same bill issue exactly one receipt.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mmynk/hostelbilling/internal/models"
)

// ReminderHorizonDays is how far ahead (inclusive) a pending bill counts as upcoming.
const ReminderHorizonDays = 3

// FilterAll selects every bill regardless of status.
const FilterAll models.Status = "All"

var (
	// ErrBillNotFound is returned when no bill has the requested ID.
	ErrBillNotFound = errors.New("bill not found")
	// ErrAlreadyPaid is returned when paying a bill that is already Paid.
	ErrAlreadyPaid = errors.New("bill already paid")
	// ErrReceiptNotFound is returned when no paid bill carries the requested receipt ID.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrInvalidBill is returned by New when a seed bill breaks a ledger invariant.
	ErrInvalidBill = errors.New("invalid bill")
)

// Filter narrows ListBills. The zero value selects every bill.
type Filter struct {
	Status models.Status
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used to classify bills in ListBills and Bill.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.clock = now
	}
}

// Ledger owns a set of bills.
type Ledger struct {
	mu       sync.RWMutex
	bills    []models.Bill
	index    map[string]int
	receipts map[string]string // receipt ID -> bill ID
	seq      int
	currency string
	clock    func() time.Time
}

// New creates a ledger from the given bills, preserving their order.
// Each bill is validated: non-empty unique ID, a known status consistent with
// its paid date and receipt ID, and a single currency across the whole set.
func New(bills []models.Bill, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		bills:    make([]models.Bill, 0, len(bills)),
		index:    make(map[string]int, len(bills)),
		receipts: make(map[string]string),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, b := range bills {
		if err := l.add(b); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Ledger) add(b models.Bill) error {
	if b.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidBill)
	}
	if _, exists := l.index[b.ID]; exists {
		return fmt.Errorf("%w: duplicate id %s", ErrInvalidBill, b.ID)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: bill %s has unknown status %q", ErrInvalidBill, b.ID, b.Status)
	}
	if b.DueDate.IsZero() {
		return fmt.Errorf("%w: bill %s has no due date", ErrInvalidBill, b.ID)
	}
	if b.Amount.Decimal().IsNegative() {
		return fmt.Errorf("%w: bill %s has negative amount", models.ErrInvalidAmount, b.ID)
	}

	if b.IsPaid() {
		if b.PaidDate.IsZero() || b.ReceiptID == "" {
			return fmt.Errorf("%w: paid bill %s needs a paid date and receipt id", ErrInvalidBill, b.ID)
		}
		if other, taken := l.receipts[b.ReceiptID]; taken {
			return fmt.Errorf("%w: receipt %s used by bills %s and %s", ErrInvalidBill, b.ReceiptID, other, b.ID)
		}
		l.receipts[b.ReceiptID] = b.ID
	} else if !b.PaidDate.IsZero() || b.ReceiptID != "" {
		return fmt.Errorf("%w: unpaid bill %s carries payment details", ErrInvalidBill, b.ID)
	}

	if b.Currency == "" {
		return fmt.Errorf("%w: bill %s has no currency", ErrInvalidBill, b.ID)
	}
	if l.currency == "" {
		l.currency = b.Currency
	} else if b.Currency != l.currency {
		return fmt.Errorf("%w: bill %s is in %s, ledger is in %s", ErrInvalidBill, b.ID, b.Currency, l.currency)
	}

	l.index[b.ID] = len(l.bills)
	l.bills = append(l.bills, b)
	return nil
}

// Now returns the ledger clock's current time.
func (l *Ledger) Now() time.Time {
	return l.clock()
}

// Currency returns the currency shared by every bill, or "" for an empty ledger.
func (l *Ledger) Currency() string {
	return l.currency
}

// Len returns the number of bills.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bills)
}

// classify returns the effective status of b on the given date.
// Overdue is derived from the due date rather than trusted from storage.
func classify(b models.Bill, today models.Date) models.Status {
	if b.IsPaid() {
		return models.StatusPaid
	}
	if b.DueDate.Before(today) {
		return models.StatusOverdue
	}
	return models.StatusPending
}

// snapshot copies every bill with its status classified as of today.
func (l *Ledger) snapshot(today models.Date) []models.Bill {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Bill, len(l.bills))
	for i, b := range l.bills {
		b.Status = classify(b, today)
		out[i] = b
	}
	return out
}

// ListBills returns the bills matching f in ledger order.
func (l *Ledger) ListBills(f Filter) []models.Bill {
	bills := l.snapshot(models.DateOf(l.clock()))
	if f.Status == "" || f.Status == FilterAll {
		return bills
	}

	matched := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if b.Status == f.Status {
			matched = append(matched, b)
		}
	}
	return matched
}

// Bill returns a snapshot of a single bill.
func (l *Ledger) Bill(id string) (models.Bill, error) {
	today := models.DateOf(l.clock())

	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return models.Bill{}, fmt.Errorf("%w: %s", ErrBillNotFound, id)
	}
	b := l.bills[i]
	b.Status = classify(b, today)
	return b, nil
}

// upcoming reports whether an unpaid bill is due within the reminder horizon.
func upcoming(b models.Bill, today models.Date) bool {
	return b.Status == models.StatusPending &&
		!b.DueDate.Before(today) &&
		!b.DueDate.After(today.AddDays(ReminderHorizonDays))
}

// ComputeStats derives dashboard figures as of now. It does not mutate the ledger.
func (l *Ledger) ComputeStats(now time.Time) models.DashboardStats {
	today := models.DateOf(now)
	bills := l.snapshot(today)

	stats := models.DashboardStats{
		Total:    len(bills),
		Currency: l.currency,
		AsOf:     today,
	}
	for _, b := range bills {
		switch b.Status {
		case models.StatusPaid:
			stats.Paid++
			stats.TotalPaid = stats.TotalPaid.Add(b.Amount)
		case models.StatusOverdue:
			stats.Overdue++
			stats.TotalOutstanding = stats.TotalOutstanding.Add(b.Amount)
		case models.StatusPending:
			stats.Pending++
			stats.TotalOutstanding = stats.TotalOutstanding.Add(b.Amount)
			if upcoming(b, today) {
				stats.Upcoming++
			}
		}
	}
	return stats
}

// PayBill marks a Pending or Overdue bill as Paid on the date of now and
// returns its receipt. On error the bill is left unchanged.
func (l *Ledger) PayBill(id, method string, now time.Time) (models.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return models.Receipt{}, fmt.Errorf("%w: %s", ErrBillNotFound, id)
	}
	b := &l.bills[i]
	if b.IsPaid() {
		return models.Receipt{}, fmt.Errorf("%w: %s (receipt %s)", ErrAlreadyPaid, id, b.ReceiptID)
	}

	paidDate := models.DateOf(now)
	receiptID := l.nextReceiptID(paidDate.Year())

	b.Status = models.StatusPaid
	b.PaidDate = paidDate
	b.ReceiptID = receiptID
	b.PaymentMethod = method
	l.receipts[receiptID] = b.ID

	return models.ReceiptFor(*b), nil
}

// nextReceiptID returns a receipt ID not yet used in this ledger.
// Callers must hold the write lock.
func (l *Ledger) nextReceiptID(year int) string {
	for {
		l.seq++
		id := fmt.Sprintf("RCP-%d-%06d", year, l.seq)
		if _, taken := l.receipts[id]; !taken {
			return id
		}
	}
}

// Receipts returns the receipt of every paid bill in ledger order.
func (l *Ledger) Receipts() []models.Receipt {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Receipt, 0, len(l.receipts))
	for _, b := range l.bills {
		if b.IsPaid() {
			out = append(out, models.ReceiptFor(b))
		}
	}
	return out
}

// Receipt returns the receipt for a paid bill by receipt ID.
func (l *Ledger) Receipt(receiptID string) (models.Receipt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	billID, ok := l.receipts[receiptID]
	if !ok {
		return models.Receipt{}, fmt.Errorf("%w: %s", ErrReceiptNotFound, receiptID)
	}
	return models.ReceiptFor(l.bills[l.index[billID]]), nil
}
