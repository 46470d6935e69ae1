package models

// Status is the lifecycle state of a bill.
type Status string

const (
	// StatusPending is an unpaid bill whose due date has not passed.
	StatusPending Status = "Pending"
	// StatusOverdue is an unpaid bill whose due date has passed.
	StatusOverdue Status = "Overdue"
	// StatusPaid is terminal.
	StatusPaid Status = "Paid"
)

// Valid reports whether s is one of the three bill states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOverdue, StatusPaid:
		return true
	}
	return false
}

// Bill represents a single fee obligation owed by a resident.
type Bill struct {
	// ID is the identifier of the bill, unique within a ledger.
	ID string `json:"id"`

	// FeeType is the category label (e.g., "Hostel Fee", "Utility Fee").
	FeeType string `json:"fee_type"`

	// Description is free text shown alongside the fee type.
	Description string `json:"description"`

	// DueDate is the last day the bill can be paid without becoming overdue.
	DueDate Date `json:"due_date"`

	// Amount is the amount owed.
	Amount Amount `json:"amount"`

	// Currency is a short currency code such as "RM".
	Currency string `json:"currency"`

	// Status is Pending or Overdue while unpaid, Paid once settled.
	Status Status `json:"status"`

	// PaidDate is set only when Status is Paid.
	PaidDate Date `json:"paid_date"`

	// ReceiptID is set only when Status is Paid.
	ReceiptID string `json:"receipt_id"`

	// PaymentMethod is the human-readable method label recorded at payment time.
	PaymentMethod string `json:"payment_method"`
}

// IsPaid reports whether the bill has been settled.
func (b Bill) IsPaid() bool {
	return b.Status == StatusPaid
}

// Receipt is the immutable record produced when a bill is paid.
// It is a projection of the paid bill and carries no ledger internals.
type Receipt struct {
	ReceiptID     string `json:"receipt_id"`
	BillID        string `json:"bill_id"`
	PaidDate      Date   `json:"paid_date"`
	Amount        Amount `json:"amount"`
	Currency      string `json:"currency"`
	FeeType       string `json:"fee_type"`
	Description   string `json:"description"`
	PaymentMethod string `json:"payment_method"`
}

// ReceiptFor projects a paid bill into a Receipt.
func ReceiptFor(b Bill) Receipt {
	return Receipt{
		ReceiptID:     b.ReceiptID,
		BillID:        b.ID,
		PaidDate:      b.PaidDate,
		Amount:        b.Amount,
		Currency:      b.Currency,
		FeeType:       b.FeeType,
		Description:   b.Description,
		PaymentMethod: b.PaymentMethod,
	}
}

// DashboardStats holds figures derived from the full bill set at one instant.
type DashboardStats struct {
	Total    int `json:"total"`
	Paid     int `json:"paid"`
	Pending  int `json:"pending"`
	Overdue  int `json:"overdue"`
	Upcoming int `json:"upcoming"` // pending and due within the reminder horizon

	// TotalOutstanding is the sum of Pending and Overdue amounts.
	TotalOutstanding Amount `json:"total_outstanding"`
	TotalPaid        Amount `json:"total_paid"`
	Currency         string `json:"currency"`
	AsOf             Date   `json:"as_of"`
}

// Reminder is a pending bill that falls due soon.
type Reminder struct {
	Bill          Bill `json:"bill"`
	DaysRemaining int  `json:"days_remaining"`
}
