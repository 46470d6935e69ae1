// Package seed loads the initial bill collection for a ledger.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/hostelbilling/internal/models"
)

//go:embed bills.json
var defaultBills []byte

// ErrInvalidSeed is returned when a seed entry lacks a required field.
var ErrInvalidSeed = errors.New("invalid seed bill")

var validate = validator.New()

// seedBill is the on-disk shape of a bill. Amount is a pointer so a missing
// value is distinguishable from zero.
type seedBill struct {
	ID            string         `json:"id" validate:"required"`
	FeeType       string         `json:"fee_type"`
	Description   string         `json:"description"`
	DueDate       models.Date    `json:"due_date"`
	Amount        *models.Amount `json:"amount" validate:"required"`
	Currency      string         `json:"currency" validate:"required"`
	Status        models.Status  `json:"status" validate:"required"`
	PaidDate      models.Date    `json:"paid_date"`
	ReceiptID     string         `json:"receipt_id"`
	PaymentMethod string         `json:"payment_method"`
}

func (s seedBill) bill() models.Bill {
	return models.Bill{
		ID:            s.ID,
		FeeType:       s.FeeType,
		Description:   s.Description,
		DueDate:       s.DueDate,
		Amount:        *s.Amount,
		Currency:      s.Currency,
		Status:        s.Status,
		PaidDate:      s.PaidDate,
		ReceiptID:     s.ReceiptID,
		PaymentMethod: s.PaymentMethod,
	}
}

// Default returns the built-in bill collection.
func Default() ([]models.Bill, error) {
	return decode(defaultBills)
}

// Load reads bills from a JSON file, or returns Default when path is empty.
func Load(path string) ([]models.Bill, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]models.Bill, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var entries []seedBill
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode seed bills: %w", err)
	}

	bills := make([]models.Bill, 0, len(entries))
	for i, e := range entries {
		if err := check(e); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		bills = append(bills, e.bill())
	}
	return bills, nil
}

func check(e seedBill) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	fe := verrs[0]
	if fe.StructField() == "Amount" {
		return fmt.Errorf("%w: bill %q has no amount", models.ErrInvalidAmount, e.ID)
	}
	return fmt.Errorf("%w: bill %q: %s is %s", ErrInvalidSeed, e.ID, fe.Field(), fe.Tag())
}
