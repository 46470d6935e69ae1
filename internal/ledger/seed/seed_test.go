package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/hostelbilling/internal/models"
)

func TestDefault(t *testing.T) {
	bills, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(bills) == 0 {
		t.Fatal("expected built-in bills")
	}
	for _, b := range bills {
		if b.Currency != "RM" {
			t.Errorf("bill %s currency = %q, want RM", b.ID, b.Currency)
		}
		if b.IsPaid() != (b.ReceiptID != "") {
			t.Errorf("bill %s: status %s inconsistent with receipt %q", b.ID, b.Status, b.ReceiptID)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "bills.json")
		data := `[{"id":"a","fee_type":"Hostel Fee","due_date":"2026-03-01","amount":"10.00","currency":"RM","status":"Pending"}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		bills, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(bills) != 1 || bills[0].Amount.String() != "10.00" {
			t.Errorf("unexpected bills: %+v", bills)
		}
	})

	t.Run("malformed amount fails closed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		data := `[{"id":"a","due_date":"2026-03-01","amount":"ten","currency":"RM","status":"Pending"}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("Load error = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("missing amount fails closed", func(t *testing.T) {
		path := filepath.Join(dir, "no-amount.json")
		data := `[{"id":"a","due_date":"2026-03-01","currency":"RM","status":"Pending"}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("Load error = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("missing currency rejected", func(t *testing.T) {
		path := filepath.Join(dir, "no-currency.json")
		data := `[{"id":"a","due_date":"2026-03-01","amount":"10.00","status":"Pending"}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("Load error = %v, want ErrInvalidSeed", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
