package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDateOfDropsTimeOfDay(t *testing.T) {
	kl := time.FixedZone("MYT", 8*3600)
	got := DateOf(time.Date(2026, time.January, 30, 23, 30, 0, 0, kl))
	if got.String() != "2026-01-30" {
		t.Errorf("DateOf = %s, want 2026-01-30", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2026-01-30")

	if got := d.AddDays(3).String(); got != "2026-02-02" {
		t.Errorf("AddDays(3) = %s, want 2026-02-02", got)
	}
	if got := d.DaysUntil(MustParseDate("2026-02-01")); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
	if got := d.DaysUntil(MustParseDate("2026-01-05")); got != -25 {
		t.Errorf("DaysUntil past date = %d, want -25", got)
	}
	if !d.Before(d.AddDays(1)) || d.Before(d) {
		t.Error("Before is not strict")
	}
}

func TestDateJSON(t *testing.T) {
	var b struct {
		Due  Date `json:"due"`
		Paid Date `json:"paid"`
	}
	if err := json.Unmarshal([]byte(`{"due":"2026-02-01","paid":""}`), &b); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if b.Due.String() != "2026-02-01" {
		t.Errorf("Due = %s, want 2026-02-01", b.Due)
	}
	if !b.Paid.IsZero() {
		t.Errorf("Paid = %s, want empty", b.Paid)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"due":"2026-02-01","paid":""}` {
		t.Errorf("Marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"due":"01/02/2026"}`), &b); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Unmarshal bad date error = %v, want ErrInvalidDate", err)
	}
}

func TestPaymentMethodLabel(t *testing.T) {
	if got := PaymentMethodLabel("bank_transfer"); got != "Bank Transfer" {
		t.Errorf("PaymentMethodLabel(bank_transfer) = %q", got)
	}
	if got := PaymentMethodLabel("crypto"); got != "crypto" {
		t.Errorf("unknown key should fall back to itself, got %q", got)
	}
}
