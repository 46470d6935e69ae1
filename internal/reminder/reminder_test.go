package reminder

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/hostelbilling/internal/ledger"
	"github.com/mmynk/hostelbilling/internal/metrics"
	"github.com/mmynk/hostelbilling/internal/models"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.New([]models.Bill{
		{ID: "2", DueDate: models.MustParseDate("2026-01-05"), Amount: models.MustParseAmount("300.00"), Currency: "RM", Status: models.StatusOverdue},
		{ID: "3", DueDate: models.MustParseDate("2026-02-01"), Amount: models.MustParseAmount("200.00"), Currency: "RM", Status: models.StatusPending},
		{ID: "4", DueDate: models.MustParseDate("2026-02-02"), Amount: models.MustParseAmount("1200.00"), Currency: "RM", Status: models.StatusPending},
	})
	if err != nil {
		t.Fatalf("ledger.New failed: %v", err)
	}
	return l
}

func TestRun(t *testing.T) {
	m := metrics.New()
	job := NewJob(newLedger(t), m)

	sent := job.Run(time.Date(2026, time.January, 30, 8, 0, 0, 0, time.UTC))
	if sent != 2 {
		t.Errorf("sent = %d, want 2", sent)
	}
	if got := testutil.ToFloat64(m.Reminders); got != 2 {
		t.Errorf("reminder counter = %v, want 2", got)
	}

	// Nothing is due soon a month earlier.
	if sent := job.Run(time.Date(2025, time.December, 30, 8, 0, 0, 0, time.UTC)); sent != 0 {
		t.Errorf("sent = %d, want 0", sent)
	}
}

func TestFormatAmount(t *testing.T) {
	job := NewJob(newLedger(t), nil)
	tests := []struct {
		amount string
		want   string
	}{
		{"1200.00", "RM 1,200.00"},
		{"0.05", "RM 0.05"},
		{"300", "RM 300.00"},
		{"12345678901234567.89", "RM 12,345,678,901,234,567.89"},
	}
	for _, tt := range tests {
		if got := job.FormatAmount("RM", models.MustParseAmount(tt.amount)); got != tt.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	job := NewJob(newLedger(t), nil)
	if _, err := Start("not a schedule", time.UTC, job); err == nil {
		t.Error("expected error for invalid cron spec")
	}

	c, err := Start("0 8 * * *", time.UTC, job)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Errorf("expected 1 cron entry, got %d", len(c.Entries()))
	}
	<-c.Stop().Done()
}
