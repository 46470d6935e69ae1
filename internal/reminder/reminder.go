// Package reminder periodically walks the ledger's due-soon bills and emits
// one reminder per bill.
package reminder

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/hostelbilling/internal/ledger"
	"github.com/mmynk/hostelbilling/internal/metrics"
	"github.com/mmynk/hostelbilling/internal/models"
)

// Job emits reminders for pending bills within the ledger's reminder horizon.
type Job struct {
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
	printer *message.Printer
}

// NewJob creates a reminder job. m may be nil.
func NewJob(l *ledger.Ledger, m *metrics.Metrics) *Job {
	return &Job{
		ledger:  l,
		metrics: m,
		printer: message.NewPrinter(language.English),
	}
}

// Run emits a reminder for each due-soon bill as of now and returns how many were sent.
func (j *Job) Run(now time.Time) int {
	sent := 0
	for b, days := range j.ledger.Reminders(now) {
		slog.Info("Payment reminder",
			"bill_id", b.ID,
			"fee_type", b.FeeType,
			"due_date", b.DueDate.String(),
			"days_remaining", days,
			"amount", j.FormatAmount(b.Currency, b.Amount),
		)
		sent++
	}
	if j.metrics != nil {
		j.metrics.Reminders.Add(float64(sent))
	}
	slog.Debug("Reminder run complete", "sent", sent, "as_of", models.DateOf(now).String())
	return sent
}

// FormatAmount renders an amount for people, e.g. "RM 1,200.00".
// Values whose whole part overflows int64 are printed ungrouped.
func (j *Job) FormatAmount(currency string, amount models.Amount) string {
	d := amount.Decimal().Round(2)
	_, frac, _ := strings.Cut(d.StringFixed(2), ".")
	whole := d.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return currency + " " + d.StringFixed(2)
	}
	return j.printer.Sprintf("%s %d.%s", currency, whole.IntPart(), frac)
}

// Start schedules the job on a cron spec (standard five-field syntax) in loc
// and starts the scheduler. Stop the returned cron to halt it.
func Start(spec string, loc *time.Location, job *Job) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := c.AddFunc(spec, func() {
		job.Run(job.ledger.Now().In(loc))
	}); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	c.Start()
	slog.Info("Reminder scheduler started", "schedule", spec, "location", loc.String())
	return c, nil
}
