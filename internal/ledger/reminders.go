package ledger

import (
	"iter"
	"time"

	"github.com/mmynk/hostelbilling/internal/models"
)

// Reminders yields, in ledger order, each pending bill due within
// ReminderHorizonDays of now together with the whole days remaining.
//
// The sequence is lazy and restartable: each iteration takes a fresh snapshot
// and yields without holding the ledger lock, so the loop body may call back
// into the ledger (e.g., to pay the bill it was reminded about).
func (l *Ledger) Reminders(now time.Time) iter.Seq2[models.Bill, int] {
	return func(yield func(models.Bill, int) bool) {
		today := models.DateOf(now)
		for _, b := range l.snapshot(today) {
			if !upcoming(b, today) {
				continue
			}
			if !yield(b, max(0, today.DaysUntil(b.DueDate))) {
				return
			}
		}
	}
}

// CollectReminders drains Reminders(now) into a slice.
func (l *Ledger) CollectReminders(now time.Time) []models.Reminder {
	var out []models.Reminder
	for b, days := range l.Reminders(now) {
		out = append(out, models.Reminder{Bill: b, DaysRemaining: days})
	}
	return out
}
