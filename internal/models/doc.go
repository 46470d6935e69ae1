// Package models defines the domain types for the hostel billing ledger.
//
// # Types
//
//   - Bill: a single fee obligation (hostel fee, utilities, deposit, ...)
//   - Receipt: the immutable record produced when a bill is paid
//   - DashboardStats: aggregate figures derived from the full bill set
//   - Reminder: a pending bill that falls due within the reminder horizon
//
// Money is carried as Amount, a fixed-point decimal that always renders with
// two fractional digits ("300.00"). Calendar dates are carried as Date, which
// has no time-of-day component and renders as "YYYY-MM-DD" (or "" when unset).
//
// All types are plain data and safe to serialize to JSON for display or export.
package models
