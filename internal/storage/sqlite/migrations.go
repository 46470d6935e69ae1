package sqlite

import "database/sql"

// schema sets up the receipt journal. It runs on every open.
// Amounts are stored as fixed-point text so they round-trip exactly.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    receipt_id TEXT NOT NULL UNIQUE,
    bill_id TEXT NOT NULL,
    paid_date TEXT NOT NULL,
    amount TEXT NOT NULL,
    currency TEXT NOT NULL,
    fee_type TEXT NOT NULL,
    description TEXT NOT NULL,
    payment_method TEXT NOT NULL,
    recorded_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_receipts_bill_id ON receipts(bill_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
