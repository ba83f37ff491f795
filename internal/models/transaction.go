package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database shape of one stipend ledger row.
// Rows are append-only; only the status column ever changes, and only through
// the single pending -> approved|rejected transition.
type Transaction struct {
	TransactionID int64           `db:"id"`
	MemberID      string          `db:"member_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	Reason        string          `db:"reason"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
