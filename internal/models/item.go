package models

import "time"

// Item is the database shape of one inventory row.
// The is_used flag doubles as the optimistic concurrency token for
// consumption: the flip is done with a conditional update so a second use of
// the same row affects zero rows.
type Item struct {
	ItemID    int64     `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"item_name"`
	Effect    string    `db:"effect_type"`
	Used      bool      `db:"is_used"`
	FromName  string    `db:"from_user"`
	CreatedAt time.Time `db:"created_at"`
}
