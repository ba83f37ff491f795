package models

import (
	"database/sql"
	"time"
)

// Member is the database shape of a court member profile.
type Member struct {
	MemberID     string `db:"member_id"`
	ShortID      string `db:"short_id"`
	Name         string `db:"username"`
	Role         string `db:"role"`
	Rank         string `db:"rank"`
	FamilyRank   string `db:"family_rank"`
	Appearance   string `db:"appearance"`
	Constitution string `db:"constitution"`
	AuditFields

	// Refresh token fields, bcrypt hash of the currently issued token.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
