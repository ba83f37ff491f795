package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	"github.com/MeiyanW/inner_court_app/internal/models"
	"github.com/MeiyanW/inner_court_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memberColumns = `member_id, short_id, username, role, rank, family_rank, appearance, constitution,
	       created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member profiles.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

// SaveMember inserts a new member profile row.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (member_id, short_id, username, role, rank, family_rank, appearance, constitution,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.ShortID,
		m.Name,
		m.Role,
		m.Rank,
		m.FamilyRank,
		m.Appearance,
		m.Constitution,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "member name or short id already taken", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert member "+m.MemberID, err)
	}
	return nil
}

// FindMemberByID retrieves a member by primary key; nil when missing.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE member_id = $1;`, memberID)
}

// FindMemberByName retrieves a member by display name; nil when missing.
func (r *PgxMemberRepository) FindMemberByName(ctx context.Context, name string) (*domain.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE username = $1;`, name)
}

// FindMemberByLogin retrieves a member by the name + short-id login pair.
func (r *PgxMemberRepository) FindMemberByLogin(ctx context.Context, name, shortID string) (*domain.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE username = $1 AND short_id = $2;`, name, shortID)
}

func (r *PgxMemberRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Member, error) {
	var m models.Member
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.MemberID,
		&m.ShortID,
		&m.Name,
		&m.Role,
		&m.Rank,
		&m.FamilyRank,
		&m.Appearance,
		&m.Constitution,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query member", err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

// ListMembers returns all members ordered by creation time.
func (r *PgxMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.MemberID,
			&m.ShortID,
			&m.Name,
			&m.Role,
			&m.Rank,
			&m.FamilyRank,
			&m.Appearance,
			&m.Constitution,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows", err)
	}
	return mapping.ToDomainMemberSlice(members), nil
}

// UpdateMember writes the display name and all four attribute columns.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members
		SET username = $2,
		    rank = $3,
		    family_rank = $4,
		    appearance = $5,
		    constitution = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE member_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.Name,
		m.Rank,
		m.FamilyRank,
		m.Appearance,
		m.Constitution,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "member name already taken", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to update member "+m.MemberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + m.MemberID + " not found for update")
	}
	return nil
}

// UpdateMemberAttribute writes a single attribute column, used by item
// consumption so only the governed attribute is touched.
func (r *PgxMemberRepository) UpdateMemberAttribute(ctx context.Context, memberID string, kind domain.AttributeKind, value string, updatedBy string, updatedAt time.Time) error {
	var column string
	switch kind {
	case domain.AttrRank:
		column = "rank"
	case domain.AttrFamilyRank:
		column = "family_rank"
	case domain.AttrAppearance:
		column = "appearance"
	case domain.AttrConstitution:
		column = "constitution"
	default:
		return apperrors.NewAppError(400, "unknown attribute kind "+string(kind), apperrors.ErrValidation)
	}

	// column comes from the switch above, never from input.
	query := `UPDATE members SET ` + column + ` = $2, last_updated_at = $3, last_updated_by = $4 WHERE member_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, memberID, value, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update attribute for member "+memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + memberID + " not found for attribute update")
	}
	return nil
}

// UpdateRefreshToken stores the bcrypt hash and expiry of the latest token.
func (r *PgxMemberRepository) UpdateRefreshToken(ctx context.Context, memberID string, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE members SET refresh_token_hash = $2, refresh_token_expiry_time = $3 WHERE member_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, memberID, tokenHash, expiresAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token for member "+memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + memberID + " not found for refresh token update")
	}
	return nil
}

// ClearRefreshToken invalidates any outstanding refresh token.
func (r *PgxMemberRepository) ClearRefreshToken(ctx context.Context, memberID string) error {
	query := `UPDATE members SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL WHERE member_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, memberID); err != nil {
		return apperrors.NewAppError(500, "failed to clear refresh token for member "+memberID, err)
	}
	return nil
}

// FindRefreshToken reads the stored hash and expiry; zero values when none.
func (r *PgxMemberRepository) FindRefreshToken(ctx context.Context, memberID string) (string, time.Time, error) {
	var m models.Member
	query := `SELECT refresh_token_hash, refresh_token_expiry_time FROM members WHERE member_id = $1;`
	err := r.Pool.QueryRow(ctx, query, memberID).Scan(&m.RefreshTokenHash, &m.RefreshTokenExpiryTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewNotFoundError("member " + memberID + " not found")
		}
		return "", time.Time{}, apperrors.NewAppError(500, "failed to query refresh token for member "+memberID, err)
	}
	if !m.RefreshTokenHash.Valid {
		return "", time.Time{}, nil
	}
	return m.RefreshTokenHash.String, m.RefreshTokenExpiryTime.Time, nil
}
