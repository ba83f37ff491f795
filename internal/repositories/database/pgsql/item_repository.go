package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	"github.com/MeiyanW/inner_court_app/internal/models"
	"github.com/MeiyanW/inner_court_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `id, owner_id, item_name, effect_type, is_used, from_user, created_at`

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for inventory items.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepository = (*PgxItemRepository)(nil)

// SaveItem inserts a new inventory row and returns its assigned id.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) (int64, error) {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO inventory (owner_id, item_name, effect_type, is_used, from_user, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OwnerID,
		m.Name,
		m.Effect,
		m.Used,
		m.FromName,
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert inventory item", err)
	}
	return id, nil
}

// FindItemByID retrieves one inventory row; nil when missing.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1;`
	var m models.Item
	err := r.Pool.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID,
		&m.OwnerID,
		&m.Name,
		&m.Effect,
		&m.Used,
		&m.FromName,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query inventory item "+strconv.FormatInt(itemID, 10), err)
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}

// ListItemsByOwner returns the owner's items, newest first. Used items are
// filtered out unless includeUsed is set.
func (r *PgxItemRepository) ListItemsByOwner(ctx context.Context, ownerID string, includeUsed bool) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE owner_id = $1`
	if !includeUsed {
		query += ` AND is_used = FALSE`
	}
	query += ` ORDER BY id DESC;`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory for owner "+ownerID, err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var m models.Item
		if err := rows.Scan(
			&m.ItemID,
			&m.OwnerID,
			&m.Name,
			&m.Effect,
			&m.Used,
			&m.FromName,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory rows", err)
	}
	return mapping.ToDomainItemSlice(items), nil
}

// UpdateItemOwner reassigns an item to a new owner and records who it came
// from in the same statement.
func (r *PgxItemRepository) UpdateItemOwner(ctx context.Context, itemID int64, newOwnerID, fromName string) error {
	query := `UPDATE inventory SET owner_id = $2, from_user = $3 WHERE id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, itemID, newOwnerID, fromName)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reassign inventory item "+strconv.FormatInt(itemID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("inventory item " + strconv.FormatInt(itemID, 10) + " not found for reassignment")
	}
	return nil
}

// MarkItemUsed flips is_used with a compare-and-set predicate. Two concurrent
// consumers of the same item race on the WHERE clause; exactly one sees a
// row affected.
func (r *PgxItemRepository) MarkItemUsed(ctx context.Context, itemID int64) (bool, error) {
	query := `UPDATE inventory SET is_used = TRUE WHERE id = $1 AND is_used = FALSE;`
	cmdTag, err := r.Pool.Exec(ctx, query, itemID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to consume inventory item "+strconv.FormatInt(itemID, 10), err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
