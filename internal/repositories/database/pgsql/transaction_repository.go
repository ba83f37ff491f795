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

const transactionColumns = `id, member_id, amount, type, status, reason, created_at, created_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the stipend ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction durably appends one ledger row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO stipend_ledger (member_id, amount, type, status, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.MemberID,
		m.Amount,
		m.Type,
		m.Status,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert ledger row", err)
	}
	return id, nil
}

// SaveTransactionsBatch appends all rows inside a single database
// transaction. Either every row commits or none do; this is what makes peer
// transfers and the stipend run all-or-nothing.
func (r *PgxTransactionRepository) SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed.

	batch := &pgx.Batch{}
	query := `
		INSERT INTO stipend_ledger (member_id, amount, type, status, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.MemberID,
			m.Amount,
			m.Type,
			m.Status,
			m.Reason,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	// Close surfaces the first failed command in the batch; the deferred
	// rollback then discards every queued insert.
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute ledger batch of "+strconv.Itoa(len(txns))+" rows", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves one ledger row; nil when missing.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stipend_ledger WHERE id = $1;`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.MemberID,
		&m.Amount,
		&m.Type,
		&m.Status,
		&m.Reason,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query ledger row "+strconv.FormatInt(transactionID, 10), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByMember returns one member's ledger, newest first.
func (r *PgxTransactionRepository) ListTransactionsByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stipend_ledger WHERE member_id = $1 ORDER BY id DESC;`
	return r.list(ctx, query, memberID)
}

// ListTransactions returns the full ledger, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stipend_ledger ORDER BY id DESC;`
	return r.list(ctx, query)
}

// ListPendingTransactions returns unresolved debit requests, oldest first so
// the approval queue reads in arrival order.
func (r *PgxTransactionRepository) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stipend_ledger WHERE status = 'pending' ORDER BY id;`
	return r.list(ctx, query)
}

func (r *PgxTransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.MemberID,
			&m.Amount,
			&m.Type,
			&m.Status,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ResolveIfPending conditionally moves a row to a terminal status. The status
// predicate makes the transition idempotent: a row that already left pending
// matches nothing and the method reports false with no error.
func (r *PgxTransactionRepository) ResolveIfPending(ctx context.Context, transactionID int64, status domain.TransactionStatus) (bool, error) {
	query := `UPDATE stipend_ledger SET status = $2 WHERE id = $1 AND status = 'pending';`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(status))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to resolve ledger row "+strconv.FormatInt(transactionID, 10), err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
