package pgsql

import (
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds all pgsql-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:      newPgxMemberRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ItemRepo:        newPgxItemRepository(dbPool),
	}
}
