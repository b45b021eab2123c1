package pgsql

import (
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
