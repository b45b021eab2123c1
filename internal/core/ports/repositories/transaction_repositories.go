package repositories

import (
	"context"

	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// TransactionRepositoryFacade defines the persistence operations the
// ingestion and enrichment pipeline needs from the ledger store.
type TransactionRepositoryFacade interface {
	// SaveTransactions inserts one batch of rows. Batches are committed
	// independently so one long import never holds a single giant
	// transaction open.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error

	// ListAll returns every ledger row ordered by id. Used by the
	// reversal-pair cleanup, which scans the whole table.
	ListAll(ctx context.Context) ([]domain.Transaction, error)

	// DeleteByIDs removes rows in a single batch statement and returns the
	// number of rows removed.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	// FindByDescriptionContaining returns rows whose description contains
	// the fragment. Used by the bulk enrichment retry.
	FindByDescriptionContaining(ctx context.Context, fragment string) ([]domain.Transaction, error)

	// UpdateDescription rewrites a single row's description after a
	// successful registry lookup.
	UpdateDescription(ctx context.Context, id int64, description string) error
}

// ReportingRepositoryFacade defines the read-only report queries.
type ReportingRepositoryFacade interface {
	// ListReceived returns primary-tag rows, newest first, optionally
	// filtered by type and document.
	ListReceived(ctx context.Context, filter domain.ReceivedFilter) ([]domain.Transaction, error)

	// ListReceivedDocuments returns the distinct non-null documents present
	// on primary-tag rows.
	ListReceivedDocuments(ctx context.Context) ([]string, error)

	// SummarizeByType aggregates count and total per raw tag for all
	// non-primary tags.
	SummarizeByType(ctx context.Context) ([]domain.TypeSummaryRow, error)
}
