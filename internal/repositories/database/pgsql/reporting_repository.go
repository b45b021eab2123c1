package pgsql

import (
	"context"
	"fmt"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the read-only report queries.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// ListReceived returns primary-tag rows, newest first, optionally filtered
// by type and document.
func (r *reportingRepository) ListReceived(ctx context.Context, filter domain.ReceivedFilter) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE type IN ('PIX RECEBIDO', 'TED RECEBIDA', 'PAGAMENTO')
	`, transactionColumns)

	args := []any{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Document != "" {
		args = append(args, filter.Document)
		query += fmt.Sprintf(" AND document = $%d", len(args))
	}
	query += " ORDER BY date DESC, id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query received transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListReceivedDocuments returns the distinct non-null documents on
// primary-tag rows, for the report filter dropdown.
func (r *reportingRepository) ListReceivedDocuments(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT document
		FROM transactions
		WHERE document IS NOT NULL
			AND type IN ('PIX RECEBIDO', 'TED RECEBIDA', 'PAGAMENTO')
		ORDER BY document;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query received documents: %w", err)
	}
	defer rows.Close()

	documents := []string{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}
	return documents, nil
}

// SummarizeByType aggregates count and total per raw tag for the
// non-primary tags.
func (r *reportingRepository) SummarizeByType(ctx context.Context) ([]domain.TypeSummaryRow, error) {
	query := `
		SELECT type, COUNT(*) AS count, SUM(value) AS total
		FROM transactions
		WHERE type NOT IN ('PIX RECEBIDO', 'TED RECEBIDA', 'PAGAMENTO')
		GROUP BY type
		ORDER BY type;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query type summary: %w", err)
	}
	defer rows.Close()

	summary := []domain.TypeSummaryRow{}
	for rows.Next() {
		var row domain.TypeSummaryRow
		if err := rows.Scan(&row.Type, &row.Count, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan type summary row: %w", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate type summary rows: %w", err)
	}
	return summary, nil
}
