package pgsql

import (
	"context"
	"fmt"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates the repository for the ledger table.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &pgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const transactionColumns = `id, date, description, value, type, transaction_type, document, created_at`

// SaveTransactions inserts one batch of rows inside a single DB transaction.
// Imports call this once per batch, so a long file commits periodically
// instead of holding one giant transaction.
func (r *pgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO transactions (date, description, value, type, transaction_type, document)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, txn := range txns {
		batch.Queue(query,
			txn.Date,
			txn.Description,
			txn.Value,
			txn.Type,
			txn.TransactionType,
			txn.Document,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute transaction insert batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// ListAll returns every ledger row ordered by id.
func (r *pgxTransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions ORDER BY id;`, transactionColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// DeleteByIDs removes rows in a single batch statement.
func (r *pgxTransactionRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = ANY($1);`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions by id: %w", err)
	}
	return tag.RowsAffected(), nil
}

// FindByDescriptionContaining returns rows whose description contains the fragment.
func (r *pgxTransactionRepository) FindByDescriptionContaining(ctx context.Context, fragment string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE description LIKE '%%' || $1 || '%%' ORDER BY id;`, transactionColumns)

	rows, err := r.Pool.Query(ctx, query, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by description fragment: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// UpdateDescription rewrites a single row's description.
func (r *pgxTransactionRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE transactions SET description = $1 WHERE id = $2;`, description, id)
	if err != nil {
		return fmt.Errorf("failed to update description for transaction %d: %w", id, err)
	}
	return nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.Date,
			&txn.Description,
			&txn.Value,
			&txn.Type,
			&txn.TransactionType,
			&txn.Document,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return transactions, nil
}
