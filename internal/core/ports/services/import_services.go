package services

import (
	"context"

	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// ImporterSvcFacade runs one statement file through the ingestion pipeline.
type ImporterSvcFacade interface {
	// Process ingests the spreadsheet at filePath for the given bank layout.
	// It never returns an error: every outcome, fatal or not, is reported
	// through the progress sink keyed by jobID.
	Process(ctx context.Context, filePath string, bank domain.BankVariant, jobID string)
}

// CleanupSvcFacade removes matched reversal pairs from the ledger.
type CleanupSvcFacade interface {
	// RemoveReversalPairs scans the whole table and deletes both members of
	// every matched pair, returning the number of rows removed.
	RemoveReversalPairs(ctx context.Context) (int64, error)
}
