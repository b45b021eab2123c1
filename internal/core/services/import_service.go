package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/af360bank/financeiro_app/internal/platform/config"
	"github.com/af360bank/financeiro_app/internal/readers"
	"github.com/xuri/excelize/v2"
)

type importService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	registry  portssvc.RegistrySvcFacade
	cleanup   portssvc.CleanupSvcFacade
	progress  *jobs.Tracker
	logger    *slog.Logger
	batchSize int
}

// NewImportService creates the statement ingestion pipeline.
func NewImportService(
	cfg *config.Config,
	txnRepo portsrepo.TransactionRepositoryFacade,
	registry portssvc.RegistrySvcFacade,
	cleanup portssvc.CleanupSvcFacade,
	progress *jobs.Tracker,
	logger *slog.Logger,
) portssvc.ImporterSvcFacade {
	batchSize := cfg.ImportBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	return &importService{
		txnRepo:   txnRepo,
		registry:  registry,
		cleanup:   cleanup,
		progress:  progress,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Process drives one file through HeaderSearch, ColumnMap, RowIngest,
// Cleanup and Done. All outcomes, including panics, land in the progress
// sink as exactly one terminal transition.
func (s *importService) Process(ctx context.Context, filePath string, bank domain.BankVariant, jobID string) {
	logger := s.logger.With(
		slog.String("job_id", jobID),
		slog.String("bank", string(bank)),
		slog.String("file", filePath),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Import panicked", slog.Any("panic", r))
			s.progress.Fail(jobID, fmt.Sprintf("Erro: %v", r))
		}
	}()

	s.progress.Init(jobID)

	reader, err := readers.ForBank(bank)
	if err != nil {
		s.fail(jobID, logger, err)
		return
	}

	rows, err := loadRows(filePath)
	if err != nil {
		s.fail(jobID, logger, err)
		return
	}

	headerIdx, err := reader.LocateHeader(rows)
	if err != nil {
		// Failed jobs keep the uploaded file so the layout can be inspected
		// and the file re-submitted.
		s.fail(jobID, logger, err)
		return
	}

	cols, err := reader.MapColumns(rows[headerIdx])
	if err != nil {
		s.fail(jobID, logger, err)
		return
	}

	dataRows := rows[headerIdx+1:]
	total := len(dataRows)
	s.progress.SetTotal(jobID, total)
	logger.Info("Starting row ingestion", slog.Int("total_rows", total))

	imported := 0
	batch := make([]domain.Transaction, 0, s.batchSize)

	for i, row := range dataRows {
		s.progress.Update(jobID, i+1, fmt.Sprintf("Processando linha %d de %d", i+1, total))

		txn, err := reader.ParseRow(row, cols)
		if err != nil {
			logger.Debug("Skipping row",
				slog.Int("row", headerIdx+i+2),
				slog.String("reason", err.Error()),
			)
			continue
		}

		txn.Description = s.registry.EnrichDescription(ctx, txn.Description, txn.Type)

		batch = append(batch, txn)
		if len(batch) >= s.batchSize {
			if err := s.txnRepo.SaveTransactions(ctx, batch); err != nil {
				s.fail(jobID, logger, err)
				return
			}
			imported += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.txnRepo.SaveTransactions(ctx, batch); err != nil {
			s.fail(jobID, logger, err)
			return
		}
		imported += len(batch)
	}

	removed, err := s.cleanup.RemoveReversalPairs(ctx)
	if err != nil {
		s.fail(jobID, logger, err)
		return
	}

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove uploaded file", slog.String("error", err.Error()))
	}

	message := fmt.Sprintf("Concluído: %d transações importadas", imported)
	if removed > 0 {
		message = fmt.Sprintf("%s, %d duplicatas removidas", message, removed)
	}
	s.progress.Complete(jobID, message)
	logger.Info("Import completed", slog.Int("imported", imported), slog.Int64("removed", removed))
}

func (s *importService) fail(jobID string, logger *slog.Logger, err error) {
	logger.Error("Import failed", slog.String("error", err.Error()))
	s.progress.Fail(jobID, "Erro: "+err.Error())
}

// loadRows extracts the first sheet of the spreadsheet as a string grid.
func loadRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
