package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/utils/classify"
)

type reportingService struct {
	reportRepo portsrepo.ReportingRepositoryFacade
	registry   portssvc.RegistrySvcFacade
	logger     *slog.Logger
}

// NewReportingService creates the read-only report component.
func NewReportingService(reportRepo portsrepo.ReportingRepositoryFacade, registry portssvc.RegistrySvcFacade, logger *slog.Logger) portssvc.ReportingSvcFacade {
	return &reportingService{reportRepo: reportRepo, registry: registry, logger: logger}
}

func (s *reportingService) Received(ctx context.Context, filter domain.ReceivedFilter) ([]domain.ReceivedRow, domain.ReceivedTotals, []string, error) {
	txns, err := s.reportRepo.ListReceived(ctx, filter)
	if err != nil {
		return nil, domain.ReceivedTotals{}, nil, fmt.Errorf("failed to list received transactions: %w", err)
	}

	rows := make([]domain.ReceivedRow, 0, len(txns))
	var totals domain.ReceivedTotals
	for _, txn := range txns {
		row := domain.ReceivedRow{Transaction: txn}
		// Company names come from the in-memory cache only. Report reads
		// never trigger registry traffic.
		if txn.Document != nil {
			if name, ok := s.registry.CachedName(*txn.Document); ok {
				row.CompanyName = name
			}
		}
		rows = append(rows, row)

		switch txn.Type {
		case domain.TagPixRecebido:
			totals.PixRecebido = totals.PixRecebido.Add(txn.Value)
		case domain.TagTedRecebida:
			totals.TedRecebida = totals.TedRecebida.Add(txn.Value)
		case domain.TagPagamento:
			totals.Pagamento = totals.Pagamento.Add(txn.Value.Abs())
		}
	}

	documents, err := s.reportRepo.ListReceivedDocuments(ctx)
	if err != nil {
		return nil, domain.ReceivedTotals{}, nil, fmt.Errorf("failed to list received documents: %w", err)
	}

	return rows, totals, documents, nil
}

func (s *reportingService) SummaryByType(ctx context.Context) ([]domain.TypeSummaryRow, error) {
	rows, err := s.reportRepo.SummarizeByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions by type: %w", err)
	}

	for i := range rows {
		rows[i].DisplayGroup = classify.DisplayGroup(rows[i].Type)
	}
	return rows, nil
}
