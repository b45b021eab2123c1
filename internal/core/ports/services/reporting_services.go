package services

import (
	"context"

	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// ReportingSvcFacade generates the received-funds and type-summary reports.
type ReportingSvcFacade interface {
	// Received lists primary-tag rows with per-tag totals and the distinct
	// counterparty documents available for filtering.
	Received(ctx context.Context, filter domain.ReceivedFilter) ([]domain.ReceivedRow, domain.ReceivedTotals, []string, error)

	// SummaryByType aggregates the non-primary tags with their report-time
	// display groups.
	SummaryByType(ctx context.Context) ([]domain.TypeSummaryRow, error)
}
