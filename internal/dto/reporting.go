package dto

import (
	"github.com/af360bank/financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceivedFilterRequest narrows the received-funds report via query params.
type ReceivedFilterRequest struct {
	Type     string `form:"type" binding:"omitempty,oneof=PAGAMENTO 'PIX RECEBIDO' 'TED RECEBIDA'"`
	Document string `form:"document" binding:"omitempty,numeric,len=14"`
}

// ToReceivedFilter converts the query params to the domain filter.
func (r ReceivedFilterRequest) ToReceivedFilter() domain.ReceivedFilter {
	return domain.ReceivedFilter{
		Type:     domain.TypeTag(r.Type),
		Document: r.Document,
	}
}

// ReceivedRowResponse is one line of the received-funds report.
type ReceivedRowResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type"`
	Document    string          `json:"document,omitempty"`
	CompanyName string          `json:"companyName,omitempty"`
}

// ReceivedReportResponse is the full received-funds report payload.
type ReceivedReportResponse struct {
	Rows      []ReceivedRowResponse `json:"rows"`
	Documents []string              `json:"documents"`
	Totals    struct {
		PixRecebido decimal.Decimal `json:"pixRecebido"`
		TedRecebida decimal.Decimal `json:"tedRecebida"`
		Pagamento   decimal.Decimal `json:"pagamento"`
	} `json:"totals"`
}

// ToReceivedReportResponse converts the report rows, totals and document list
// to the response DTO.
func ToReceivedReportResponse(rows []domain.ReceivedRow, totals domain.ReceivedTotals, documents []string) ReceivedReportResponse {
	response := ReceivedReportResponse{
		Rows:      make([]ReceivedRowResponse, len(rows)),
		Documents: documents,
	}
	response.Totals.PixRecebido = totals.PixRecebido
	response.Totals.TedRecebida = totals.TedRecebida
	response.Totals.Pagamento = totals.Pagamento

	for i, row := range rows {
		out := ReceivedRowResponse{
			ID:          row.ID,
			Date:        row.Date.Format("2006-01-02"),
			Description: row.Description,
			Value:       row.Value,
			Type:        string(row.Type),
			CompanyName: row.CompanyName,
		}
		if row.Document != nil {
			out.Document = *row.Document
		}
		response.Rows[i] = out
	}
	return response
}

// TypeSummaryRowResponse is one aggregated line of the summary report.
type TypeSummaryRowResponse struct {
	Type         string          `json:"type"`
	DisplayGroup string          `json:"displayGroup"`
	Count        int64           `json:"count"`
	Total        decimal.Decimal `json:"total"`
}

// ToTypeSummaryResponse converts the summary rows to their response DTOs.
func ToTypeSummaryResponse(rows []domain.TypeSummaryRow) []TypeSummaryRowResponse {
	res := make([]TypeSummaryRowResponse, len(rows))
	for i, row := range rows {
		res[i] = TypeSummaryRowResponse{
			Type:         string(row.Type),
			DisplayGroup: row.DisplayGroup,
			Count:        row.Count,
			Total:        row.Total,
		}
	}
	return res
}
