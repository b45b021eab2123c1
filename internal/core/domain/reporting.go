package domain

import "github.com/shopspring/decimal"

// ReceivedRow is one line of the received-funds report (primary tags only).
type ReceivedRow struct {
	Transaction
	CompanyName string `json:"companyName,omitempty"`
}

// ReceivedTotals accumulates per-tag totals for the received-funds report.
// Payments are summed as absolute values.
type ReceivedTotals struct {
	PixRecebido decimal.Decimal `json:"pixRecebido"`
	TedRecebida decimal.Decimal `json:"tedRecebida"`
	Pagamento   decimal.Decimal `json:"pagamento"`
}

// ReceivedFilter narrows the received-funds report.
type ReceivedFilter struct {
	Type     TypeTag
	Document string
}

// TypeSummaryRow aggregates the non-primary tags for the summary report.
// DisplayGroup is the report-time bucket; Type stays the raw tag.
type TypeSummaryRow struct {
	Type         TypeTag         `json:"type"`
	DisplayGroup string          `json:"displayGroup"`
	Count        int64           `json:"count"`
	Total        decimal.Decimal `json:"total"`
}
