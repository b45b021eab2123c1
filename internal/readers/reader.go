// Package readers turns raw bank-statement spreadsheet grids into ledger
// transactions. Each bank variant supplies its own header sentinels and
// column alias tables; the parsing flow is shared.
package readers

import (
	"fmt"
	"strings"

	"github.com/af360bank/financeiro_app/internal/apperrors"
	"github.com/af360bank/financeiro_app/internal/core/domain"
	"github.com/af360bank/financeiro_app/internal/utils/classify"
	"github.com/af360bank/financeiro_app/internal/utils/registryid"
	"github.com/af360bank/financeiro_app/internal/utils/valuenorm"
)

// headerScanLimit bounds the top-down header search. Statement preambles
// (account info, bank branding) never exceed a handful of rows.
const headerScanLimit = 20

// Columns holds the resolved indexes of the canonical fields in a statement
// grid. Document has no dedicated column in either layout; it is extracted
// from the description.
type Columns struct {
	Date        int
	Description int
	Value       int
}

// BankReader locates the header, maps bank-specific columns to canonical
// fields and parses individual rows for one statement layout.
type BankReader interface {
	Bank() domain.BankVariant
	LocateHeader(rows [][]string) (int, error)
	MapColumns(header []string) (Columns, error)
	ParseRow(row []string, cols Columns) (domain.Transaction, error)
}

// ForBank returns the reader for a statement layout.
func ForBank(bank domain.BankVariant) (BankReader, error) {
	switch bank {
	case domain.BankSantander:
		return newSantanderReader(), nil
	case domain.BankItau:
		return newItauReader(), nil
	default:
		return nil, fmt.Errorf("unknown bank variant %q: %w", bank, apperrors.ErrValidation)
	}
}

// aliasReader implements the shared parsing flow; the bank variants only
// differ in their alias tables and sentinel sets.
type aliasReader struct {
	bank        domain.BankVariant
	dateAliases []string
	descAliases []string
	valAliases  []string
	// balanceMarker flags rows that carry a running balance instead of a
	// movement and must be skipped ("" disables the check).
	balanceMarker string
}

func (r *aliasReader) Bank() domain.BankVariant {
	return r.bank
}

// LocateHeader scans the first rows for one that carries both a date-column
// alias and a description-column alias.
func (r *aliasReader) LocateHeader(rows [][]string) (int, error) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		if matchesAny(rows[i], r.dateAliases) && matchesAny(rows[i], r.descAliases) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: no header within first %d rows: %w", r.bank, limit, apperrors.ErrHeaderNotFound)
}

// MapColumns resolves the canonical field indexes from a located header row.
// The error names the available headers so a layout change is diagnosable
// from the job message alone.
func (r *aliasReader) MapColumns(header []string) (Columns, error) {
	cols := Columns{
		Date:        findColumn(header, r.dateAliases),
		Description: findColumn(header, r.descAliases),
		Value:       findColumn(header, r.valAliases),
	}
	if cols.Date < 0 || cols.Description < 0 || cols.Value < 0 {
		return Columns{}, fmt.Errorf("%s: available headers %v: %w", r.bank, header, apperrors.ErrColumnsNotFound)
	}
	return cols, nil
}

// ParseRow normalizes, classifies and extracts the document from one data
// row. Any returned error is row-level: the caller skips the row.
func (r *aliasReader) ParseRow(row []string, cols Columns) (domain.Transaction, error) {
	date, err := valuenorm.ParseDate(cell(row, cols.Date))
	if err != nil {
		return domain.Transaction{}, err
	}

	description := strings.TrimSpace(cell(row, cols.Description))
	if description == "" {
		return domain.Transaction{}, fmt.Errorf("blank description: %w", apperrors.ErrValidation)
	}
	if r.balanceMarker != "" && strings.Contains(strings.ToUpper(description), r.balanceMarker) {
		return domain.Transaction{}, fmt.Errorf("balance-only row: %w", apperrors.ErrValidation)
	}

	value, err := valuenorm.ParseAmount(cell(row, cols.Value))
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.Transaction{
		Date:            date,
		Description:     description,
		Value:           value,
		Type:            classify.Classify(description, value),
		TransactionType: domain.DirectionFor(value),
	}
	if txn.Type.IsPrimary() {
		if m, ok := registryid.Extract(description); ok {
			txn.Document = &m.ID
		}
	}
	return txn, nil
}

// cell returns the idx-th cell or "" when the row is ragged. excelize trims
// trailing empty cells, so short rows are normal.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// findColumn matches aliases by case-insensitive equality first, then by
// substring, mirroring the loose labels seen in real exports.
func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), alias) {
				return i
			}
		}
	}
	for _, alias := range aliases {
		for i, h := range header {
			if h != "" && strings.Contains(strings.ToUpper(h), strings.ToUpper(alias)) {
				return i
			}
		}
	}
	return -1
}

func matchesAny(row []string, aliases []string) bool {
	return findColumn(row, aliases) >= 0
}
