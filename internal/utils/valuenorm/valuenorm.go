// Package valuenorm normalizes the locale-formatted monetary and date cells
// found in Brazilian bank-statement spreadsheets into canonical types.
package valuenorm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/af360bank/financeiro_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order. Day-first layouts come before anything
// ambiguous; the statement sources never use month-first.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/06",
}

// excelEpoch is day zero of the 1900 date system used by xls/xlsx cells.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseAmount converts a statement value cell such as "R$ 1.234,56" or
// "-50,00" into a decimal. The sources use '.' as thousands separator and
// ',' as decimal separator.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty value cell: %w", apperrors.ErrInvalidAmount)
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable value %q: %w", raw, apperrors.ErrInvalidAmount)
	}
	return value, nil
}

// ParseDate converts a statement date cell into a calendar date (midnight
// UTC, no time component). Accepts day-first DD/MM/YYYY, ISO YYYY-MM-DD,
// day-first variants with a time suffix, and raw Excel serial numbers as
// produced by unformatted date cells.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date cell: %w", apperrors.ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}

	// Unformatted date cells come through as serial day counts.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 200000 {
		return truncateToDate(excelEpoch.AddDate(0, 0, int(serial))), nil
	}

	return time.Time{}, fmt.Errorf("unparseable date %q: %w", raw, apperrors.ErrInvalidDate)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
