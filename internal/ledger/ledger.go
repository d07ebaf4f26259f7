// Package ledger holds the money semantics of the wallet API: amount and
// date parsing, balance aggregation and fixed-point rendering. All arithmetic
// uses exact decimals so balances never drift across many small entries.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finwallet/internal/models"
)

const (
	// Scale is the number of fractional digits kept for amounts and balances.
	Scale = 2
	// MaxIntegerDigits matches the numeric(12,2) column.
	MaxIntegerDigits = 10

	dateLayout = "2006-01-02"
)

var (
	ErrAmountFormat    = errors.New("amount is not a number")
	ErrAmountPositive  = errors.New("amount must be greater than 0")
	ErrAmountPrecision = errors.New("amount has more than 2 decimal places")
	ErrAmountRange     = errors.New("amount is too large")
	ErrDateFormat      = errors.New("date is not a valid calendar date")
)

var maxAmount = decimal.New(1, MaxIntegerDigits)

// Entry is the part of a transaction that contributes to a balance.
type Entry struct {
	Type   models.TransactionType
	Amount decimal.Decimal
}

// ParseAmount parses a user-supplied amount. It must be a plain decimal
// number, strictly positive, with at most two fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, ErrAmountFormat
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrAmountFormat
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrAmountPositive
	}
	if !d.Equal(d.Truncate(Scale)) {
		return decimal.Zero, ErrAmountPrecision
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrAmountRange
	}
	return d.Round(Scale), nil
}

// ParseDate parses a calendar date given as YYYY-MM-DD or as an RFC 3339
// timestamp, keeping only the date part. The result is UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, raw)
		if tsErr != nil {
			return time.Time{}, ErrDateFormat
		}
		t = ts
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Balance returns Σincome − Σexpense rounded to two decimals.
// Entries of any other type are ignored.
func Balance(entries []Entry) decimal.Decimal {
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case models.TransactionTypeIncome:
			income = income.Add(e.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return income.Sub(expense).Round(Scale)
}

// Total sums already-derived wallet balances into an overall balance.
func Total(balances []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	return total.Round(Scale)
}

// Format renders an amount or balance with exactly two fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
