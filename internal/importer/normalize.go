package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/b2fa/internal/config"
	"github.com/cleared-dev/b2fa/internal/model"
)

// normalize converts one transaction record into a StatementRow.
func (p *Parser) normalize(rec model.RawRow) (model.StatementRow, error) {
	cols := p.input.Columns
	if len(rec) < cols.Width() {
		return model.StatementRow{}, fmt.Errorf("expected at least %d fields, got %d", cols.Width(), len(rec))
	}

	debit := CleanCurrency(rec[cols.Debit])
	credit := CleanCurrency(rec[cols.Credit])
	amount := MergeAmount(debit, credit, p.isCredit(debit))

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.StatementRow{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	rawBalance := CleanCurrency(rec[cols.Balance])
	balance, err := decimal.NewFromString(strings.TrimSpace(rawBalance))
	if err != nil {
		return model.StatementRow{}, fmt.Errorf("parsing balance %q: %w", rawBalance, err)
	}

	return model.StatementRow{
		Transaction: model.Transaction{
			Date:        NormalizeDate(rec[cols.Date], p.input.DateSeparator, p.output.DateSeparator),
			Amount:      amount,
			Description: CleanDescription(rec[cols.Description]),
		},
		Value:   value,
		Balance: balance,
	}, nil
}

// isCredit decides whether a row is money paid in from its cleaned debit
// field. In literal mode any debit that does not read exactly as the zero
// literal counts as a debit, so "0" or "0.00 " become "-0" and "-0.00 ".
func (p *Parser) isCredit(debit string) bool {
	if p.amounts.Classify == config.ClassifyNumeric {
		s := strings.TrimSpace(debit)
		if s == "" {
			return true
		}
		d, err := decimal.NewFromString(s)
		return err == nil && d.IsZero()
	}
	return debit == p.amounts.ZeroLiteral
}

// NormalizeDate replaces every from separator with to. The result is not
// checked against the calendar.
func NormalizeDate(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}

// CleanDescription removes quote characters and surrounding whitespace.
func CleanDescription(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// CleanCurrency removes thousands separators and quote characters.
func CleanCurrency(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, ",", ""), `"`, "")
}

// MergeAmount folds the debit and credit columns into one signed amount.
// Credits keep the credit text as is; debits get a leading "-".
func MergeAmount(debit, credit string, isCredit bool) string {
	if isCredit {
		return credit
	}
	return "-" + debit
}
