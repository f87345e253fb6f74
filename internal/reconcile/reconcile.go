package reconcile

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/b2fa/internal/model"
)

// ErrUnbalanced is returned when a strict run finds a balance mismatch.
var ErrUnbalanced = errors.New("running balance does not reconcile")

// Ledger holds the balances the bank reported at both ends of a statement.
type Ledger struct {
	Start decimal.Decimal // balance on the oldest row
	End   decimal.Decimal // balance on the newest row
}

// Result is the outcome of replaying a statement.
type Result struct {
	Ledger
	Computed    decimal.Decimal
	Discrepancy decimal.Decimal // always non-negative
	Balanced    bool
	Rows        int
}

// LedgerFrom reads the start and end balances off rows ordered newest first.
func LedgerFrom(rows []model.StatementRow) Ledger {
	var l Ledger
	for i, r := range rows {
		if i == 0 {
			l.End = r.Balance
		}
		l.Start = r.Balance
	}
	return l
}

// Reconcile replays rows (newest first, as exported) in chronological order
// from the start balance and compares the result with the end balance.
// The oldest transaction is already included in the start balance, so it
// is not added again.
func Reconcile(rows []model.StatementRow) Result {
	ledger := LedgerFrom(rows)
	balance := ledger.Start

	chronological := make([]model.StatementRow, len(rows))
	for i, r := range rows {
		chronological[len(rows)-1-i] = r
	}
	if len(chronological) > 0 {
		for _, r := range chronological[1:] {
			balance = balance.Add(r.Value)
		}
	}

	computed := balance.Round(2)
	end := ledger.End.Round(2)
	return Result{
		Ledger:      ledger,
		Computed:    computed,
		Discrepancy: computed.Sub(end).Abs(),
		Balanced:    computed.Equal(end),
		Rows:        len(rows),
	}
}

// Err returns ErrUnbalanced wrapped with the discrepancy, or nil.
func (r Result) Err() error {
	if r.Balanced {
		return nil
	}
	return fmt.Errorf("%w: off by %s", ErrUnbalanced, r.Discrepancy.StringFixed(2))
}

// WriteWarning prints the mismatch report shown to the user. It writes
// nothing for a balanced result.
func (r Result) WriteWarning(w io.Writer, symbol string) error {
	if r.Balanced {
		return nil
	}
	money := func(d decimal.Decimal) string {
		if d.IsNegative() {
			return "-" + symbol + d.Abs().StringFixed(2)
		}
		return symbol + d.StringFixed(2)
	}
	_, err := fmt.Fprintf(w,
		"WARNING: balances do not reconcile\n"+
			"  Start balance:    %s\n"+
			"  End balance:      %s\n"+
			"  Computed balance: %s\n"+
			"  Discrepancy:      %s\n",
		money(r.Start), money(r.End), money(r.Computed), money(r.Discrepancy))
	return err
}
