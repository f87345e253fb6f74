package model

import "github.com/shopspring/decimal"

// RawRow is one tokenized input record, fields in column order.
type RawRow []string

// Transaction is one line of the converted output.
type Transaction struct {
	Date        string // dd/mm/yyyy
	Amount      string // negative = paid out, unsigned = paid in
	Description string
}

// StatementRow is a normalized transaction row together with the values
// the bank reported alongside it.
type StatementRow struct {
	Transaction
	Value   decimal.Decimal // numeric form of Amount
	Balance decimal.Decimal // running balance after this transaction
	Line    int             // 1-based input record number
}

// Statement holds the transaction rows of one export in input order
// (newest first).
type Statement struct {
	Rows       []StatementRow
	HeaderLine int // 0 = header marker never seen
	Skipped    int // records discarded before the header
}

// Transactions returns the output rows in input order.
func (s Statement) Transactions() []Transaction {
	txns := make([]Transaction, len(s.Rows))
	for i, r := range s.Rows {
		txns[i] = r.Transaction
	}
	return txns
}

// HeaderFound reports whether the header marker row was seen.
func (s Statement) HeaderFound() bool {
	return s.HeaderLine > 0
}
