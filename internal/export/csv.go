package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/b2fa/internal/model"
)

const (
	numFields = 3
	colDate   = 0
	colAmount = 1
	colDesc   = 2
)

// WriteTransactions writes transactions as header-less date,amount,description rows.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates path and writes transactions to it.
func WriteFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteTransactions(f, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// ReadTransactions reads rows written by WriteTransactions.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading converted CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	txns := make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date
	row[colAmount] = txn.Amount
	row[colDesc] = txn.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.Transaction{
		Date:        record[colDate],
		Amount:      record[colAmount],
		Description: record[colDesc],
	}, nil
}

// Total sums the amounts of txns.
func Total(txns []model.Transaction) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, txn := range txns {
		amt, err := decimal.NewFromString(strings.TrimSpace(txn.Amount))
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %d: parsing amount %q: %w", i+1, txn.Amount, err)
		}
		total = total.Add(amt)
	}
	return total, nil
}
