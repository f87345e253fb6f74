package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatementTransactions(t *testing.T) {
	s := Statement{
		Rows: []StatementRow{
			{Transaction: Transaction{Date: "02/01/2025", Amount: "-4.00", Description: "GITHUB"}, Balance: decimal.NewFromInt(96)},
			{Transaction: Transaction{Date: "01/01/2025", Amount: "100.00", Description: "SALARY"}, Balance: decimal.NewFromInt(100)},
		},
		HeaderLine: 3,
	}

	txns := s.Transactions()
	assert.Len(t, txns, 2)
	assert.Equal(t, "GITHUB", txns[0].Description)
	assert.Equal(t, "100.00", txns[1].Amount)
	assert.True(t, s.HeaderFound())
}

func TestStatementEmpty(t *testing.T) {
	var s Statement
	assert.Empty(t, s.Transactions())
	assert.False(t, s.HeaderFound())
}
