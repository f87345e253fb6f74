package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHelpers(t *testing.T) {
	// Date: pure separator substitution.
	assert.Equal(t, "05/06/2021", NormalizeDate("05-06-2021", "-", "/"))
	assert.Equal(t, "2021.06.05/x", NormalizeDate("2021.06.05-x", "-", "/"))
	assert.Equal(t, "99/99/9999", NormalizeDate("99-99-9999", "-", "/"))
	assert.Equal(t, "05-06-2021", NormalizeDate("05-06-2021", "", "/"))

	// Description: quotes removed, then trimmed.
	assert.Equal(t, "Coffee Shop", CleanDescription(`  "Coffee Shop"  `))
	assert.Equal(t, "Say hi", CleanDescription(`Say "hi"`))
	assert.Equal(t, "", CleanDescription(`   ""  `))

	// Currency: commas and quotes removed, nothing else.
	assert.Equal(t, "1234.56", CleanCurrency(`"1,234.56"`))
	assert.Equal(t, "1000000.00", CleanCurrency("1,000,000.00"))
	assert.Equal(t, " 3.50 ", CleanCurrency(" 3.50 "))
}

func TestMergeAmount(t *testing.T) {
	tests := []struct {
		debit, credit string
		isCredit      bool
		want          string
	}{
		{"0.00", "1250.00", true, "1250.00"},
		{"3.50", "0.00", false, "-3.50"},
		{"0", "5.00", false, "-0"},
		{"0.00 ", "5.00", false, "-0.00 "},
		{"1234.56", "", false, "-1234.56"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MergeAmount(tt.debit, tt.credit, tt.isCredit), "debit %q credit %q", tt.debit, tt.credit)
	}
}

func TestIsCredit(t *testing.T) {
	p := newParser()
	assert.True(t, p.isCredit("0.00"))
	assert.False(t, p.isCredit("0"))
	assert.False(t, p.isCredit("0.00 "))
	assert.False(t, p.isCredit(""))

	p.amounts.Classify = "numeric"
	assert.True(t, p.isCredit("0"))
	assert.True(t, p.isCredit("0.00 "))
	assert.True(t, p.isCredit(""))
	assert.False(t, p.isCredit("0.01"))
	assert.False(t, p.isCredit("abc"))
}

func TestScanPhaseString(t *testing.T) {
	assert.Equal(t, "seeking-header", seekingHeader.String())
	assert.Equal(t, "collecting", collecting.String())
	assert.Equal(t, "done", done.String())
	assert.Equal(t, "phase(7)", scanPhase(7).String())
}
