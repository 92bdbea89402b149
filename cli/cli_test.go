package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/spendwise/ledger"
)

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		amount, err := parsePositiveAmount("45.50")
		assert.NoError(t, err)
		assert.Equal(t, ledger.FormatAmount(amount), "$45.50")
	})

	t.Run("RejectsNegative", func(t *testing.T) {
		_, err := parsePositiveAmount("-1")
		assert.Error(t, err)

		var invalid *ledger.InvalidAmountError
		assert.True(t, errors.As(err, &invalid))
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := parsePositiveAmount("lots")
		assert.Error(t, err)
	})
}

func TestParseDateOrToday(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		d, err := parseDateOrToday("")
		assert.NoError(t, err)
		assert.Equal(t, d.Year(), time.Now().Year())
	})

	t.Run("Explicit", func(t *testing.T) {
		d, err := parseDateOrToday("2024-03-05")
		assert.NoError(t, err)
		assert.Equal(t, d.String(), "2024-03-05")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := parseDateOrToday("03/05/2024")
		assert.Error(t, err)
	})
}

func TestParseMonthOrCurrent(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		ym, err := parseMonthOrCurrent("")
		assert.NoError(t, err)
		assert.Equal(t, ym.Year, time.Now().Year())
	})

	t.Run("Explicit", func(t *testing.T) {
		ym, err := parseMonthOrCurrent("2024-03")
		assert.NoError(t, err)
		assert.Equal(t, ym.String(), "2024-03")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := parseMonthOrCurrent("march")
		assert.Error(t, err)
	})
}

func TestPrintTransactions(t *testing.T) {
	transactions := []ledger.Transaction{
		{
			ID:       "01HXAMPLE0000000000000TXN1",
			Date:     ledger.MakeDate(2024, time.March, 1),
			Kind:     ledger.KindIncome,
			Category: ledger.Income,
			Amount:   amtForTest(t, "2000.00"),
			Note:     "salary",
		},
		{
			ID:       "01HXAMPLE0000000000000TXN2",
			Date:     ledger.MakeDate(2024, time.March, 5),
			Kind:     ledger.KindExpense,
			Category: ledger.Food,
			Amount:   amtForTest(t, "45.50"),
			Note:     "lunch",
		},
	}

	var sb strings.Builder
	printTransactions(&sb, transactions)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.Contains(lines[1], "$2000.00"))
	assert.True(t, strings.Contains(lines[2], "FOOD"))
	// Amounts line up on their right edge.
	assert.Equal(t, strings.Index(lines[1], "$2000.00")+len("$2000.00"),
		strings.Index(lines[2], "$45.50")+len("$45.50"))
}

func amtForTest(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	amount, err := ledger.ParseAmount(value)
	assert.NoError(t, err)
	return amount
}
