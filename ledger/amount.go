package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// All monetary values flow through decimal.Decimal so repeated sums stay
// exact; nothing in the money pipeline converts through binary floats.
// Addition, subtraction, comparison and sign tests use the decimal methods
// (Add, Sub, Cmp, Sign) directly.

// ParseAmount converts text to an exact decimal amount.
func ParseAmount(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, NewInvalidAmountError(value, err)
	}
	return d, nil
}

// ScalePercent multiplies an amount by an exact decimal ratio, e.g. 0.80
// for the budget warning threshold. The product keeps full precision.
func ScalePercent(amount, ratio decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratio)
}

// FormatAmount renders an amount as "$X.XX", rounded to two decimal places
// with halves rounding away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
