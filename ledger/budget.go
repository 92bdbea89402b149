package ledger

import (
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending ceiling for one category. At most one
// budget exists per category; setting a budget for a category that
// already has one replaces it. Budgets are never deleted.
type Budget struct {
	Category Category
	Limit    decimal.Decimal
}
