package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// warnRatio is the fraction of a budget limit at which a warning alert
// fires. Spending at exactly the threshold triggers the warning.
var warnRatio = decimal.New(80, -2) // 0.80, exact

// Alert describes one budget's standing for a month. Over means spending
// exceeded the limit; otherwise the alert is the 80-percent warning and
// Remaining holds limit minus spent.
type Alert struct {
	Category  Category
	Spent     decimal.Decimal
	Limit     decimal.Decimal
	Remaining decimal.Decimal
	Over      bool
}

// Message renders the alert the way the CLI and web layers present it.
func (a Alert) Message() string {
	if a.Over {
		return fmt.Sprintf("%s is over budget. Spent %s of %s",
			a.Category, FormatAmount(a.Spent), FormatAmount(a.Limit))
	}
	return fmt.Sprintf("%s is at 80 percent or more. Spent %s of %s. Remaining %s",
		a.Category, FormatAmount(a.Spent), FormatAmount(a.Limit), FormatAmount(a.Remaining))
}

// BudgetAlerts evaluates every budget against one month's spending.
// A budget yields an over-budget alert when spent > limit, or a warning
// when the limit is positive and spent >= 0.80 * limit (inclusive).
// Budgets are visited in insertion order, which keeps the output
// deterministic within a process run; this is the mapping order, not the
// category declaration order.
func (l *Ledger) BudgetAlerts(ym YearMonth) []Alert {
	alerts := make([]Alert, 0)
	for _, b := range l.Budgets() {
		// A budget for Income can only come from a hand-edited store
		// file; it never alerts.
		if b.Category == Income {
			continue
		}

		spent := l.TotalExpenseByCategory(ym, b.Category)
		if spent.Cmp(b.Limit) > 0 {
			alerts = append(alerts, Alert{
				Category: b.Category,
				Spent:    spent,
				Limit:    b.Limit,
				Over:     true,
			})
			continue
		}

		if b.Limit.Sign() > 0 && spent.Cmp(ScalePercent(b.Limit, warnRatio)) >= 0 {
			alerts = append(alerts, Alert{
				Category:  b.Category,
				Spent:     spent,
				Limit:     b.Limit,
				Remaining: b.Limit.Sub(spent),
			})
		}
	}
	return alerts
}
