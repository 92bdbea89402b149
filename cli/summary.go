package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type SummaryCmd struct {
	Month string `help:"Month to summarize (YYYY-MM), defaults to the current month." short:"m"`
}

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	ym, err := parseMonthOrCurrent(cmd.Month)
	if err != nil {
		return err
	}

	l := openLedger(runCtx, ctx, globals)

	income := l.TotalIncome(ym)
	expense := l.TotalExpense(ym)
	net := l.Net(ym)

	printInfof(ctx.Stdout, "Summary for %s", ym)
	_, _ = fmt.Fprintf(ctx.Stdout, "  Income:   %s\n", ledger.FormatAmount(income))
	_, _ = fmt.Fprintf(ctx.Stdout, "  Expenses: %s\n", ledger.FormatAmount(expense))
	_, _ = fmt.Fprintf(ctx.Stdout, "  Net:      %s\n", ledger.FormatAmount(net))

	if expense.IsZero() {
		return nil
	}

	_, _ = fmt.Fprintln(ctx.Stdout)
	for _, category := range ledger.ExpenseCategories() {
		total := l.TotalExpenseByCategory(ym, category)
		if total.IsZero() {
			continue
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "  %s %s\n",
			runewidth.FillRight(string(category), 13),
			ledger.FormatAmount(total),
		)
	}

	return nil
}

func parseMonthOrCurrent(value string) (ledger.YearMonth, error) {
	if value == "" {
		now := time.Now()
		return ledger.YearMonth{Year: now.Year(), Month: now.Month()}, nil
	}
	return ledger.NewYearMonth(value)
}
