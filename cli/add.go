package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type AddCmd struct {
	Category string `help:"Expense category." arg:""`
	Amount   string `help:"Amount, e.g. 45.50." arg:""`
	Note     string `help:"Optional note." arg:"" optional:""`
	Date     string `help:"Transaction date (YYYY-MM-DD), defaults to today." short:"d"`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	category, err := ledger.ParseCategory(cmd.Category)
	if err != nil {
		return err
	}

	amount, err := parsePositiveAmount(cmd.Amount)
	if err != nil {
		return err
	}

	date, err := parseDateOrToday(cmd.Date)
	if err != nil {
		return err
	}

	l := openLedger(runCtx, ctx, globals)

	txn, err := l.AddExpense(runCtx, date, category, amount, cmd.Note)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded expense of %s for %s on %s",
		ledger.FormatAmount(txn.Amount), txn.Category, txn.Date))

	return nil
}

func parseDateOrToday(value string) (ledger.Date, error) {
	if value == "" {
		now := time.Now()
		return ledger.MakeDate(now.Year(), now.Month(), now.Day()), nil
	}
	return ledger.NewDate(value)
}

func parsePositiveAmount(value string) (decimal.Decimal, error) {
	amount, err := ledger.ParseAmount(value)
	if err != nil {
		return amount, err
	}
	if amount.Sign() < 0 {
		return amount, ledger.NewInvalidAmountError(value, fmt.Errorf("amount must not be negative"))
	}
	return amount, nil
}
