package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type IncomeCmd struct {
	Amount string `help:"Amount, e.g. 2000.00." arg:""`
	Note   string `help:"Optional note." arg:"" optional:""`
	Date   string `help:"Transaction date (YYYY-MM-DD), defaults to today." short:"d"`
}

func (cmd *IncomeCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	amount, err := parsePositiveAmount(cmd.Amount)
	if err != nil {
		return err
	}

	date, err := parseDateOrToday(cmd.Date)
	if err != nil {
		return err
	}

	l := openLedger(runCtx, ctx, globals)

	txn, err := l.AddIncome(runCtx, date, amount, cmd.Note)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded income of %s on %s",
		ledger.FormatAmount(txn.Amount), txn.Date))

	return nil
}
