package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type BudgetCmd struct {
	Category string `help:"Expense category to budget." arg:""`
	Limit    string `help:"Monthly spending limit, e.g. 100.00." arg:""`
}

func (cmd *BudgetCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	category, err := ledger.ParseCategory(cmd.Category)
	if err != nil {
		return err
	}

	limit, err := parsePositiveAmount(cmd.Limit)
	if err != nil {
		return err
	}

	l := openLedger(runCtx, ctx, globals)

	if err := l.SetMonthlyBudget(runCtx, category, limit); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Budget set for %s at %s", category, ledger.FormatAmount(limit)))

	return nil
}
