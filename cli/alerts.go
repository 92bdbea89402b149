package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type AlertsCmd struct {
	Month string `help:"Month to check (YYYY-MM), defaults to the current month." short:"m"`
}

func (cmd *AlertsCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	ym, err := parseMonthOrCurrent(cmd.Month)
	if err != nil {
		return err
	}

	l := openLedger(runCtx, ctx, globals)

	alerts := l.BudgetAlerts(ym)
	if len(alerts) == 0 {
		printInfof(ctx.Stdout, "No alerts for %s.", ym)
		return nil
	}

	for _, alert := range alerts {
		style := warnStyle
		if alert.Over {
			style = errorStyle
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s\n", style.Render(alertSymbol), alert.Message())
	}

	return nil
}
