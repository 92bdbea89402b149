package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type InteractiveCmd struct{}

const (
	menuAddExpense = "Add expense"
	menuAddIncome  = "Add income"
	menuListAll    = "List all transactions"
	menuListMonth  = "List transactions by month"
	menuListRange  = "List transactions by date range"
	menuSummary    = "Monthly summary"
	menuSetBudget  = "Set a budget"
	menuAlerts     = "Budget alerts"
	menuQuit       = "Quit"
)

func (cmd *InteractiveCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	runCtx, report := runContext(ctx, globals)
	defer report()

	l := openLedger(runCtx, ctx, globals)

	for {
		var choice string

		form := huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(
				huh.NewOption(menuAddExpense, menuAddExpense),
				huh.NewOption(menuAddIncome, menuAddIncome),
				huh.NewOption(menuListAll, menuListAll),
				huh.NewOption(menuListMonth, menuListMonth),
				huh.NewOption(menuListRange, menuListRange),
				huh.NewOption(menuSummary, menuSummary),
				huh.NewOption(menuSetBudget, menuSetBudget),
				huh.NewOption(menuAlerts, menuAlerts),
				huh.NewOption(menuQuit, menuQuit),
			).
			Value(&choice)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if choice == menuQuit {
			return nil
		}

		if err := runChoice(ctx, runCtx, l, choice); err != nil {
			// Escape from a sub-prompt returns to the menu.
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

func runChoice(ctx *kong.Context, runCtx context.Context, l *ledger.Ledger, choice string) error {
	switch choice {
	case menuAddExpense:
		return addExpensePrompt(ctx, runCtx, l)

	case menuAddIncome:
		return addIncomePrompt(ctx, runCtx, l)

	case menuListAll:
		showTransactions(ctx, l.ListAll())

	case menuListMonth:
		ym, err := askMonth()
		if err != nil {
			return err
		}
		showTransactions(ctx, l.ListByMonth(ym))

	case menuListRange:
		start, end, err := askDateRange()
		if err != nil {
			return err
		}
		showTransactions(ctx, l.ListByDateRange(start, end))

	case menuSummary:
		ym, err := askMonth()
		if err != nil {
			return err
		}
		showSummary(ctx, l, ym)

	case menuSetBudget:
		return setBudgetPrompt(ctx, runCtx, l)

	case menuAlerts:
		ym, err := askMonth()
		if err != nil {
			return err
		}
		showAlerts(ctx, l, ym)
	}
	return nil
}

func addExpensePrompt(ctx *kong.Context, runCtx context.Context, l *ledger.Ledger) error {
	category, err := askCategory("Category")
	if err != nil {
		return err
	}
	amount, err := askAmount("Amount")
	if err != nil {
		return err
	}
	date, err := askDate("Date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return err
	}
	note, err := askNote()
	if err != nil {
		return err
	}

	txn, err := l.AddExpense(runCtx, date, category, amount, note)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded expense of %s for %s on %s",
		ledger.FormatAmount(txn.Amount), txn.Category, txn.Date))
	return nil
}

func addIncomePrompt(ctx *kong.Context, runCtx context.Context, l *ledger.Ledger) error {
	amount, err := askAmount("Amount")
	if err != nil {
		return err
	}
	date, err := askDate("Date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return err
	}
	note, err := askNote()
	if err != nil {
		return err
	}

	txn, err := l.AddIncome(runCtx, date, amount, note)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded income of %s on %s",
		ledger.FormatAmount(txn.Amount), txn.Date))
	return nil
}

func setBudgetPrompt(ctx *kong.Context, runCtx context.Context, l *ledger.Ledger) error {
	category, err := askCategory("Category to budget")
	if err != nil {
		return err
	}
	limit, err := askAmount("Monthly limit")
	if err != nil {
		return err
	}

	if err := l.SetMonthlyBudget(runCtx, category, limit); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Budget set for %s at %s", category, ledger.FormatAmount(limit)))
	return nil
}

func showTransactions(ctx *kong.Context, transactions []ledger.Transaction) {
	if len(transactions) == 0 {
		printInfof(ctx.Stdout, "No transactions.")
		return
	}
	printTransactions(ctx.Stdout, transactions)
	printInfof(ctx.Stdout, "%d transaction(s)", len(transactions))
}

func showSummary(ctx *kong.Context, l *ledger.Ledger, ym ledger.YearMonth) {
	printInfof(ctx.Stdout, "Summary for %s", ym)
	_, _ = fmt.Fprintf(ctx.Stdout, "  Income:   %s\n", ledger.FormatAmount(l.TotalIncome(ym)))
	_, _ = fmt.Fprintf(ctx.Stdout, "  Expenses: %s\n", ledger.FormatAmount(l.TotalExpense(ym)))
	_, _ = fmt.Fprintf(ctx.Stdout, "  Net:      %s\n", ledger.FormatAmount(l.Net(ym)))

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
}

func showAlerts(ctx *kong.Context, l *ledger.Ledger, ym ledger.YearMonth) {
	alerts := l.BudgetAlerts(ym)
	if len(alerts) == 0 {
		printInfof(ctx.Stdout, "No alerts for %s.", ym)
		return
	}
	for _, alert := range alerts {
		style := warnStyle
		if alert.Over {
			style = errorStyle
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s\n", style.Render(alertSymbol), alert.Message())
	}
}

func askCategory(title string) (ledger.Category, error) {
	options := make([]huh.Option[ledger.Category], 0)
	for _, category := range ledger.ExpenseCategories() {
		options = append(options, huh.NewOption(string(category), category))
	}

	var category ledger.Category
	form := huh.NewSelect[ledger.Category]().
		Title(title).
		Options(options...).
		Value(&category)

	if err := form.Run(); err != nil {
		return category, err
	}
	return category, nil
}

func askAmount(title string) (decimal.Decimal, error) {
	var value string
	form := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			_, err := parsePositiveAmount(s)
			return err
		}).
		Value(&value)

	if err := form.Run(); err != nil {
		return decimal.Zero, err
	}
	return parsePositiveAmount(value)
}

func askDate(title string) (ledger.Date, error) {
	var value string
	form := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			_, err := parseDateOrToday(s)
			return err
		}).
		Value(&value)

	if err := form.Run(); err != nil {
		return ledger.Date{}, err
	}
	return parseDateOrToday(value)
}

func askNote() (string, error) {
	var note string
	form := huh.NewInput().
		Title("Note (optional)").
		Value(&note)

	if err := form.Run(); err != nil {
		return "", err
	}
	return note, nil
}

func askMonth() (ledger.YearMonth, error) {
	var value string
	form := huh.NewInput().
		Title("Month (YYYY-MM, empty for current)").
		Validate(func(s string) error {
			_, err := parseMonthOrCurrent(s)
			return err
		}).
		Value(&value)

	if err := form.Run(); err != nil {
		return ledger.YearMonth{}, err
	}
	return parseMonthOrCurrent(value)
}

func askDateRange() (ledger.Date, ledger.Date, error) {
	start, err := askDate("Start date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return ledger.Date{}, ledger.Date{}, err
	}
	end, err := askDate("End date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return ledger.Date{}, ledger.Date{}, err
	}
	if start.Compare(end) > 0 {
		return ledger.Date{}, ledger.Date{}, ledger.NewInvalidRangeError(start, end)
	}
	return start, end, nil
}
