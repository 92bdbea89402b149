package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/spendwise/ledger"
)

type ListCmd struct {
	Month string `help:"Restrict to a month (YYYY-MM)." short:"m"`
	From  string `help:"Range start date (YYYY-MM-DD), inclusive."`
	To    string `help:"Range end date (YYYY-MM-DD), inclusive."`
}

func (cmd *ListCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals)
	defer report()

	if cmd.Month != "" && (cmd.From != "" || cmd.To != "") {
		return fmt.Errorf("--month cannot be combined with --from/--to")
	}
	if (cmd.From == "") != (cmd.To == "") {
		return fmt.Errorf("--from and --to must be provided together")
	}

	l := openLedger(runCtx, ctx, globals)

	var transactions []ledger.Transaction
	switch {
	case cmd.Month != "":
		ym, err := ledger.NewYearMonth(cmd.Month)
		if err != nil {
			return err
		}
		transactions = l.ListByMonth(ym)

	case cmd.From != "":
		start, err := ledger.NewDate(cmd.From)
		if err != nil {
			return err
		}
		end, err := ledger.NewDate(cmd.To)
		if err != nil {
			return err
		}
		if start.Compare(end) > 0 {
			return ledger.NewInvalidRangeError(start, end)
		}
		transactions = l.ListByDateRange(start, end)

	default:
		transactions = l.ListAll()
	}

	if len(transactions) == 0 {
		printInfof(ctx.Stdout, "No transactions.")
		return nil
	}

	printTransactions(ctx.Stdout, transactions)
	printInfof(ctx.Stdout, "%d transaction(s)", len(transactions))

	return nil
}

// Fixed widths cover the widest values each column can hold; the amount
// column grows to fit and is right-aligned.
func printTransactions(w io.Writer, transactions []ledger.Transaction) {
	const (
		idWidth       = 26
		dateWidth     = 10
		kindWidth     = 7
		categoryWidth = 13
	)

	amountWidth := len("AMOUNT")
	for _, txn := range transactions {
		if width := runewidth.StringWidth(ledger.FormatAmount(txn.Amount)); width > amountWidth {
			amountWidth = width
		}
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
		runewidth.FillRight("ID", idWidth),
		runewidth.FillRight("DATE", dateWidth),
		runewidth.FillRight("TYPE", kindWidth),
		runewidth.FillRight("CATEGORY", categoryWidth),
		runewidth.FillLeft("AMOUNT", amountWidth),
		"NOTE",
	)

	for _, txn := range transactions {
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
			runewidth.FillRight(txn.ID, idWidth),
			runewidth.FillRight(txn.Date.String(), dateWidth),
			runewidth.FillRight(string(txn.Kind), kindWidth),
			runewidth.FillRight(string(txn.Category), categoryWidth),
			runewidth.FillLeft(ledger.FormatAmount(txn.Amount), amountWidth),
			txn.Note,
		)
	}
}
