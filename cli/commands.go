package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	File      string `help:"Ledger file path." short:"f" default:"spendwise.csv" type:"path"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Add         AddCmd         `cmd:"" help:"Record an expense."`
	Income      IncomeCmd      `cmd:"" help:"Record an income."`
	List        ListCmd        `cmd:"" help:"List transactions."`
	Summary     SummaryCmd     `cmd:"" help:"Show a monthly summary."`
	Budget      BudgetCmd      `cmd:"" help:"Set a monthly budget for a category."`
	Alerts      AlertsCmd      `cmd:"" help:"Show budget alerts for a month."`
	Interactive InteractiveCmd `cmd:"" help:"Run the interactive menu."`
	Web         WebCmd         `cmd:"" help:"Start a read-only web server."`
}
