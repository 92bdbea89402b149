// Package ledger implements the in-memory personal finance ledger: an
// insertion-ordered collection of income and expense transactions plus a
// category-keyed set of monthly budgets, with query, aggregation and
// budget-alert operations on top.
//
// All monetary arithmetic uses decimal values to avoid floating point
// precision issues. Query results are freshly produced slices, never live
// views of internal state, so callers cannot mutate the ledger behind its
// back.
//
// Every mutating operation persists the full ledger state through the
// attached Persister before returning. A failed persist is reported to the
// caller but the in-memory mutation is kept; memory and disk can diverge
// after a failed save.
//
// Example usage:
//
//	l, err := store.Open(ctx, "spendwise.csv")
//	if err != nil {
//	    // store kept going with an empty ledger; err is the diagnostic
//	}
//	txn, err := l.AddExpense(ctx, date, ledger.Food, amount, "lunch")
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/spendwise/telemetry"
)

// Persister writes the complete ledger state to durable storage. The store
// package provides the canonical implementation; tests substitute fakes.
type Persister interface {
	Save(ctx context.Context, l *Ledger) error
}

// Ledger is the aggregate root: transactions in insertion order plus
// budgets keyed by category. A ledger instance exclusively owns its state
// and is bound to at most one backing store.
//
// Ledger is not safe for concurrent use; all operations are synchronous
// and run to completion before the caller regains control.
type Ledger struct {
	transactions []Transaction
	budgets      map[Category]Budget
	budgetOrder  []Category
	persister    Persister
}

// Option configures a new ledger.
type Option func(*Ledger)

// WithPersister attaches the persister invoked after every mutation.
func WithPersister(p Persister) Option {
	return func(l *Ledger) {
		l.persister = p
	}
}

// New creates a new empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		transactions: make([]Transaction, 0),
		budgets:      make(map[Category]Budget),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// SetPersister attaches or replaces the persister. The store attaches
// itself after a load so that restoring state does not write it back.
func (l *Ledger) SetPersister(p Persister) {
	l.persister = p
}

// Restore replaces the ledger state with previously persisted records.
// Budgets keep the given order as their iteration order. Restore does not
// trigger a persist; it exists for the store's load path.
func (l *Ledger) Restore(transactions []Transaction, budgets []Budget) {
	l.transactions = append(l.transactions[:0], transactions...)
	l.budgets = make(map[Category]Budget, len(budgets))
	l.budgetOrder = l.budgetOrder[:0]
	for _, b := range budgets {
		l.putBudget(b)
	}
}

// AddIncome records an income transaction and persists the ledger. The
// returned transaction carries the generated id. Income always lands in
// the Income category.
func (l *Ledger) AddIncome(ctx context.Context, date Date, amount decimal.Decimal, note string) (Transaction, error) {
	txn := newIncome(date, amount, note)
	l.transactions = append(l.transactions, txn)
	return txn, l.persist(ctx)
}

// AddExpense records an expense transaction and persists the ledger.
// Income is not a spending category; using it fails with an
// InvalidCategoryError and leaves the ledger unchanged.
func (l *Ledger) AddExpense(ctx context.Context, date Date, category Category, amount decimal.Decimal, note string) (Transaction, error) {
	if category == Income {
		return Transaction{}, NewIncomeCategoryError("expenses require a non-income category")
	}

	txn := newExpense(date, category, amount, note)
	l.transactions = append(l.transactions, txn)
	return txn, l.persist(ctx)
}

// SetMonthlyBudget inserts or replaces the budget for a category and
// persists the ledger. Budgeting the Income category fails with an
// InvalidCategoryError.
func (l *Ledger) SetMonthlyBudget(ctx context.Context, category Category, limit decimal.Decimal) error {
	if category == Income {
		return NewIncomeCategoryError("budgets require a non-income category")
	}

	l.putBudget(Budget{Category: category, Limit: limit})
	return l.persist(ctx)
}

// putBudget applies map semantics while tracking insertion order for
// deterministic iteration within a process run.
func (l *Ledger) putBudget(b Budget) {
	if _, ok := l.budgets[b.Category]; !ok {
		l.budgetOrder = append(l.budgetOrder, b.Category)
	}
	l.budgets[b.Category] = b
}

// ListAll returns every transaction sorted by date ascending. Transactions
// sharing a date keep their insertion order; the sort is stable because
// dates are not unique.
func (l *Ledger) ListAll() []Transaction {
	return sortByDate(append([]Transaction(nil), l.transactions...))
}

// ListByMonth returns the transactions of one calendar month, sorted as
// ListAll sorts.
func (l *Ledger) ListByMonth(ym YearMonth) []Transaction {
	out := make([]Transaction, 0)
	for _, txn := range l.transactions {
		if ym.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return sortByDate(out)
}

// ListByDateRange returns the transactions with start <= date <= end,
// inclusive on both ends, sorted as ListAll sorts. The engine does not
// validate start <= end; an inverted range simply matches nothing.
// Callers wanting a diagnostic check the range first (see
// InvalidRangeError).
func (l *Ledger) ListByDateRange(start, end Date) []Transaction {
	out := make([]Transaction, 0)
	for _, txn := range l.transactions {
		if txn.Date.Compare(start) >= 0 && txn.Date.Compare(end) <= 0 {
			out = append(out, txn)
		}
	}
	return sortByDate(out)
}

// TotalIncome sums the income transactions of one month. Zero when none.
func (l *Ledger) TotalIncome(ym YearMonth) decimal.Decimal {
	return l.sum(ym, KindIncome, nil)
}

// TotalExpense sums the expense transactions of one month.
func (l *Ledger) TotalExpense(ym YearMonth) decimal.Decimal {
	return l.sum(ym, KindExpense, nil)
}

// TotalExpenseByCategory sums one month's expenses for a single category.
func (l *Ledger) TotalExpenseByCategory(ym YearMonth, category Category) decimal.Decimal {
	return l.sum(ym, KindExpense, &category)
}

// Net returns income minus expense for one month.
func (l *Ledger) Net(ym YearMonth) decimal.Decimal {
	return l.TotalIncome(ym).Sub(l.TotalExpense(ym))
}

func (l *Ledger) sum(ym YearMonth, kind Kind, category *Category) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range l.transactions {
		if !ym.Contains(txn.Date) || txn.Kind != kind {
			continue
		}
		if category != nil && txn.Category != *category {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}

// Budgets returns the budgets in insertion order, as a fresh snapshot.
func (l *Ledger) Budgets() []Budget {
	out := make([]Budget, 0, len(l.budgetOrder))
	for _, c := range l.budgetOrder {
		out = append(out, l.budgets[c])
	}
	return out
}

// Transactions returns the transactions in insertion order, as a fresh
// snapshot. The store serializes from this; display paths use the sorted
// List variants instead.
func (l *Ledger) Transactions() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}

// persist writes the full state through the attached persister. A nil
// persister makes the ledger purely in-memory (used by tests and by the
// store during load).
func (l *Ledger) persist(ctx context.Context) error {
	if l.persister == nil {
		return nil
	}

	timer := telemetry.FromContext(ctx).Start("ledger.persist")
	defer timer.End()

	return l.persister.Save(ctx, l)
}

// sortByDate stable-sorts transactions chronologically in place and
// returns the slice. Insertion order breaks date ties.
func sortByDate(txns []Transaction) []Transaction {
	slices.SortStableFunc(txns, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return txns
}
