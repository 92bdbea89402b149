package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// fakePersister records persist calls so tests can assert the
// persist-on-mutation contract without touching the filesystem.
type fakePersister struct {
	saves int
	err   error
}

func (p *fakePersister) Save(ctx context.Context, l *Ledger) error {
	p.saves++
	return p.err
}

func amt(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestAddIncome(t *testing.T) {
	l := New()

	txn, err := l.AddIncome(context.Background(), MakeDate(2024, time.March, 1), amt("2000.00"), "salary")
	assert.NoError(t, err)

	assert.NotEqual(t, txn.ID, "")
	assert.Equal(t, txn.Kind, KindIncome)
	assert.Equal(t, txn.Category, Income)
	assert.Equal(t, txn.Note, "salary")
	assert.True(t, txn.Amount.Equal(amt("2000.00")))
}

func TestAddExpense(t *testing.T) {
	t.Run("RecordsTransaction", func(t *testing.T) {
		l := New()

		txn, err := l.AddExpense(context.Background(), MakeDate(2024, time.March, 5), Food, amt("45.50"), "lunch")
		assert.NoError(t, err)
		assert.Equal(t, txn.Kind, KindExpense)
		assert.Equal(t, txn.Category, Food)
		assert.Equal(t, len(l.ListAll()), 1)
	})

	t.Run("RejectsIncomeCategory", func(t *testing.T) {
		l := New()

		_, err := l.AddExpense(context.Background(), MakeDate(2024, time.March, 5), Income, amt("10.00"), "")
		assert.Error(t, err)

		var invalid *InvalidCategoryError
		assert.True(t, errors.As(err, &invalid))

		// The ledger must be unchanged after the rejection.
		assert.Equal(t, len(l.ListAll()), 0)
	})
}

// TestListAll_StableSort verifies chronological order with insertion order
// breaking date ties, since dates are not unique.
func TestListAll_StableSort(t *testing.T) {
	l := New()
	ctx := context.Background()
	day := MakeDate(2024, time.March, 5)

	first, _ := l.AddExpense(ctx, day, Food, amt("10"), "first")
	second, _ := l.AddExpense(ctx, day, Transport, amt("20"), "second")
	earlier, _ := l.AddIncome(ctx, MakeDate(2024, time.March, 1), amt("100"), "")

	all := l.ListAll()
	assert.Equal(t, len(all), 3)
	assert.Equal(t, all[0].ID, earlier.ID)
	assert.Equal(t, all[1].ID, first.ID)
	assert.Equal(t, all[2].ID, second.ID)
}

func TestListByMonth(t *testing.T) {
	l := New()
	ctx := context.Background()

	income, _ := l.AddIncome(ctx, MakeDate(2024, time.March, 1), amt("2000.00"), "salary")
	expense, _ := l.AddExpense(ctx, MakeDate(2024, time.March, 5), Food, amt("45.50"), "lunch")
	l.AddExpense(ctx, MakeDate(2024, time.April, 2), Food, amt("12.00"), "other month")

	march := l.ListByMonth(YearMonth{Year: 2024, Month: time.March})
	assert.Equal(t, len(march), 2)
	assert.Equal(t, march[0].ID, income.ID)
	assert.Equal(t, march[1].ID, expense.ID)
}

// TestListByDateRange verifies both bounds are inclusive and that an
// inverted range matches nothing rather than failing; range validation is
// a caller concern.
func TestListByDateRange(t *testing.T) {
	l := New()
	ctx := context.Background()

	l.AddExpense(ctx, MakeDate(2024, time.February, 29), Food, amt("1"), "before")
	onStart, _ := l.AddExpense(ctx, MakeDate(2024, time.March, 1), Food, amt("2"), "on start")
	within, _ := l.AddExpense(ctx, MakeDate(2024, time.March, 10), Food, amt("3"), "within")
	onEnd, _ := l.AddExpense(ctx, MakeDate(2024, time.March, 31), Food, amt("4"), "on end")
	l.AddExpense(ctx, MakeDate(2024, time.April, 1), Food, amt("5"), "after")

	start := MakeDate(2024, time.March, 1)
	end := MakeDate(2024, time.March, 31)

	got := l.ListByDateRange(start, end)
	assert.Equal(t, len(got), 3)
	assert.Equal(t, got[0].ID, onStart.ID)
	assert.Equal(t, got[1].ID, within.ID)
	assert.Equal(t, got[2].ID, onEnd.ID)

	assert.Equal(t, len(l.ListByDateRange(end, start)), 0)
}

func TestTotals(t *testing.T) {
	l := New()
	ctx := context.Background()
	march := YearMonth{Year: 2024, Month: time.March}

	l.AddExpense(ctx, MakeDate(2024, time.March, 5), Food, amt("45.50"), "lunch")
	l.AddIncome(ctx, MakeDate(2024, time.March, 1), amt("2000.00"), "salary")
	l.AddExpense(ctx, MakeDate(2024, time.March, 12), Transport, amt("9.75"), "bus")
	l.AddExpense(ctx, MakeDate(2024, time.April, 2), Food, amt("99"), "other month")

	assert.True(t, l.TotalIncome(march).Equal(amt("2000.00")))
	assert.True(t, l.TotalExpense(march).Equal(amt("55.25")))
	assert.True(t, l.TotalExpenseByCategory(march, Food).Equal(amt("45.50")))
	assert.True(t, l.TotalExpenseByCategory(march, Transport).Equal(amt("9.75")))
	assert.True(t, l.TotalExpenseByCategory(march, Housing).IsZero())
	assert.True(t, l.Net(march).Equal(amt("1944.75")))

	empty := YearMonth{Year: 2020, Month: time.January}
	assert.True(t, l.TotalIncome(empty).IsZero())
	assert.True(t, l.TotalExpense(empty).IsZero())
}

func TestSetMonthlyBudget(t *testing.T) {
	t.Run("ReplaceKeepsInsertionOrder", func(t *testing.T) {
		l := New()
		ctx := context.Background()

		assert.NoError(t, l.SetMonthlyBudget(ctx, Transport, amt("50")))
		assert.NoError(t, l.SetMonthlyBudget(ctx, Food, amt("100")))
		assert.NoError(t, l.SetMonthlyBudget(ctx, Transport, amt("75")))

		budgets := l.Budgets()
		assert.Equal(t, len(budgets), 2)
		assert.Equal(t, budgets[0].Category, Transport)
		assert.True(t, budgets[0].Limit.Equal(amt("75")))
		assert.Equal(t, budgets[1].Category, Food)
	})

	t.Run("RejectsIncome", func(t *testing.T) {
		l := New()

		err := l.SetMonthlyBudget(context.Background(), Income, amt("100"))
		assert.Error(t, err)

		var invalid *InvalidCategoryError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, len(l.Budgets()), 0)
	})
}

// TestPersistOnMutation verifies every mutating operation triggers exactly
// one full persist, and queries trigger none.
func TestPersistOnMutation(t *testing.T) {
	p := &fakePersister{}
	l := New(WithPersister(p))
	ctx := context.Background()

	l.AddIncome(ctx, MakeDate(2024, time.March, 1), amt("100"), "")
	l.AddExpense(ctx, MakeDate(2024, time.March, 2), Food, amt("10"), "")
	l.SetMonthlyBudget(ctx, Food, amt("50"))
	assert.Equal(t, p.saves, 3)

	l.ListAll()
	l.ListByMonth(YearMonth{Year: 2024, Month: time.March})
	l.TotalExpense(YearMonth{Year: 2024, Month: time.March})
	l.BudgetAlerts(YearMonth{Year: 2024, Month: time.March})
	assert.Equal(t, p.saves, 3)
}

// TestSaveFailureKeepsMutation verifies a failed persist is surfaced but
// the in-memory state keeps the mutation; memory and disk may diverge.
func TestSaveFailureKeepsMutation(t *testing.T) {
	p := &fakePersister{err: errors.New("disk full")}
	l := New(WithPersister(p))

	_, err := l.AddIncome(context.Background(), MakeDate(2024, time.March, 1), amt("100"), "")
	assert.Error(t, err)
	assert.Equal(t, len(l.ListAll()), 1)
}

// TestRestore verifies restoring persisted records does not write them
// back out and keeps budget order.
func TestRestore(t *testing.T) {
	p := &fakePersister{}
	l := New(WithPersister(p))

	l.Restore(
		[]Transaction{
			{ID: "a", Date: MakeDate(2024, time.March, 5), Kind: KindExpense, Category: Food, Amount: amt("45.50"), Note: "lunch"},
		},
		[]Budget{
			{Category: Shopping, Limit: amt("200")},
			{Category: Food, Limit: amt("100")},
		},
	)

	assert.Equal(t, p.saves, 0)
	assert.Equal(t, len(l.ListAll()), 1)

	budgets := l.Budgets()
	assert.Equal(t, budgets[0].Category, Shopping)
	assert.Equal(t, budgets[1].Category, Food)
}

// TestQueriesReturnFreshSlices verifies read results are snapshots, not
// live views; mutating them must not bypass the engine.
func TestQueriesReturnFreshSlices(t *testing.T) {
	l := New()
	ctx := context.Background()

	l.AddExpense(ctx, MakeDate(2024, time.March, 5), Food, amt("10"), "")

	all := l.ListAll()
	all[0].Note = "tampered"
	all = all[:0]

	fresh := l.ListAll()
	assert.Equal(t, len(fresh), 1)
	assert.Equal(t, fresh[0].Note, "")
}
