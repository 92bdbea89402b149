package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates income from expense transactions. The stored amount
// is never negative; the kind determines its sign semantics.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// ParseKind converts a case-insensitive token to a Kind.
func ParseKind(token string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(token))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	}
	return "", fmt.Errorf("invalid transaction type %q", token)
}

func (k Kind) String() string {
	return string(k)
}

// Transaction is one recorded ledger event. Transactions are immutable
// once created; there are no update or delete operations. The id is an
// opaque unique string generated at creation and preserved verbatim
// across save/load round-trips.
type Transaction struct {
	ID       string
	Date     Date
	Kind     Kind
	Category Category
	Amount   decimal.Decimal
	Note     string
}

func newIncome(date Date, amount decimal.Decimal, note string) Transaction {
	return Transaction{
		ID:       newID(),
		Date:     date,
		Kind:     KindIncome,
		Category: Income,
		Amount:   amount,
		Note:     note,
	}
}

func newExpense(date Date, category Category, amount decimal.Decimal, note string) Transaction {
	return Transaction{
		ID:       newID(),
		Date:     date,
		Kind:     KindExpense,
		Category: category,
		Amount:   amount,
		Note:     note,
	}
}
