package ledger

import (
	"strings"
)

// Category is a closed set of spending tags. The zero value is not a valid
// category; use ParseCategory to obtain one from text. Income is reserved
// for income transactions and is rejected as an expense category or as a
// budget target.
type Category string

const (
	Income        Category = "INCOME"
	Food          Category = "FOOD"
	Transport     Category = "TRANSPORT"
	Housing       Category = "HOUSING"
	Utilities     Category = "UTILITIES"
	Entertainment Category = "ENTERTAINMENT"
	Health        Category = "HEALTH"
	Education     Category = "EDUCATION"
	Shopping      Category = "SHOPPING"
	Other         Category = "OTHER"
)

// categories lists every category in declaration order.
var categories = []Category{
	Income,
	Food,
	Transport,
	Housing,
	Utilities,
	Entertainment,
	Health,
	Education,
	Shopping,
	Other,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ExpenseCategories returns every category valid for expenses and budgets,
// in declaration order. Income is excluded.
func ExpenseCategories() []Category {
	out := make([]Category, 0, len(categories)-1)
	for _, c := range categories {
		if c == Income {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseCategory converts a case-insensitive token to a Category.
func ParseCategory(token string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(token)))
	for _, known := range categories {
		if c == known {
			return c, nil
		}
	}
	return "", NewInvalidCategoryError(token)
}

func (c Category) String() string {
	return string(c)
}
