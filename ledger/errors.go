package ledger

import (
	"fmt"
)

// Error types for ledger validation errors

// InvalidAmountError is returned when text cannot be parsed as a decimal amount.
type InvalidAmountError struct {
	Value      string
	Underlying error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Value, e.Underlying)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Underlying
}

// InvalidCategoryError is returned when a category token is unknown, or when
// Income is used where a spending category is required (expense category,
// budget target).
type InvalidCategoryError struct {
	Token  string
	Reason string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q: %s", e.Token, e.Reason)
}

// InvalidDateError is returned when text cannot be parsed as a calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// InvalidMonthError is returned when text cannot be parsed as a year-month.
type InvalidMonthError struct {
	Value string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %q: expected YYYY-MM", e.Value)
}

// InvalidRangeError is returned when the end of a date range precedes its
// start. The engine itself performs no such check on ListByDateRange; the
// interactive and web layers validate ranges before querying and surface
// this error.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end date %s precedes start date %s", e.End, e.Start)
}

// Constructor functions for ledger errors.
// These provide a cleaner API and ensure consistent field initialization.

// NewInvalidAmountError creates an error for unparseable amount text.
func NewInvalidAmountError(value string, err error) *InvalidAmountError {
	return &InvalidAmountError{Value: value, Underlying: err}
}

// NewInvalidCategoryError creates an error for an unrecognized category token.
func NewInvalidCategoryError(token string) *InvalidCategoryError {
	return &InvalidCategoryError{Token: token, Reason: "unknown category"}
}

// NewIncomeCategoryError creates an error for Income used where a spending
// category is required.
func NewIncomeCategoryError(context string) *InvalidCategoryError {
	return &InvalidCategoryError{Token: string(Income), Reason: context}
}

// NewInvalidDateError creates an error for unparseable date text.
func NewInvalidDateError(value string) *InvalidDateError {
	return &InvalidDateError{Value: value}
}

// NewInvalidMonthError creates an error for unparseable year-month text.
func NewInvalidMonthError(value string) *InvalidMonthError {
	return &InvalidMonthError{Value: value}
}

// NewInvalidRangeError creates an error for an inverted date range.
func NewInvalidRangeError(start, end Date) *InvalidRangeError {
	return &InvalidRangeError{Start: start, End: end}
}
