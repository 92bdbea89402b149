package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date represents a calendar day without a time component, in ISO 8601
// format (YYYY-MM-DD). Transactions are sorted chronologically by date.
type Date struct {
	time.Time
}

// NewDate parses text in YYYY-MM-DD form.
func NewDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, NewInvalidDateError(value)
	}
	return Date{Time: t}, nil
}

// MakeDate builds a Date from its components.
func MakeDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// YearMonth returns the calendar month this date falls in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year(), Month: d.Month()}
}

// Compare orders dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

// YearMonth identifies one calendar month (YYYY-MM). Summaries, totals and
// budget alerts are all scoped to a single YearMonth.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth parses text in YYYY-MM form.
func NewYearMonth(value string) (YearMonth, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return YearMonth{}, NewInvalidMonthError(value)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Contains reports whether the given date falls within this month.
func (ym YearMonth) Contains(d Date) bool {
	return d.Year() == ym.Year && d.Month() == ym.Month
}
