package analytics

import (
	"fmt"
	"time"
)

// Period selects how far ahead a forecast projects.
type Period string

const (
	PeriodCurrentMonth Period = "current_month"
	PeriodNextMonth    Period = "next_month"
	PeriodNextQuarter  Period = "next_quarter"
	PeriodNext6Months  Period = "next_6_months"
	PeriodNext12Months Period = "next_12_months"
	PeriodNext24Months Period = "next_24_months"
)

// monthsAhead is the offset of the period's final month from the current month.
var monthsAhead = map[Period]int{
	PeriodCurrentMonth: 0,
	PeriodNextMonth:    1,
	PeriodNextQuarter:  3,
	PeriodNext6Months:  6,
	PeriodNext12Months: 12,
	PeriodNext24Months: 24,
}

// MonthsAhead returns the number of months after the current one the period ends on.
// The empty period is the current month.
func (p Period) MonthsAhead() (int, error) {
	if p == "" {
		return 0, nil
	}
	n, ok := monthsAhead[p]
	if !ok {
		return 0, fmt.Errorf("unknown period %q: %w", p, ErrInvalidOptions)
	}
	return n, nil
}

// addMonths shifts a calendar month by n without touching days.
func addMonths(year int, month time.Month, n int) (int, time.Month) {
	idx := year*12 + int(month) - 1 + n
	y := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// monthOffset is the number of whole calendar months from (fromY, fromM) to (toY, toM).
func monthOffset(fromY int, fromM time.Month, toY int, toM time.Month) int {
	return (toY-fromY)*12 + int(toM) - int(fromM)
}
