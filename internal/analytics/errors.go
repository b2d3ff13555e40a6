package analytics

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate is matched by every *InvalidDateError.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidOptions is returned for forecast options outside their documented domain.
	ErrInvalidOptions = errors.New("invalid forecast options")
	// ErrInvalidGranularity is returned for an analytics bucket size other than monthly or daily.
	ErrInvalidGranularity = errors.New("invalid granularity")
)

// InvalidDateError reports a calendar boundary that could not be constructed.
type InvalidDateError struct {
	Op    string // e.g. "lookback start"
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: invalid date %04d-%02d-%02d", e.Op, e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// makeDate builds y-m-d 00:00 in loc and fails instead of normalising out-of-range components.
func makeDate(op string, year, month, day int, loc *time.Location) (time.Time, error) {
	invalid := &InvalidDateError{Op: op, Year: year, Month: month, Day: day}
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, invalid
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, invalid
	}
	return t, nil
}
