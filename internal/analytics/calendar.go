// Package analytics turns raw cost records into reporting tables, calendar series and forecasts.
package analytics

import (
	"fmt"
	"time"
)

// DailyCost is a dated amount fed to the calendar filler.
type DailyCost struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// ChartPoint is one calendar day of a month series.
type ChartPoint struct {
	Name   string  `json:"name"` // "Jan 2"
	Amount float64 `json:"amount"`
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FillDailyCosts returns one point per day of the month, zero-filling days without a record.
// Records are keyed by their local calendar date.
func FillDailyCosts(records []DailyCost, year int, month time.Month) []ChartPoint {
	return FillDailyCostsIn(records, year, month, time.Local)
}

// FillDailyCostsIn is FillDailyCosts with the calendar location made explicit.
//
// When two records fall on the same day the later one replaces the earlier; amounts are not summed.
func FillDailyCostsIn(records []DailyCost, year int, month time.Month, loc *time.Location) []ChartPoint {
	lookup := make(map[string]float64, len(records))
	for _, r := range records {
		lookup[r.Date.In(loc).Format("2006-01-02")] = r.Amount
	}

	days := DaysInMonth(year, month)
	points := make([]ChartPoint, 0, days)
	for d := 1; d <= days; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		points = append(points, ChartPoint{
			Name:   fmt.Sprintf("%s %d", month.String()[:3], d),
			Amount: lookup[key],
		})
	}
	return points
}
