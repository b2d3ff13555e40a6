package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordFetcher retrieves cost records for an inclusive date range and optional account.
type RecordFetcher interface {
	ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error)
}

// Granularity is the bucket size of an analytics pivot.
type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityDaily   Granularity = "daily"
)

func (g Granularity) bucketKey(t time.Time) (string, error) {
	switch g {
	case GranularityMonthly:
		return t.UTC().Format("2006-01"), nil
	case GranularityDaily:
		return t.UTC().Format("2006-01-02"), nil
	default:
		return "", fmt.Errorf("granularity %q: %w", string(g), ErrInvalidGranularity)
	}
}

// AnalyticsRow is one service's line of the pivot. Values holds an amount for every bucket the
// service had activity in; buckets without activity are absent.
type AnalyticsRow struct {
	Service       string
	Total         float64
	MomAmount     float64
	MomPercentage float64
	Values        map[string]float64
}

// AnalyticsResult is a per-service pivot of one month with month-over-month deltas.
type AnalyticsResult struct {
	Headers []string       `json:"headers"`
	Rows    []AnalyticsRow `json:"rows"`
}

// Aggregator builds analytics pivots from stored records.
type Aggregator struct {
	records RecordFetcher
	logger  *zap.Logger
}

// NewAggregator creates an aggregator reading from records.
func NewAggregator(records RecordFetcher, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{records: records, logger: logger}
}

type serviceBuckets struct {
	total   decimal.Decimal
	buckets map[string]decimal.Decimal
}

// GetAnalyticsData pivots the given month by service and bucket and compares each service's
// total with the previous calendar month. Month boundaries are UTC.
func (a *Aggregator) GetAnalyticsData(ctx context.Context, accountID string, year int, month time.Month, granularity Granularity) (*AnalyticsResult, error) {
	if _, err := granularity.bucketKey(time.Time{}); err != nil {
		return nil, err
	}

	start, err := makeDate("analytics month", year, int(month), 1, time.UTC)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	prevStart := start.AddDate(0, -1, 0)
	prevEnd := start.Add(-time.Millisecond)

	current, err := a.records.ListCostRecords(ctx, model.RecordFilter{From: start, To: end, AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for %s: %w", model.MonthKey(start), err)
	}
	previous, err := a.records.ListCostRecords(ctx, model.RecordFilter{From: prevStart, To: prevEnd, AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for %s: %w", model.MonthKey(prevStart), err)
	}

	var order []string
	byService := make(map[string]*serviceBuckets)
	headerSet := make(map[string]struct{})
	for _, r := range current {
		key, _ := granularity.bucketKey(r.Date)
		headerSet[key] = struct{}{}

		agg, ok := byService[r.Service]
		if !ok {
			agg = &serviceBuckets{buckets: make(map[string]decimal.Decimal)}
			byService[r.Service] = agg
			order = append(order, r.Service)
		}
		amount := decimal.NewFromFloat(r.Amount)
		agg.total = agg.total.Add(amount)
		agg.buckets[key] = agg.buckets[key].Add(amount)
	}

	prevTotals := make(map[string]decimal.Decimal)
	for _, r := range previous {
		prevTotals[r.Service] = prevTotals[r.Service].Add(decimal.NewFromFloat(r.Amount))
	}

	headers := make([]string, 0, len(headerSet))
	for k := range headerSet {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	rows := make([]AnalyticsRow, 0, len(order))
	for _, service := range order {
		agg := byService[service]
		prev := prevTotals[service]
		mom := agg.total.Sub(prev)

		var momPct float64
		if prev.IsPositive() {
			momPct = mom.Div(prev).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}

		values := make(map[string]float64, len(agg.buckets))
		for k, v := range agg.buckets {
			values[k] = v.InexactFloat64()
		}
		rows = append(rows, AnalyticsRow{
			Service:       service,
			Total:         agg.total.InexactFloat64(),
			MomAmount:     mom.InexactFloat64(),
			MomPercentage: momPct,
			Values:        values,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	a.logger.Debug("analytics computed",
		zap.String("account_id", accountID),
		zap.String("month", model.MonthKey(start)),
		zap.String("granularity", string(granularity)),
		zap.Int("records", len(current)),
		zap.Int("services", len(rows)),
	)

	return &AnalyticsResult{Headers: headers, Rows: rows}, nil
}
