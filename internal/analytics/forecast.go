package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/store"
	"go.uber.org/zap"
)

const (
	// SupportMarkup re-adds the excluded tax and support line items as a flat share of usage.
	SupportMarkup = 1.10

	// fixedCostDays spreads the additional fixed cost over a nominal month.
	fixedCostDays = 30

	lookbackMonths   = 6
	minTrendMonths   = 3
	defaultAdjFactor = 1.0
)

// BudgetFinder looks up the budget override for a month. A missing budget is store.ErrNotFound.
type BudgetFinder interface {
	FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error)
}

// ForecastOptions tunes a forecast.
type ForecastOptions struct {
	// AdjustmentFactor scales the trend; zero means 1.0.
	AdjustmentFactor    float64 `json:"adjustmentFactor"`
	AdditionalFixedCost float64 `json:"additionalFixedCost"`
	Period              Period  `json:"period"`
}

func (o ForecastOptions) normalize() (ForecastOptions, error) {
	if math.IsNaN(o.AdjustmentFactor) || math.IsInf(o.AdjustmentFactor, 0) || o.AdjustmentFactor < 0 {
		return o, fmt.Errorf("adjustment factor %v: %w", o.AdjustmentFactor, ErrInvalidOptions)
	}
	if math.IsNaN(o.AdditionalFixedCost) || math.IsInf(o.AdditionalFixedCost, 0) || o.AdditionalFixedCost < 0 {
		return o, fmt.Errorf("additional fixed cost %v: %w", o.AdditionalFixedCost, ErrInvalidOptions)
	}
	if o.AdjustmentFactor == 0 {
		o.AdjustmentFactor = defaultAdjFactor
	}
	if o.Period == "" {
		o.Period = PeriodCurrentMonth
	}
	return o, nil
}

// ForecastPoint is one month of actual or projected spend.
type ForecastPoint struct {
	Date         string  `json:"date"` // YYYY-MM
	DailyAvg     float64 `json:"dailyAvg"`
	MonthlyTotal float64 `json:"monthlyTotal"`
	IsForecast   bool    `json:"isForecast"`
}

// ServiceTrend summarises one service's fitted trend and its share of the forecast.
type ServiceTrend struct {
	ServiceName     string  `json:"serviceName"`
	Slope           float64 `json:"slope"`
	CurrentDailyAvg float64 `json:"currentDailyAvg"`
	LastMonthAmount float64 `json:"lastMonthAmount"`
	ForecastTotal   float64 `json:"forecastTotal"`
}

// ForecastResult is the outcome of CalculateDetailedForecast.
type ForecastResult struct {
	History          []ForecastPoint `json:"history"`
	Forecast         []ForecastPoint `json:"forecast"`
	TotalPredicted   float64         `json:"totalPredicted"`
	CurrentTotal     float64         `json:"currentTotal"`
	Budget           float64         `json:"budget"`
	ServiceBreakdown []ServiceTrend  `json:"serviceBreakdown"`
}

// Forecaster projects spend per service from a linear trend over recent months.
type Forecaster struct {
	records RecordFetcher
	budgets BudgetFinder
	now     func() time.Time
	loc     *time.Location
	logger  *zap.Logger
}

// ForecasterOption configures a Forecaster.
type ForecasterOption func(*Forecaster)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) ForecasterOption {
	return func(f *Forecaster) { f.now = now }
}

// WithLocation sets the calendar used for month arithmetic. Defaults to time.Local.
func WithLocation(loc *time.Location) ForecasterOption {
	return func(f *Forecaster) { f.loc = loc }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ForecasterOption {
	return func(f *Forecaster) { f.logger = logger }
}

// NewForecaster creates a forecaster over the given record and budget sources.
func NewForecaster(records RecordFetcher, budgets BudgetFinder, opts ...ForecasterOption) *Forecaster {
	f := &Forecaster{
		records: records,
		budgets: budgets,
		now:     time.Now,
		loc:     time.Local,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type yearMonth struct {
	year  int
	month time.Month
}

func (ym yearMonth) key() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.month))
}

func (ym yearMonth) days() int {
	return DaysInMonth(ym.year, ym.month)
}

func parseMonthKey(key string) (yearMonth, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return yearMonth{}, fmt.Errorf("month key %q: %w", key, ErrInvalidDate)
	}
	return yearMonth{year: t.Year(), month: t.Month()}, nil
}

type serviceModel struct {
	name      string
	first     yearMonth
	slope     float64
	intercept float64
	lastDaily float64
	lastTotal float64
}

// CalculateDetailedForecast fits a trend per service over the last six full months and projects
// it from the current month through the end of opts.Period.
func (f *Forecaster) CalculateDetailedForecast(ctx context.Context, accountID string, opts ForecastOptions) (*ForecastResult, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	ahead, err := opts.Period.MonthsAhead()
	if err != nil {
		return nil, err
	}

	now := f.now().In(f.loc)
	monthStart, err := makeDate("current month", now.Year(), int(now.Month()), 1, f.loc)
	if err != nil {
		return nil, err
	}
	ly, lm := addMonths(now.Year(), now.Month(), -lookbackMonths)
	lookbackStart, err := makeDate("lookback start", ly, int(lm), 1, f.loc)
	if err != nil {
		return nil, err
	}

	targets := make([]yearMonth, 0, ahead+1)
	for i := 0; i <= ahead; i++ {
		y, m := addMonths(now.Year(), now.Month(), i)
		if _, err := makeDate("forecast month", y, int(m), 1, f.loc); err != nil {
			return nil, err
		}
		targets = append(targets, yearMonth{year: y, month: m})
	}

	lookback, err := f.records.ListCostRecords(ctx, model.RecordFilter{
		From:      lookbackStart,
		To:        monthStart.Add(-time.Nanosecond),
		AccountID: accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lookback records: %w", err)
	}
	lookback = filterExcluded(dropProviderTotals(lookback))

	serviceMonths := make(map[string]map[string]float64)
	historyMonths := make(map[string]float64)
	for _, r := range lookback {
		key := model.MonthKey(r.Date.In(f.loc))
		months, ok := serviceMonths[r.Service]
		if !ok {
			months = make(map[string]float64)
			serviceMonths[r.Service] = months
		}
		months[key] += r.Amount
		historyMonths[key] += r.Amount
	}

	models, err := fitServices(serviceMonths)
	if err != nil {
		return nil, err
	}

	dailyTotals := make([]float64, len(targets))
	breakdown := make([]ServiceTrend, 0, len(models))
	for _, sm := range models {
		var forecastTotal float64
		for i, t := range targets {
			x := float64(monthOffset(sm.first.year, sm.first.month, t.year, t.month))
			pred := math.Max(0, sm.slope*x+sm.intercept)
			dailyTotals[i] += pred
			forecastTotal += pred * float64(t.days()) * opts.AdjustmentFactor
		}
		breakdown = append(breakdown, ServiceTrend{
			ServiceName:     sm.name,
			Slope:           sm.slope,
			CurrentDailyAvg: sm.lastDaily,
			LastMonthAmount: sm.lastTotal,
			ForecastTotal:   forecastTotal,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].ForecastTotal > breakdown[j].ForecastTotal
	})

	result := &ForecastResult{
		History:          buildHistory(historyMonths),
		Forecast:         make([]ForecastPoint, 0, len(targets)),
		ServiceBreakdown: breakdown,
	}
	for i, t := range targets {
		daily := dailyTotals[i]*opts.AdjustmentFactor + opts.AdditionalFixedCost/fixedCostDays
		daily *= SupportMarkup
		monthly := daily * float64(t.days())
		result.Forecast = append(result.Forecast, ForecastPoint{
			Date:         t.key(),
			DailyAvg:     daily,
			MonthlyTotal: monthly,
			IsForecast:   true,
		})
		result.TotalPredicted += monthly
	}

	if opts.Period == PeriodCurrentMonth {
		mtd, err := f.records.ListCostRecords(ctx, model.RecordFilter{
			From:      monthStart,
			To:        now,
			AccountID: accountID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch month-to-date records: %w", err)
		}
		for _, r := range filterExcluded(dropProviderTotals(mtd)) {
			result.CurrentTotal += r.Amount
		}
		result.TotalPredicted += result.CurrentTotal
	}

	budget, err := f.budgets.FindBudget(ctx, model.MonthKey(monthStart), model.AccountFilter(accountID))
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	default:
		result.Budget = budget.Amount
	}

	f.logger.Debug("forecast computed",
		zap.String("account_id", accountID),
		zap.String("period", string(opts.Period)),
		zap.Int("records", len(lookback)),
		zap.Int("services", len(breakdown)),
		zap.Float64("total_predicted", result.TotalPredicted),
	)

	return result, nil
}

// fitServices builds one trend model per service, ordered by service name.
func fitServices(serviceMonths map[string]map[string]float64) ([]serviceModel, error) {
	names := make([]string, 0, len(serviceMonths))
	for name := range serviceMonths {
		names = append(names, name)
	}
	sort.Strings(names)

	models := make([]serviceModel, 0, len(names))
	for _, name := range names {
		months := serviceMonths[name]
		if len(months) == 0 {
			continue
		}
		keys := make([]string, 0, len(months))
		for k := range months {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		first, err := parseMonthKey(keys[0])
		if err != nil {
			return nil, err
		}
		points := make([]Point, 0, len(keys))
		for _, k := range keys {
			ym, err := parseMonthKey(k)
			if err != nil {
				return nil, err
			}
			points = append(points, Point{
				X: float64(monthOffset(first.year, first.month, ym.year, ym.month)),
				Y: months[k] / float64(ym.days()),
			})
		}

		last := points[len(points)-1]
		sm := serviceModel{
			name:      name,
			first:     first,
			intercept: last.Y,
			lastDaily: last.Y,
			lastTotal: months[keys[len(keys)-1]],
		}
		if len(points) >= minTrendMonths {
			sm.slope, sm.intercept = Fit(points)
		}
		models = append(models, sm)
	}
	return models, nil
}

func buildHistory(historyMonths map[string]float64) []ForecastPoint {
	keys := make([]string, 0, len(historyMonths))
	for k := range historyMonths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	history := make([]ForecastPoint, 0, len(keys))
	for _, k := range keys {
		ym, err := parseMonthKey(k)
		if err != nil {
			continue
		}
		daily := historyMonths[k] / float64(ym.days())
		history = append(history, ForecastPoint{
			Date:         k,
			DailyAvg:     daily,
			MonthlyTotal: daily * float64(ym.days()),
		})
	}
	return history
}
