package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// hiddenServices are dropped from the dashboard: the provider's aggregate row and the plain tax line.
var hiddenServices = map[string]bool{
	model.TotalService: true,
	"Tax":              true,
}

// ServiceShare is one service's slice of a month.
type ServiceShare struct {
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Percentage float64   `json:"percentage"`
	Sparkline  []float64 `json:"sparkline"`
}

// DashboardData summarises a single month for one account or all accounts.
type DashboardData struct {
	Month               string         `json:"month"`
	Records             []DailyCost    `json:"records"`
	Daily               []ChartPoint   `json:"daily"`
	ServiceBreakdown    []ServiceShare `json:"serviceBreakdown"`
	TotalCost           float64        `json:"totalCost"`
	Budget              float64        `json:"budget"`
	ExchangeRate        float64        `json:"exchangeRate"`
	Forecast            float64        `json:"forecast"`
	FormattedTotal      string         `json:"formattedTotal"`
	FormattedTotalLocal string         `json:"formattedTotalLocal"`
}

// DashboardStore is the subset of store.Store the dashboard reads.
type DashboardStore interface {
	RecordFetcher
	BudgetFinder
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error)
}

// Dashboard builds the monthly overview.
type Dashboard struct {
	store  DashboardStore
	now    func() time.Time
	loc    *time.Location
	logger *zap.Logger
}

// NewDashboard creates a dashboard. It accepts the same options as NewForecaster.
func NewDashboard(s DashboardStore, opts ...ForecasterOption) *Dashboard {
	f := NewForecaster(nil, nil, opts...)
	return &Dashboard{store: s, now: f.now, loc: f.loc, logger: f.logger}
}

// ParseMonth parses a YYYY-MM month.
func ParseMonth(month string) (int, time.Month, error) {
	ym, err := parseMonthKey(month)
	if err != nil {
		return 0, 0, err
	}
	return ym.year, ym.month, nil
}

// GetDashboardData summarises month (YYYY-MM, "" for the current month) for accountID.
func (d *Dashboard) GetDashboardData(ctx context.Context, accountID, month string) (*DashboardData, error) {
	now := d.now().In(d.loc)
	year, mon := now.Year(), now.Month()
	if month != "" {
		var err error
		if year, mon, err = ParseMonth(month); err != nil {
			return nil, err
		}
	}
	start, err := makeDate("dashboard month", year, int(mon), 1, d.loc)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	monthKey := model.MonthKey(start)

	records, err := d.store.ListCostRecords(ctx, model.RecordFilter{From: start, To: end, AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for %s: %w", monthKey, err)
	}

	var total decimal.Decimal
	daily := make(map[string]decimal.Decimal)
	serviceTotals := make(map[string]decimal.Decimal)
	serviceDaily := make(map[string]map[string]decimal.Decimal)
	for _, r := range records {
		if hiddenServices[r.Service] {
			continue
		}
		amount := decimal.NewFromFloat(r.Amount)
		day := r.Date.In(d.loc).Format("2006-01-02")

		total = total.Add(amount)
		daily[day] = daily[day].Add(amount)
		serviceTotals[r.Service] = serviceTotals[r.Service].Add(amount)
		if serviceDaily[r.Service] == nil {
			serviceDaily[r.Service] = make(map[string]decimal.Decimal)
		}
		serviceDaily[r.Service][day] = serviceDaily[r.Service][day].Add(amount)
	}

	data := &DashboardData{
		Month:            monthKey,
		Records:          dailyCosts(daily, d.loc),
		ServiceBreakdown: shares(serviceTotals, serviceDaily, total),
		TotalCost:        total.InexactFloat64(),
	}
	data.Daily = FillDailyCostsIn(data.Records, year, mon, d.loc)

	if data.Budget, data.ExchangeRate, err = d.budgetAndRate(ctx, monthKey, accountID); err != nil {
		return nil, err
	}

	snap, err := d.store.GetLatestForecastSnapshot(ctx, monthKey, model.AccountFilter(accountID), model.SnapshotTypeTotal)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to fetch forecast snapshot: %w", err)
	default:
		data.Forecast = snap.Amount
	}

	data.FormattedTotal = FormatCurrency(currency.USD, data.TotalCost)
	data.FormattedTotalLocal = FormatCurrency(currency.JPY, data.TotalCost*data.ExchangeRate)

	d.logger.Debug("dashboard computed",
		zap.String("account_id", accountID),
		zap.String("month", monthKey),
		zap.Int("records", len(records)),
	)
	return data, nil
}

// GetDailyCosts returns the month's calendar series of daily totals for accountID. The provider's
// aggregate row is skipped.
func (d *Dashboard) GetDailyCosts(ctx context.Context, accountID string, year int, month time.Month) ([]ChartPoint, error) {
	start, err := makeDate("daily costs month", year, int(month), 1, d.loc)
	if err != nil {
		return nil, err
	}
	records, err := d.store.ListCostRecords(ctx, model.RecordFilter{
		From:      start,
		To:        start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		AccountID: accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for %s: %w", model.MonthKey(start), err)
	}

	daily := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.Service == model.TotalService {
			continue
		}
		day := r.Date.In(d.loc).Format("2006-01-02")
		daily[day] = daily[day].Add(decimal.NewFromFloat(r.Amount))
	}
	return FillDailyCostsIn(dailyCosts(daily, d.loc), year, month, d.loc), nil
}

// budgetAndRate resolves the month's budget (override, else account budgets) and display rate.
func (d *Dashboard) budgetAndRate(ctx context.Context, month, accountID string) (float64, float64, error) {
	var budget float64
	override, err := d.store.FindBudget(ctx, month, model.AccountFilter(accountID))
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return 0, 0, fmt.Errorf("failed to fetch budget: %w", err)
	default:
		budget = override.Amount
	}

	rate := model.DefaultExchangeRate
	if id := model.AccountFilter(accountID); id != "" {
		account, err := d.store.GetAccount(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return budget, rate, nil
		}
		if err != nil {
			return 0, 0, fmt.Errorf("failed to fetch account: %w", err)
		}
		if override == nil {
			budget = account.Budget
		}
		if account.ExchangeRate > 0 {
			rate = account.ExchangeRate
		}
		return budget, rate, nil
	}

	accounts, err := d.store.ListAccounts(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	if override == nil {
		for _, a := range accounts {
			budget += a.Budget
		}
	}
	if len(accounts) > 0 && accounts[0].ExchangeRate > 0 {
		rate = accounts[0].ExchangeRate
	}
	return budget, rate, nil
}

func dailyCosts(daily map[string]decimal.Decimal, loc *time.Location) []DailyCost {
	keys := sortedKeys(daily)
	out := make([]DailyCost, 0, len(keys))
	for _, k := range keys {
		t, err := time.ParseInLocation("2006-01-02", k, loc)
		if err != nil {
			continue
		}
		out = append(out, DailyCost{Date: t, Amount: daily[k].InexactFloat64()})
	}
	return out
}

func shares(totals map[string]decimal.Decimal, daily map[string]map[string]decimal.Decimal, total decimal.Decimal) []ServiceShare {
	out := make([]ServiceShare, 0, len(totals))
	for _, name := range sortedKeys(totals) {
		amount := totals[name]
		var pct float64
		if total.IsPositive() {
			pct = amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		days := sortedKeys(daily[name])
		spark := make([]float64, 0, len(days))
		for _, day := range days {
			spark = append(spark, daily[name][day].InexactFloat64())
		}
		out = append(out, ServiceShare{
			Name:       name,
			Amount:     amount.InexactFloat64(),
			Percentage: pct,
			Sparkline:  spark,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.JPY: "¥",
}

// FormatCurrency renders amount with the unit's symbol, standard rounding and English grouping,
// e.g. "$1,234.50" or "¥185,175".
func FormatCurrency(unit currency.Unit, amount float64) string {
	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(language.English)
	symbol, ok := symbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}
	return symbol + p.Sprint(number.Decimal(amount, number.Scale(scale)))
}
