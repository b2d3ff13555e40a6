package service

import (
	"fmt"

	cloudcostv1 "github.com/castlemilk/cloudcost/gen/cloudcost/v1"
	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var granularities = map[cloudcostv1.Granularity]analytics.Granularity{
	cloudcostv1.Granularity_GRANULARITY_UNSPECIFIED: analytics.GranularityMonthly,
	cloudcostv1.Granularity_GRANULARITY_MONTHLY:     analytics.GranularityMonthly,
	cloudcostv1.Granularity_GRANULARITY_DAILY:       analytics.GranularityDaily,
}

func granularityFromProto(g cloudcostv1.Granularity) (analytics.Granularity, error) {
	out, ok := granularities[g]
	if !ok {
		return "", fmt.Errorf("granularity %d: %w", int32(g), analytics.ErrInvalidGranularity)
	}
	return out, nil
}

var periods = map[cloudcostv1.ForecastPeriod]analytics.Period{
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_UNSPECIFIED:    analytics.PeriodCurrentMonth,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_CURRENT_MONTH:  analytics.PeriodCurrentMonth,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_MONTH:     analytics.PeriodNextMonth,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_QUARTER:   analytics.PeriodNextQuarter,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_6_MONTHS:  analytics.PeriodNext6Months,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_12_MONTHS: analytics.PeriodNext12Months,
	cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_24_MONTHS: analytics.PeriodNext24Months,
}

func forecastOptionsFromProto(req *cloudcostv1.GetForecastRequest) (analytics.ForecastOptions, error) {
	period, ok := periods[req.GetPeriod()]
	if !ok {
		return analytics.ForecastOptions{}, fmt.Errorf("period %d: %w", int32(req.GetPeriod()), analytics.ErrInvalidOptions)
	}
	return analytics.ForecastOptions{
		AdjustmentFactor:    req.GetAdjustmentFactor(),
		AdditionalFixedCost: req.GetAdditionalFixedCost(),
		Period:              period,
	}, nil
}

func costRecordFromProto(r *cloudcostv1.CostRecord) *model.CostRecord {
	return &model.CostRecord{
		ID:         r.GetId(),
		Date:       r.GetDate().AsTime(),
		Amount:     r.GetAmount(),
		Service:    r.GetService(),
		AccountID:  r.GetAccountId(),
		RecordType: r.GetRecordType(),
	}
}

func accountFromProto(a *cloudcostv1.Account) *model.Account {
	return &model.Account{
		ID:           a.GetId(),
		AccountID:    a.GetAccountId(),
		Name:         a.GetName(),
		ProfileName:  a.GetProfileName(),
		Budget:       a.GetBudget(),
		ExchangeRate: a.GetExchangeRate(),
	}
}

func accountToProto(a *model.Account) *cloudcostv1.Account {
	return &cloudcostv1.Account{
		Id:           a.ID,
		AccountId:    a.AccountID,
		Name:         a.Name,
		ProfileName:  a.ProfileName,
		Budget:       a.Budget,
		ExchangeRate: a.ExchangeRate,
	}
}

func budgetToProto(b *model.Budget) *cloudcostv1.Budget {
	return &cloudcostv1.Budget{
		Id:        b.ID,
		Month:     b.Month,
		AccountId: b.AccountID,
		Amount:    b.Amount,
	}
}

func snapshotToProto(s *model.ForecastSnapshot) *cloudcostv1.ForecastSnapshot {
	return &cloudcostv1.ForecastSnapshot{
		Id:           s.ID,
		Month:        s.Month,
		AccountId:    s.AccountID,
		Type:         s.Type,
		Amount:       s.Amount,
		CalculatedAt: timestamppb.New(s.CalculatedAt),
	}
}

func analyticsRowsToProto(rows []analytics.AnalyticsRow) []*cloudcostv1.AnalyticsRow {
	out := make([]*cloudcostv1.AnalyticsRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &cloudcostv1.AnalyticsRow{
			Service:       r.Service,
			Total:         r.Total,
			MomAmount:     r.MomAmount,
			MomPercentage: r.MomPercentage,
			Values:        r.Values,
		})
	}
	return out
}

func chartPointsToProto(points []analytics.ChartPoint) []*cloudcostv1.ChartPoint {
	out := make([]*cloudcostv1.ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &cloudcostv1.ChartPoint{Name: p.Name, Amount: p.Amount})
	}
	return out
}

func dailyCostsToProto(days []analytics.DailyCost) []*cloudcostv1.DailyCost {
	out := make([]*cloudcostv1.DailyCost, 0, len(days))
	for _, d := range days {
		out = append(out, &cloudcostv1.DailyCost{Date: timestamppb.New(d.Date), Amount: d.Amount})
	}
	return out
}

func forecastPointsToProto(points []analytics.ForecastPoint) []*cloudcostv1.ForecastPoint {
	out := make([]*cloudcostv1.ForecastPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &cloudcostv1.ForecastPoint{
			Date:         p.Date,
			DailyAvg:     p.DailyAvg,
			MonthlyTotal: p.MonthlyTotal,
			IsForecast:   p.IsForecast,
		})
	}
	return out
}

func serviceTrendsToProto(trends []analytics.ServiceTrend) []*cloudcostv1.ServiceTrend {
	out := make([]*cloudcostv1.ServiceTrend, 0, len(trends))
	for _, t := range trends {
		out = append(out, &cloudcostv1.ServiceTrend{
			ServiceName:     t.ServiceName,
			Slope:           t.Slope,
			CurrentDailyAvg: t.CurrentDailyAvg,
			LastMonthAmount: t.LastMonthAmount,
			ForecastTotal:   t.ForecastTotal,
		})
	}
	return out
}

func serviceSharesToProto(shares []analytics.ServiceShare) []*cloudcostv1.ServiceShare {
	out := make([]*cloudcostv1.ServiceShare, 0, len(shares))
	for _, s := range shares {
		out = append(out, &cloudcostv1.ServiceShare{
			Name:       s.Name,
			Amount:     s.Amount,
			Percentage: s.Percentage,
			Sparkline:  s.Sparkline,
		})
	}
	return out
}

func forecastToProto(r *analytics.ForecastResult) *cloudcostv1.GetForecastResponse {
	return &cloudcostv1.GetForecastResponse{
		History:          forecastPointsToProto(r.History),
		Forecast:         forecastPointsToProto(r.Forecast),
		TotalPredicted:   r.TotalPredicted,
		CurrentTotal:     r.CurrentTotal,
		Budget:           r.Budget,
		ServiceBreakdown: serviceTrendsToProto(r.ServiceBreakdown),
	}
}

func dashboardToProto(d *analytics.DashboardData) *cloudcostv1.GetDashboardResponse {
	return &cloudcostv1.GetDashboardResponse{
		Month:               d.Month,
		Records:             dailyCostsToProto(d.Records),
		Daily:               chartPointsToProto(d.Daily),
		ServiceBreakdown:    serviceSharesToProto(d.ServiceBreakdown),
		TotalCost:           d.TotalCost,
		Budget:              d.Budget,
		ExchangeRate:        d.ExchangeRate,
		Forecast:            d.Forecast,
		FormattedTotal:      d.FormattedTotal,
		FormattedTotalLocal: d.FormattedTotalLocal,
	}
}
