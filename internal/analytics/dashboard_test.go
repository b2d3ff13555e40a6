package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/currency"
)

func newTestDashboard(s DashboardStore) *Dashboard {
	return NewDashboard(s,
		WithClock(func() time.Time { return july15 }),
		WithLocation(time.UTC),
	)
}

func TestGetDashboardData(t *testing.T) {
	ctx := context.Background()

	t.Run("hides total and tax rows", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 7, 1), "EC2", 60, "a"),
			rec(utc(2024, 7, 2), "EC2", 40, "a"),
			rec(utc(2024, 7, 2), "S3", 100, "a"),
			rec(utc(2024, 7, 2), model.TotalService, 200, "a"),
			rec(utc(2024, 7, 2), "Tax", 20, "a"),
			rec(utc(2024, 7, 3), "AWS Support (Developer)", 50, "a"),
		)

		data, err := newTestDashboard(s).GetDashboardData(ctx, "all", "")
		require.NoError(t, err)

		assert.Equal(t, "2024-07", data.Month)
		assert.Equal(t, 250.0, data.TotalCost)
		require.Len(t, data.ServiceBreakdown, 3)
		for _, share := range data.ServiceBreakdown {
			assert.NotEqual(t, model.TotalService, share.Name)
			assert.NotEqual(t, "Tax", share.Name)
		}

		ec2 := data.ServiceBreakdown[0]
		assert.Equal(t, "EC2", ec2.Name)
		assert.Equal(t, 100.0, ec2.Amount)
		assert.Equal(t, 40.0, ec2.Percentage)
		assert.Equal(t, []float64{60, 40}, ec2.Sparkline)

		require.Len(t, data.Daily, 31)
		assert.Equal(t, 60.0, data.Daily[0].Amount)
		assert.Equal(t, 140.0, data.Daily[1].Amount)
		assert.Equal(t, 50.0, data.Daily[2].Amount)
		assert.Len(t, data.Records, 3)
	})

	t.Run("days are keyed in the local calendar", func(t *testing.T) {
		s := seed(t,
			rec(time.Date(2024, 6, 30, 20, 0, 0, 0, time.UTC), "EC2", 8, "a"),
			rec(time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC), "EC2", 2, "a"),
		)
		dash := NewDashboard(s,
			WithClock(func() time.Time { return july15 }),
			WithLocation(time.FixedZone("UTC+9", 9*3600)),
		)

		data, err := dash.GetDashboardData(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, 10.0, data.TotalCost)
		require.Len(t, data.Records, 1)
		assert.Equal(t, 10.0, data.Records[0].Amount)
		assert.Equal(t, "Jul 1", data.Daily[0].Name)
		assert.Equal(t, 10.0, data.Daily[0].Amount)
	})

	t.Run("explicit month", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 2, 29), "EC2", 5, "a"),
			rec(utc(2024, 3, 1), "EC2", 7, "a"),
		)
		data, err := newTestDashboard(s).GetDashboardData(ctx, "", "2024-02")
		require.NoError(t, err)
		assert.Equal(t, 5.0, data.TotalCost)
		assert.Len(t, data.Daily, 29)
	})

	t.Run("malformed month", func(t *testing.T) {
		_, err := newTestDashboard(store.NewMemoryStore()).GetDashboardData(ctx, "", "July")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("budget override wins", func(t *testing.T) {
		s := seed(t)
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "prod", Budget: 300, ExchangeRate: 140}))
		require.NoError(t, s.SetBudget(ctx, &model.Budget{Month: "2024-07", AccountID: "a", Amount: 999}))

		data, err := newTestDashboard(s).GetDashboardData(ctx, "a", "")
		require.NoError(t, err)
		assert.Equal(t, 999.0, data.Budget)
		assert.Equal(t, 140.0, data.ExchangeRate)
	})

	t.Run("single account falls back to account budget", func(t *testing.T) {
		s := seed(t)
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "prod", Budget: 300}))

		data, err := newTestDashboard(s).GetDashboardData(ctx, "a", "")
		require.NoError(t, err)
		assert.Equal(t, 300.0, data.Budget)
		assert.Equal(t, model.DefaultExchangeRate, data.ExchangeRate)
	})

	t.Run("all accounts sums account budgets", func(t *testing.T) {
		s := seed(t)
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "a-prod", Budget: 300, ExchangeRate: 145}))
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "b", Name: "b-dev", Budget: 200, ExchangeRate: 150}))

		data, err := newTestDashboard(s).GetDashboardData(ctx, "all", "")
		require.NoError(t, err)
		assert.Equal(t, 500.0, data.Budget)
		assert.Equal(t, 145.0, data.ExchangeRate)
	})

	t.Run("stored forecast and formatted totals", func(t *testing.T) {
		s := seed(t, rec(utc(2024, 7, 3), "EC2", 1234.5, "a"))
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "prod", ExchangeRate: 150}))
		require.NoError(t, s.SaveForecastSnapshot(ctx, &model.ForecastSnapshot{
			Month: "2024-07", Type: model.SnapshotTypeTotal, Amount: 4321, CalculatedAt: july15,
		}))

		data, err := newTestDashboard(s).GetDashboardData(ctx, "all", "")
		require.NoError(t, err)
		assert.Equal(t, 4321.0, data.Forecast)
		assert.Equal(t, "$1,234.50", data.FormattedTotal)
		assert.Equal(t, "¥185,175", data.FormattedTotalLocal)
	})

	t.Run("empty month", func(t *testing.T) {
		data, err := newTestDashboard(store.NewMemoryStore()).GetDashboardData(ctx, "", "")
		require.NoError(t, err)
		assert.Zero(t, data.TotalCost)
		assert.Empty(t, data.ServiceBreakdown)
		assert.Len(t, data.Daily, 31)
	})
}

func TestGetDashboardDataFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.New("timeout")
	m := store.NewMockStore(ctrl)
	m.EXPECT().ListCostRecords(gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := newTestDashboard(m).GetDashboardData(context.Background(), "", "")
	assert.ErrorIs(t, err, upstream)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(currency.USD, 0))
	assert.Equal(t, "$12.50", FormatCurrency(currency.USD, 12.5))
	assert.Equal(t, "¥1,500", FormatCurrency(currency.JPY, 1500))
}

func TestGetDailyCosts(t *testing.T) {
	s := seed(t,
		rec(utc(2024, 2, 1), "EC2", 1.5, "a"),
		rec(utc(2024, 2, 1), "S3", 2, "a"),
		rec(utc(2024, 2, 1), model.TotalService, 3.5, "a"),
		rec(utc(2024, 2, 29), "EC2", 4, "b"),
	)

	points, err := newTestDashboard(s).GetDailyCosts(context.Background(), "a", 2024, time.February)
	require.NoError(t, err)
	require.Len(t, points, 29)
	assert.Equal(t, ChartPoint{Name: "Feb 1", Amount: 3.5}, points[0])
	assert.Zero(t, points[28].Amount)

	_, err = newTestDashboard(s).GetDailyCosts(context.Background(), "", 2024, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
