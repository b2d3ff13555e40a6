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
)

func rec(date time.Time, service string, amount float64, account string) *model.CostRecord {
	return &model.CostRecord{Date: date, Service: service, Amount: amount, AccountID: account, RecordType: "Usage"}
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, records ...*model.CostRecord) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, s.UpsertCostRecords(context.Background(), records))
	return s
}

func rowByService(t *testing.T, res *AnalyticsResult, service string) AnalyticsRow {
	t.Helper()
	for _, r := range res.Rows {
		if r.Service == service {
			return r
		}
	}
	t.Fatalf("no row for %s", service)
	return AnalyticsRow{}
}

func TestGetAnalyticsData(t *testing.T) {
	ctx := context.Background()

	t.Run("month over month", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 3, 5), "EC2", 120, "a"),
			rec(utc(2024, 3, 6), "S3", 50, "a"),
			rec(utc(2024, 2, 5), "EC2", 100, "a"),
			rec(utc(2024, 2, 6), "S3", 50, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "all", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)

		assert.Equal(t, []string{"2024-03"}, res.Headers)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, "EC2", res.Rows[0].Service)

		ec2 := rowByService(t, res, "EC2")
		assert.Equal(t, 120.0, ec2.Total)
		assert.Equal(t, 20.0, ec2.MomAmount)
		assert.Equal(t, 20.0, ec2.MomPercentage)
		assert.Equal(t, 120.0, ec2.Values["2024-03"])

		s3 := rowByService(t, res, "S3")
		assert.Zero(t, s3.MomAmount)
		assert.Zero(t, s3.MomPercentage)
	})

	t.Run("january compares with previous december", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 1, 10), "EC2", 300, "a"),
			rec(utc(2023, 12, 31), "EC2", 200, "a"),
			rec(utc(2023, 1, 10), "EC2", 1000, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.January, GranularityMonthly)
		require.NoError(t, err)
		row := rowByService(t, res, "EC2")
		assert.Equal(t, 100.0, row.MomAmount)
		assert.Equal(t, 50.0, row.MomPercentage)
	})

	t.Run("new service has zero percentage", func(t *testing.T) {
		s := seed(t, rec(utc(2024, 3, 1), "Lambda", 42, "a"))
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)
		row := rowByService(t, res, "Lambda")
		assert.Equal(t, 42.0, row.MomAmount)
		assert.Zero(t, row.MomPercentage)
	})

	t.Run("services only in previous month are not rows", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 3, 1), "EC2", 10, "a"),
			rec(utc(2024, 2, 1), "RDS", 10, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "EC2", res.Rows[0].Service)
	})

	t.Run("account filter isolates totals and deltas", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 3, 1), "EC2", 10, "a"),
			rec(utc(2024, 3, 1), "EC2", 500, "b"),
			rec(utc(2024, 2, 1), "EC2", 5, "a"),
			rec(utc(2024, 2, 1), "EC2", 900, "b"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "a", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)
		row := rowByService(t, res, "EC2")
		assert.Equal(t, 10.0, row.Total)
		assert.Equal(t, 5.0, row.MomAmount)
		assert.Equal(t, 100.0, row.MomPercentage)
	})

	t.Run("daily headers are ascending and sparse per row", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 3, 3), "EC2", 1, "a"),
			rec(utc(2024, 3, 1), "EC2", 2, "a"),
			rec(utc(2024, 3, 2), "S3", 4, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.March, GranularityDaily)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, res.Headers)

		ec2 := rowByService(t, res, "EC2")
		_, ok := ec2.Values["2024-03-02"]
		assert.False(t, ok, "bucket without activity must be absent")
		assert.Equal(t, map[string]float64{"2024-03-01": 2, "2024-03-03": 1}, ec2.Values)
	})

	t.Run("rows sorted by total with stable ties", func(t *testing.T) {
		s := seed(t,
			rec(utc(2024, 3, 1), "B", 5, "a"),
			rec(utc(2024, 3, 2), "A", 5, "a"),
			rec(utc(2024, 3, 3), "C", 9, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)
		require.Len(t, res.Rows, 3)
		assert.Equal(t, "C", res.Rows[0].Service)
		// memory store lists by date, so B is observed before A
		assert.Equal(t, "B", res.Rows[1].Service)
		assert.Equal(t, "A", res.Rows[2].Service)
	})

	t.Run("window uses utc boundaries", func(t *testing.T) {
		s := seed(t,
			rec(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), "EC2", 1, "a"),
			rec(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "EC2", 100, "a"),
		)
		res, err := NewAggregator(s, nil).GetAnalyticsData(ctx, "", 2024, time.March, GranularityMonthly)
		require.NoError(t, err)
		assert.Equal(t, 1.0, rowByService(t, res, "EC2").Total)
	})

	t.Run("unknown granularity", func(t *testing.T) {
		_, err := NewAggregator(store.NewMemoryStore(), nil).GetAnalyticsData(ctx, "", 2024, time.March, "weekly")
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := NewAggregator(store.NewMemoryStore(), nil).GetAnalyticsData(ctx, "", 2024, 13, GranularityMonthly)
		var dateErr *InvalidDateError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, 13, dateErr.Month)
	})
}

func TestGetAnalyticsDataFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.New("connection reset")
	mockStore := store.NewMockStore(ctrl)

	t.Run("current window failure", func(t *testing.T) {
		mockStore.EXPECT().ListCostRecords(gomock.Any(), gomock.Any()).Return(nil, upstream)

		_, err := NewAggregator(mockStore, nil).GetAnalyticsData(context.Background(), "", 2024, time.March, GranularityMonthly)
		assert.ErrorIs(t, err, upstream)
	})

	t.Run("previous window failure", func(t *testing.T) {
		gomock.InOrder(
			mockStore.EXPECT().ListCostRecords(gomock.Any(), model.RecordFilter{
				From: utc(2024, 3, 1),
				To:   utc(2024, 4, 1).Add(-time.Millisecond),
			}).Return(nil, nil),
			mockStore.EXPECT().ListCostRecords(gomock.Any(), model.RecordFilter{
				From: utc(2024, 2, 1),
				To:   utc(2024, 3, 1).Add(-time.Millisecond),
			}).Return(nil, upstream),
		)

		_, err := NewAggregator(mockStore, nil).GetAnalyticsData(context.Background(), "", 2024, time.March, GranularityMonthly)
		assert.ErrorIs(t, err, upstream)
	})
}

// The calendar filler reads local dates while the aggregator reads UTC dates. This pins the
// resulting divergence near midnight so that any change to either convention is noticed.
func TestLocalAndUTCDayKeysDiverge(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	points := FillDailyCostsIn([]DailyCost{{Date: late, Amount: 7}}, 2024, time.March, tokyo)
	assert.Zero(t, points[0].Amount)
	assert.Equal(t, 7.0, points[1].Amount, "local calendar puts the record on Mar 2")

	s := seed(t, rec(late, "EC2", 7, "a"))
	res, err := NewAggregator(s, nil).GetAnalyticsData(context.Background(), "", 2024, time.March, GranularityDaily)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, res.Headers, "utc bucketing keeps the record on Mar 1")
}
