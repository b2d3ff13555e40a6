package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"connectrpc.com/connect"
	cloudcostv1 "github.com/castlemilk/cloudcost/gen/cloudcost/v1"
	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/scheduler"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var testNow = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

// newTestService builds a CostService over s with a fixed clock in UTC.
func newTestService(s store.Store) *CostService {
	clock := func() time.Time { return testNow }
	opts := []analytics.ForecasterOption{analytics.WithClock(clock), analytics.WithLocation(time.UTC)}

	forecaster := analytics.NewForecaster(s, s, opts...)
	dashboard := analytics.NewDashboard(s, opts...)
	snapshots := scheduler.NewSnapshotJob(forecaster, s, nil).WithClock(clock, time.UTC)
	return NewCostService(s, forecaster, dashboard, snapshots, nil)
}

func record(y int, m time.Month, d int, service string, amount float64) *model.CostRecord {
	return &model.CostRecord{
		Date:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Service:   service,
		Amount:    amount,
		AccountID: "acct-1",
	}
}

// protoRecord is record on the wire.
func protoRecord(y int, m time.Month, d int, service string, amount float64) *cloudcostv1.CostRecord {
	return &cloudcostv1.CostRecord{
		Date:      timestamppb.New(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		Service:   service,
		Amount:    amount,
		AccountId: "acct-1",
	}
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err))
}

func TestUpsertCostRecords(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		records   []*cloudcostv1.CostRecord
		wantCount int32
		wantCode  connect.Code
	}{
		{
			name: "stores records",
			records: []*cloudcostv1.CostRecord{
				protoRecord(2024, 7, 1, "EC2", 10),
				protoRecord(2024, 7, 1, "S3", 2),
			},
			wantCount: 2,
		},
		{
			name:      "empty request",
			wantCount: 0,
		},
		{
			name:     "missing service",
			records:  []*cloudcostv1.CostRecord{protoRecord(2024, 7, 1, "", 10)},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "missing date",
			records:  []*cloudcostv1.CostRecord{{Service: "EC2", Amount: 1}},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name: "out of range date",
			records: []*cloudcostv1.CostRecord{{
				Date:    &timestamppb.Timestamp{Seconds: 1, Nanos: -1},
				Service: "EC2",
			}},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "nan amount",
			records:  []*cloudcostv1.CostRecord{protoRecord(2024, 7, 1, "EC2", math.NaN())},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "infinite amount",
			records:  []*cloudcostv1.CostRecord{protoRecord(2024, 7, 1, "EC2", math.Inf(1))},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "nil record",
			records:  []*cloudcostv1.CostRecord{nil},
			wantCode: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(store.NewMemoryStore())
			resp, err := svc.UpsertCostRecords(ctx, connect.NewRequest(&cloudcostv1.UpsertCostRecordsRequest{Records: tt.records}))
			if tt.wantCode != 0 {
				assertCode(t, tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, resp.Msg.Count)
		})
	}
}

func TestUpsertCostRecordsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().
		UpsertCostRecords(gomock.Any(), gomock.Len(1)).
		Return(errors.New("write conflict"))

	svc := newTestService(mockStore)
	_, err := svc.UpsertCostRecords(context.Background(), connect.NewRequest(&cloudcostv1.UpsertCostRecordsRequest{
		Records: []*cloudcostv1.CostRecord{protoRecord(2024, 7, 1, "EC2", 1)},
	}))
	assertCode(t, connect.CodeInternal, err)
}

func TestGetAnalytics(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.UpsertCostRecords(ctx, []*model.CostRecord{
		record(2024, 6, 10, "EC2", 80),
		record(2024, 7, 10, "EC2", 100),
	}))
	svc := newTestService(s)

	t.Run("defaults to monthly", func(t *testing.T) {
		resp, err := svc.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{
			AccountId: "all", Year: 2024, Month: 7,
		}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Rows, 1)
		row := resp.Msg.Rows[0]
		assert.Equal(t, "EC2", row.Service)
		assert.Equal(t, 100.0, row.Total)
		assert.Equal(t, 20.0, row.MomAmount)
		assert.InDelta(t, 25.0, row.MomPercentage, 1e-9)
		assert.Equal(t, map[string]float64{"2024-07": 100}, row.Values)
	})

	t.Run("daily buckets", func(t *testing.T) {
		resp, err := svc.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{
			Year: 2024, Month: 7, Granularity: cloudcostv1.Granularity_GRANULARITY_DAILY,
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-07-10"}, resp.Msg.Headers)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := svc.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{Year: 2024, Month: 13}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("unknown granularity", func(t *testing.T) {
		_, err := svc.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{
			Year: 2024, Month: 7, Granularity: cloudcostv1.Granularity(42),
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})
}

func TestGetDailyCosts(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.UpsertCostRecords(ctx, []*model.CostRecord{record(2024, 2, 29, "EC2", 4)}))

	resp, err := newTestService(s).GetDailyCosts(ctx, connect.NewRequest(&cloudcostv1.GetDailyCostsRequest{
		Year: 2024, Month: 2,
	}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Points, 29)
	assert.Equal(t, "Feb 29", resp.Msg.Points[28].GetName())
	assert.Equal(t, 4.0, resp.Msg.Points[28].GetAmount())
}

func TestGetForecast(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	var records []*model.CostRecord
	for m := time.January; m <= time.June; m++ {
		records = append(records, record(2024, m, 1, "EC2", 300))
	}
	require.NoError(t, s.UpsertCostRecords(ctx, records))
	svc := newTestService(s)

	t.Run("projects the next month", func(t *testing.T) {
		resp, err := svc.GetForecast(ctx, connect.NewRequest(&cloudcostv1.GetForecastRequest{
			AccountId: "all",
			Period:    cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_MONTH,
		}))
		require.NoError(t, err)
		assert.Len(t, resp.Msg.History, 6)
		require.Len(t, resp.Msg.Forecast, 2)
		assert.Equal(t, "2024-08", resp.Msg.Forecast[1].GetDate())
		assert.Positive(t, resp.Msg.TotalPredicted)
	})

	t.Run("unspecified period is the current month", func(t *testing.T) {
		resp, err := svc.GetForecast(ctx, connect.NewRequest(&cloudcostv1.GetForecastRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Forecast, 1)
		assert.Equal(t, "2024-07", resp.Msg.Forecast[0].GetDate())
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		_, err := svc.GetForecast(ctx, connect.NewRequest(&cloudcostv1.GetForecastRequest{
			Period: cloudcostv1.ForecastPeriod(42),
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	invalid := []struct {
		name string
		req  *cloudcostv1.GetForecastRequest
	}{
		{"negative adjustment", &cloudcostv1.GetForecastRequest{AdjustmentFactor: -1}},
		{"infinite adjustment", &cloudcostv1.GetForecastRequest{AdjustmentFactor: math.Inf(1)}},
		{"infinite fixed cost", &cloudcostv1.GetForecastRequest{AdditionalFixedCost: math.Inf(1)}},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := svc.GetForecast(ctx, connect.NewRequest(tt.req))
			assertCode(t, connect.CodeInvalidArgument, err)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed month", func(t *testing.T) {
		_, err := newTestService(store.NewMemoryStore()).GetDashboard(ctx, connect.NewRequest(&cloudcostv1.GetDashboardRequest{Month: "07/2024"}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("summarises the month", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.UpsertCostRecords(ctx, []*model.CostRecord{
			record(2024, 7, 2, "EC2", 30),
			record(2024, 7, 2, "S3", 10),
		}))
		resp, err := newTestService(s).GetDashboard(ctx, connect.NewRequest(&cloudcostv1.GetDashboardRequest{AccountId: "all"}))
		require.NoError(t, err)
		assert.Equal(t, "2024-07", resp.Msg.Month)
		assert.Equal(t, 40.0, resp.Msg.TotalCost)
		assert.Equal(t, "$40.00", resp.Msg.FormattedTotal)
		require.Len(t, resp.Msg.Records, 1)
		assert.True(t, resp.Msg.Records[0].GetDate().AsTime().Equal(time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 40.0, resp.Msg.Records[0].GetAmount())
		assert.Len(t, resp.Msg.Daily, 31)
	})
}

func TestSetBudget(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *cloudcostv1.SetBudgetRequest
		wantID   string
		wantCode connect.Code
	}{
		{
			name:    "account budget",
			request: &cloudcostv1.SetBudgetRequest{Month: "2024-07", AccountId: "acct-1", Amount: 500},
			wantID:  store.BudgetKey("2024-07", "acct-1"),
		},
		{
			name:    "all accounts is the global budget",
			request: &cloudcostv1.SetBudgetRequest{Month: "2024-07", AccountId: "all", Amount: 500},
			wantID:  store.BudgetKey("2024-07", ""),
		},
		{
			name:     "malformed month",
			request:  &cloudcostv1.SetBudgetRequest{Month: "2024-7-1", Amount: 500},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "negative amount",
			request:  &cloudcostv1.SetBudgetRequest{Month: "2024-07", Amount: -1},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "infinite amount",
			request:  &cloudcostv1.SetBudgetRequest{Month: "2024-07", Amount: math.Inf(1)},
			wantCode: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			resp, err := newTestService(s).SetBudget(ctx, connect.NewRequest(tt.request))
			if tt.wantCode != 0 {
				assertCode(t, tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, resp.Msg.Budget.GetId())

			stored, err := s.FindBudget(ctx, tt.request.Month, model.AccountFilter(tt.request.AccountId))
			require.NoError(t, err)
			assert.Equal(t, tt.request.Amount, stored.Amount)
		})
	}
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(store.NewMemoryStore())

	resp, err := svc.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{
		Account: &cloudcostv1.Account{AccountId: "123456789012", Name: "prod", Budget: 1000},
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Msg.Account.GetId())
	assert.Equal(t, model.DefaultExchangeRate, resp.Msg.Account.GetExchangeRate())

	_, err = svc.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{
		Account: &cloudcostv1.Account{Name: "dev", ExchangeRate: 140},
	}))
	require.NoError(t, err)

	list, err := svc.ListAccounts(ctx, connect.NewRequest(&cloudcostv1.ListAccountsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Accounts, 2)
	assert.Equal(t, "dev", list.Msg.Accounts[0].Name)
	assert.Equal(t, "prod", list.Msg.Accounts[1].Name)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{}))
		assertCode(t, connect.CodeInvalidArgument, err)

		_, err = svc.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{Account: &cloudcostv1.Account{}}))
		assertCode(t, connect.CodeInvalidArgument, err)

		_, err = svc.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{
			Account: &cloudcostv1.Account{Name: "x", Budget: -5},
		}))
		assertCode(t, connect.CodeInvalidArgument, err)
	})
}

func TestRecalculateForecasts(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "acct-1", Name: "prod"}))
	require.NoError(t, s.UpsertCostRecords(ctx, []*model.CostRecord{
		record(2024, 6, 1, "EC2", 300),
		record(2024, 7, 1, "EC2", 100),
	}))

	resp, err := newTestService(s).RecalculateForecasts(ctx, connect.NewRequest(&cloudcostv1.RecalculateForecastsRequest{}))
	require.NoError(t, err)
	assert.Zero(t, resp.Msg.Failed)
	require.Len(t, resp.Msg.Snapshots, 2)
	assert.Equal(t, "", resp.Msg.Snapshots[0].GetAccountId())
	assert.Equal(t, "acct-1", resp.Msg.Snapshots[1].GetAccountId())
	assert.True(t, resp.Msg.Snapshots[0].GetCalculatedAt().AsTime().Equal(testNow))

	snap, err := s.GetLatestForecastSnapshot(ctx, "2024-07", "", model.SnapshotTypeTotal)
	require.NoError(t, err)
	assert.Equal(t, resp.Msg.Snapshots[0].Amount, snap.Amount)
}

func TestRecalculateForecastsListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().ListAccounts(gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := newTestService(mockStore).RecalculateForecasts(context.Background(), connect.NewRequest(&cloudcostv1.RecalculateForecastsRequest{}))
	assertCode(t, connect.CodeDeadlineExceeded, err)
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{analytics.ErrInvalidOptions, connect.CodeInvalidArgument},
		{&analytics.InvalidDateError{Op: "test", Year: 2024, Month: 2, Day: 30}, connect.CodeInvalidArgument},
		{store.ErrNotFound, connect.CodeNotFound},
		{context.Canceled, connect.CodeCanceled},
		{errors.New("boom"), connect.CodeInternal},
		{connect.NewError(connect.CodeUnavailable, errors.New("down")), connect.CodeUnavailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, connect.CodeOf(toConnectError(tt.err)), tt.err.Error())
	}
}
