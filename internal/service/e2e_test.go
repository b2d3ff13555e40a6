package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	cloudcostv1 "github.com/castlemilk/cloudcost/gen/cloudcost/v1"
	"github.com/castlemilk/cloudcost/gen/cloudcost/v1/cloudcostv1connect"
	"github.com/castlemilk/cloudcost/internal/interceptor"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestE2ECostService(t *testing.T) {
	s := store.NewMemoryStore()
	path, handler := cloudcostv1connect.NewCostServiceHandler(
		newTestService(s),
		connect.WithInterceptors(interceptor.Logging(zaptest.NewLogger(t))),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := cloudcostv1connect.NewCostServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	t.Run("unknown procedure", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/cloudcost.v1.CostService/Nope", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("upsert account and records", func(t *testing.T) {
		acct, err := client.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{
			Account: &cloudcostv1.Account{Id: "acct-1", AccountId: "123456789012", Name: "prod", Budget: 900, ExchangeRate: 150},
		}))
		require.NoError(t, err)
		assert.Equal(t, "acct-1", acct.Msg.Account.GetId())

		var records []*cloudcostv1.CostRecord
		for m := time.January; m <= time.July; m++ {
			records = append(records,
				protoRecord(2024, m, 1, "EC2", 300),
				protoRecord(2024, m, 1, "Tax", 30),
			)
		}
		resp, err := client.UpsertCostRecords(ctx, connect.NewRequest(&cloudcostv1.UpsertCostRecordsRequest{Records: records}))
		require.NoError(t, err)
		assert.EqualValues(t, len(records), resp.Msg.Count)
	})

	t.Run("analytics round trip", func(t *testing.T) {
		resp, err := client.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{
			AccountId: "acct-1", Year: 2024, Month: 7, Granularity: cloudcostv1.Granularity_GRANULARITY_DAILY,
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-07-01"}, resp.Msg.Headers)
		require.Len(t, resp.Msg.Rows, 2)
		for _, row := range resp.Msg.Rows {
			assert.Zero(t, row.MomAmount)
			assert.Contains(t, row.Values, "2024-07-01")
		}
	})

	t.Run("json clients", func(t *testing.T) {
		jsonClient := cloudcostv1connect.NewCostServiceClient(http.DefaultClient, server.URL, connect.WithProtoJSON())
		resp, err := jsonClient.GetAnalytics(ctx, connect.NewRequest(&cloudcostv1.GetAnalyticsRequest{
			AccountId: "acct-1", Year: 2024, Month: 7,
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-07"}, resp.Msg.Headers)
		require.Len(t, resp.Msg.Rows, 2)
		assert.Equal(t, 300.0, resp.Msg.Rows[0].Values["2024-07"])
	})

	t.Run("set budget", func(t *testing.T) {
		resp, err := client.SetBudget(ctx, connect.NewRequest(&cloudcostv1.SetBudgetRequest{
			Month: "2024-07", AccountId: "acct-1", Amount: 1000,
		}))
		require.NoError(t, err)
		assert.Equal(t, store.BudgetKey("2024-07", "acct-1"), resp.Msg.Budget.GetId())
	})

	t.Run("forecast excludes tax", func(t *testing.T) {
		resp, err := client.GetForecast(ctx, connect.NewRequest(&cloudcostv1.GetForecastRequest{
			AccountId: "acct-1",
			Period:    cloudcostv1.ForecastPeriod_FORECAST_PERIOD_NEXT_MONTH,
		}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.ServiceBreakdown, 1)
		assert.Equal(t, "EC2", resp.Msg.ServiceBreakdown[0].ServiceName)
		assert.Equal(t, 1000.0, resp.Msg.Budget)
	})

	t.Run("recalculate then dashboard", func(t *testing.T) {
		recalc, err := client.RecalculateForecasts(ctx, connect.NewRequest(&cloudcostv1.RecalculateForecastsRequest{}))
		require.NoError(t, err)
		require.Len(t, recalc.Msg.Snapshots, 2)

		dash, err := client.GetDashboard(ctx, connect.NewRequest(&cloudcostv1.GetDashboardRequest{AccountId: "acct-1"}))
		require.NoError(t, err)
		assert.Equal(t, "2024-07", dash.Msg.Month)
		assert.Equal(t, 300.0, dash.Msg.TotalCost)
		assert.Equal(t, 1000.0, dash.Msg.Budget)
		assert.Equal(t, recalc.Msg.Snapshots[1].Amount, dash.Msg.Forecast)
		assert.Len(t, dash.Msg.Daily, 31)
	})

	t.Run("daily costs", func(t *testing.T) {
		resp, err := client.GetDailyCosts(ctx, connect.NewRequest(&cloudcostv1.GetDailyCostsRequest{
			AccountId: "acct-1", Year: 2024, Month: 7,
		}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Points, 31)
		assert.Equal(t, "Jul 1", resp.Msg.Points[0].GetName())
		assert.Equal(t, 330.0, resp.Msg.Points[0].GetAmount())
	})

	t.Run("invalid argument survives the wire", func(t *testing.T) {
		_, err := client.SetBudget(ctx, connect.NewRequest(&cloudcostv1.SetBudgetRequest{Month: "July"}))
		require.Error(t, err)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("list accounts", func(t *testing.T) {
		resp, err := client.ListAccounts(ctx, connect.NewRequest(&cloudcostv1.ListAccountsRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Accounts, 1)
		assert.Equal(t, "prod", resp.Msg.Accounts[0].Name)
	})
}
