package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"connectrpc.com/connect"
	cloudcostv1 "github.com/castlemilk/cloudcost/gen/cloudcost/v1"
	"github.com/castlemilk/cloudcost/gen/cloudcost/v1/cloudcostv1connect"
	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/scheduler"
	"github.com/castlemilk/cloudcost/internal/store"
	"go.uber.org/zap"
)

// CostService implements cloudcostv1connect.CostServiceHandler.
type CostService struct {
	store      store.Store
	aggregator *analytics.Aggregator
	forecaster *analytics.Forecaster
	dashboard  *analytics.Dashboard
	snapshots  *scheduler.SnapshotJob
	logger     *zap.Logger
}

var _ cloudcostv1connect.CostServiceHandler = (*CostService)(nil)

// NewCostService wires the analytics components over s. The forecaster, dashboard and snapshot
// job are built by the caller so that they share one clock and location.
func NewCostService(
	s store.Store,
	forecaster *analytics.Forecaster,
	dashboard *analytics.Dashboard,
	snapshots *scheduler.SnapshotJob,
	logger *zap.Logger,
) *CostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostService{
		store:      s,
		aggregator: analytics.NewAggregator(s, logger.Named("analytics")),
		forecaster: forecaster,
		dashboard:  dashboard,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// GetAnalytics returns the per-service pivot of a month with month-over-month deltas.
func (s *CostService) GetAnalytics(ctx context.Context, req *connect.Request[cloudcostv1.GetAnalyticsRequest]) (*connect.Response[cloudcostv1.GetAnalyticsResponse], error) {
	granularity, err := granularityFromProto(req.Msg.GetGranularity())
	if err != nil {
		return nil, toConnectError(err)
	}

	result, err := s.aggregator.GetAnalyticsData(ctx, req.Msg.GetAccountId(), int(req.Msg.GetYear()), time.Month(req.Msg.GetMonth()), granularity)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&cloudcostv1.GetAnalyticsResponse{
		Headers: result.Headers,
		Rows:    analyticsRowsToProto(result.Rows),
	}), nil
}

// GetDailyCosts returns one point per calendar day of the month.
func (s *CostService) GetDailyCosts(ctx context.Context, req *connect.Request[cloudcostv1.GetDailyCostsRequest]) (*connect.Response[cloudcostv1.GetDailyCostsResponse], error) {
	points, err := s.dashboard.GetDailyCosts(ctx, req.Msg.GetAccountId(), int(req.Msg.GetYear()), time.Month(req.Msg.GetMonth()))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&cloudcostv1.GetDailyCostsResponse{Points: chartPointsToProto(points)}), nil
}

// GetForecast projects spend through the requested period.
func (s *CostService) GetForecast(ctx context.Context, req *connect.Request[cloudcostv1.GetForecastRequest]) (*connect.Response[cloudcostv1.GetForecastResponse], error) {
	opts, err := forecastOptionsFromProto(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}

	result, err := s.forecaster.CalculateDetailedForecast(ctx, req.Msg.GetAccountId(), opts)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(forecastToProto(result)), nil
}

// GetDashboard returns the monthly overview.
func (s *CostService) GetDashboard(ctx context.Context, req *connect.Request[cloudcostv1.GetDashboardRequest]) (*connect.Response[cloudcostv1.GetDashboardResponse], error) {
	data, err := s.dashboard.GetDashboardData(ctx, req.Msg.GetAccountId(), req.Msg.GetMonth())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(dashboardToProto(data)), nil
}

// UpsertCostRecords stores already-retrieved billing records, replacing any with the same
// date, account, service and record type.
func (s *CostService) UpsertCostRecords(ctx context.Context, req *connect.Request[cloudcostv1.UpsertCostRecordsRequest]) (*connect.Response[cloudcostv1.UpsertCostRecordsResponse], error) {
	records := make([]*model.CostRecord, 0, len(req.Msg.GetRecords()))
	for i, r := range req.Msg.GetRecords() {
		if err := validateRecord(r); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("record %d: %w", i, err))
		}
		records = append(records, costRecordFromProto(r))
	}
	if len(records) == 0 {
		return connect.NewResponse(&cloudcostv1.UpsertCostRecordsResponse{}), nil
	}

	if err := s.store.UpsertCostRecords(ctx, records); err != nil {
		return nil, toConnectError(fmt.Errorf("failed to store cost records: %w", err))
	}
	s.logger.Info("cost records stored", zap.Int("records", len(records)))

	return connect.NewResponse(&cloudcostv1.UpsertCostRecordsResponse{Count: int32(len(records))}), nil
}

func validateRecord(r *cloudcostv1.CostRecord) error {
	switch {
	case r == nil:
		return errors.New("record is required")
	case r.GetDate() == nil:
		return errors.New("date is required")
	case !r.GetDate().IsValid():
		return fmt.Errorf("date: %w", r.GetDate().CheckValid())
	case r.GetService() == "":
		return errors.New("service is required")
	case math.IsNaN(r.GetAmount()) || math.IsInf(r.GetAmount(), 0):
		return fmt.Errorf("amount %v is not a number", r.GetAmount())
	}
	return nil
}

// SetBudget creates or replaces the budget of a month. An empty account is the global budget.
func (s *CostService) SetBudget(ctx context.Context, req *connect.Request[cloudcostv1.SetBudgetRequest]) (*connect.Response[cloudcostv1.SetBudgetResponse], error) {
	if _, _, err := analytics.ParseMonth(req.Msg.GetMonth()); err != nil {
		return nil, toConnectError(err)
	}
	amount := req.Msg.GetAmount()
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("budget amount %v must be a finite, non-negative number", amount))
	}

	budget := &model.Budget{
		Month:     req.Msg.GetMonth(),
		AccountID: model.AccountFilter(req.Msg.GetAccountId()),
		Amount:    amount,
	}
	if err := s.store.SetBudget(ctx, budget); err != nil {
		return nil, toConnectError(fmt.Errorf("failed to set budget: %w", err))
	}
	budget.ID = store.BudgetKey(budget.Month, budget.AccountID)

	return connect.NewResponse(&cloudcostv1.SetBudgetResponse{Budget: budgetToProto(budget)}), nil
}

// ListAccounts lists every account ordered by name.
func (s *CostService) ListAccounts(ctx context.Context, req *connect.Request[cloudcostv1.ListAccountsRequest]) (*connect.Response[cloudcostv1.ListAccountsResponse], error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, toConnectError(fmt.Errorf("failed to list accounts: %w", err))
	}

	out := make([]*cloudcostv1.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountToProto(a))
	}
	return connect.NewResponse(&cloudcostv1.ListAccountsResponse{Accounts: out}), nil
}

// UpsertAccount creates an account, or replaces it when its ID is set.
func (s *CostService) UpsertAccount(ctx context.Context, req *connect.Request[cloudcostv1.UpsertAccountRequest]) (*connect.Response[cloudcostv1.UpsertAccountResponse], error) {
	if req.Msg.GetAccount() == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("account is required"))
	}
	account := accountFromProto(req.Msg.GetAccount())
	if account.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("account name is required"))
	}
	if account.Budget < 0 || account.ExchangeRate < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("budget and exchange rate must not be negative"))
	}
	if account.ExchangeRate == 0 {
		account.ExchangeRate = model.DefaultExchangeRate
	}

	if err := s.store.UpsertAccount(ctx, account); err != nil {
		return nil, toConnectError(fmt.Errorf("failed to upsert account: %w", err))
	}
	return connect.NewResponse(&cloudcostv1.UpsertAccountResponse{Account: accountToProto(account)}), nil
}

// RecalculateForecasts runs the snapshot job immediately.
func (s *CostService) RecalculateForecasts(ctx context.Context, req *connect.Request[cloudcostv1.RecalculateForecastsRequest]) (*connect.Response[cloudcostv1.RecalculateForecastsResponse], error) {
	result, err := s.snapshots.Run(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	snapshots := make([]*cloudcostv1.ForecastSnapshot, 0, len(result.Snapshots))
	for _, snap := range result.Snapshots {
		snapshots = append(snapshots, snapshotToProto(snap))
	}
	return connect.NewResponse(&cloudcostv1.RecalculateForecastsResponse{
		Snapshots: snapshots,
		Failed:    int32(result.Failed),
	}), nil
}

// toConnectError maps domain errors onto connect codes, keeping the cause.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, analytics.ErrInvalidDate),
		errors.Is(err, analytics.ErrInvalidOptions),
		errors.Is(err, analytics.ErrInvalidGranularity):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, store.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
