// Package scheduler runs periodic forecast snapshots.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/model"
	"go.uber.org/zap"
)

// Forecaster computes a forecast for one account selector.
type Forecaster interface {
	CalculateDetailedForecast(ctx context.Context, accountID string, opts analytics.ForecastOptions) (*analytics.ForecastResult, error)
}

// SnapshotStore lists the accounts to snapshot and persists the results.
type SnapshotStore interface {
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error
}

// RunResult summarises one snapshot run.
type RunResult struct {
	Snapshots []*model.ForecastSnapshot
	Failed    int
}

// SnapshotJob stores the current month's predicted total for all accounts combined and for each
// account individually.
type SnapshotJob struct {
	forecaster Forecaster
	store      SnapshotStore
	now        func() time.Time
	loc        *time.Location
	logger     *zap.Logger
}

// NewSnapshotJob creates a snapshot job. The clock and location should match the forecaster's.
func NewSnapshotJob(forecaster Forecaster, store SnapshotStore, logger *zap.Logger) *SnapshotJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotJob{
		forecaster: forecaster,
		store:      store,
		now:        time.Now,
		loc:        time.Local,
		logger:     logger.Named("snapshot"),
	}
}

// WithClock overrides the wall clock and calendar location.
func (j *SnapshotJob) WithClock(now func() time.Time, loc *time.Location) *SnapshotJob {
	j.now = now
	j.loc = loc
	return j
}

// Run computes and stores one snapshot per account selector. A failing account is logged and
// counted; only a failure to list accounts aborts the run.
func (j *SnapshotJob) Run(ctx context.Context) (*RunResult, error) {
	accounts, err := j.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	selectors := make([]string, 0, len(accounts)+1)
	selectors = append(selectors, model.AllAccounts)
	for _, a := range accounts {
		selectors = append(selectors, a.ID)
	}

	now := j.now().In(j.loc)
	month := model.MonthKey(now)
	result := &RunResult{}
	for _, selector := range selectors {
		forecast, err := j.forecaster.CalculateDetailedForecast(ctx, selector, analytics.ForecastOptions{
			Period: analytics.PeriodCurrentMonth,
		})
		if err != nil {
			j.logger.Error("forecast failed", zap.String("account_id", selector), zap.Error(err))
			result.Failed++
			continue
		}

		snap := &model.ForecastSnapshot{
			Month:        month,
			AccountID:    model.AccountFilter(selector),
			Type:         model.SnapshotTypeTotal,
			Amount:       forecast.TotalPredicted,
			CalculatedAt: now.UTC(),
		}
		if err := j.store.SaveForecastSnapshot(ctx, snap); err != nil {
			j.logger.Error("failed to save snapshot", zap.String("account_id", selector), zap.Error(err))
			result.Failed++
			continue
		}
		result.Snapshots = append(result.Snapshots, snap)
	}

	j.logger.Info("forecast snapshots stored",
		zap.String("month", month),
		zap.Int("saved", len(result.Snapshots)),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
