package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeForecaster struct {
	totals map[string]float64
	fail   map[string]bool
	calls  []string
}

func (f *fakeForecaster) CalculateDetailedForecast(_ context.Context, accountID string, opts analytics.ForecastOptions) (*analytics.ForecastResult, error) {
	f.calls = append(f.calls, accountID)
	if opts.Period != analytics.PeriodCurrentMonth {
		return nil, errors.New("unexpected period")
	}
	if f.fail[accountID] {
		return nil, errors.New("boom")
	}
	return &analytics.ForecastResult{TotalPredicted: f.totals[accountID]}, nil
}

var fixedNow = time.Date(2024, 7, 15, 3, 0, 0, 0, time.UTC)

func TestSnapshotJobRun(t *testing.T) {
	ctx := context.Background()

	t.Run("stores one snapshot per selector", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "prod"}))
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "b", Name: "dev"}))

		f := &fakeForecaster{totals: map[string]float64{"all": 300, "a": 200, "b": 100}}
		job := NewSnapshotJob(f, s, nil).WithClock(func() time.Time { return fixedNow }, time.UTC)

		res, err := job.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.Failed)
		require.Len(t, res.Snapshots, 3)
		assert.Equal(t, []string{"all", "b", "a"}, f.calls)

		all, err := s.GetLatestForecastSnapshot(ctx, "2024-07", "", model.SnapshotTypeTotal)
		require.NoError(t, err)
		assert.Equal(t, 300.0, all.Amount)
		assert.True(t, all.CalculatedAt.Equal(fixedNow))

		a, err := s.GetLatestForecastSnapshot(ctx, "2024-07", "a", model.SnapshotTypeTotal)
		require.NoError(t, err)
		assert.Equal(t, 200.0, a.Amount)
	})

	t.Run("a failing account does not abort the run", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.UpsertAccount(ctx, &model.Account{ID: "a", Name: "prod"}))

		f := &fakeForecaster{totals: map[string]float64{"all": 10}, fail: map[string]bool{"a": true}}
		res, err := NewSnapshotJob(f, s, nil).WithClock(func() time.Time { return fixedNow }, time.UTC).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		assert.Len(t, res.Snapshots, 1)
	})

	t.Run("listing accounts fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := store.NewMockStore(ctrl)
		m.EXPECT().ListAccounts(gomock.Any()).Return(nil, errors.New("offline"))

		_, err := NewSnapshotJob(&fakeForecaster{}, m, nil).Run(ctx)
		assert.Error(t, err)
	})

	t.Run("save failures are counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := store.NewMockStore(ctrl)
		m.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil)
		m.EXPECT().SaveForecastSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

		res, err := NewSnapshotJob(&fakeForecaster{}, m, nil).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		assert.Empty(t, res.Snapshots)
	})
}

func TestScheduler(t *testing.T) {
	job := NewSnapshotJob(&fakeForecaster{}, store.NewMemoryStore(), nil)

	t.Run("rejects an invalid spec", func(t *testing.T) {
		_, err := New(job, "every tuesday", time.UTC, nil)
		assert.Error(t, err)
	})

	t.Run("starts and stops", func(t *testing.T) {
		s, err := New(job, "", time.UTC, nil)
		require.NoError(t, err)
		s.Start()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	})
}
