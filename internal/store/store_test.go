package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactories returns the stores that can run without external services.
func storeFactories(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "cost.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCostRecords(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			records := []*model.CostRecord{
				{Date: day(2024, 1, 2), Amount: 5, Service: "EC2", AccountID: "acct-1", RecordType: "Usage"},
				{Date: day(2024, 1, 1), Amount: 3, Service: "S3", AccountID: "acct-1", RecordType: "Usage"},
				{Date: day(2024, 1, 1), Amount: 7, Service: "EC2", AccountID: "acct-2", RecordType: "Usage"},
				{Date: day(2024, 2, 1), Amount: 9, Service: "EC2", AccountID: "acct-1", RecordType: "Usage"},
			}
			require.NoError(t, s.UpsertCostRecords(ctx, records))

			t.Run("filters by inclusive range and sorts by date", func(t *testing.T) {
				got, err := s.ListCostRecords(ctx, model.RecordFilter{
					From: day(2024, 1, 1),
					To:   day(2024, 1, 2),
				})
				require.NoError(t, err)
				require.Len(t, got, 3)
				assert.True(t, got[0].Date.Equal(day(2024, 1, 1)))
				assert.True(t, got[2].Date.Equal(day(2024, 1, 2)))
			})

			t.Run("filters by account", func(t *testing.T) {
				got, err := s.ListCostRecords(ctx, model.RecordFilter{AccountID: "acct-2"})
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, 7.0, got[0].Amount)
			})

			t.Run("all selects every account", func(t *testing.T) {
				got, err := s.ListCostRecords(ctx, model.RecordFilter{AccountID: model.AllAccounts})
				require.NoError(t, err)
				assert.Len(t, got, 4)
			})

			t.Run("re-import overwrites by natural key", func(t *testing.T) {
				require.NoError(t, s.UpsertCostRecords(ctx, []*model.CostRecord{
					{Date: day(2024, 2, 1), Amount: 11, Service: "EC2", AccountID: "acct-1", RecordType: "Usage"},
				}))
				got, err := s.ListCostRecords(ctx, model.RecordFilter{From: day(2024, 2, 1)})
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, 11.0, got[0].Amount)
				assert.Equal(t, RecordKey(got[0]), got[0].ID)
			})
		})
	}
}

func TestBudgets(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.FindBudget(ctx, "2024-03", "")
			assert.True(t, errors.Is(err, ErrNotFound))

			require.NoError(t, s.SetBudget(ctx, &model.Budget{Month: "2024-03", Amount: 100}))
			require.NoError(t, s.SetBudget(ctx, &model.Budget{Month: "2024-03", Amount: 150}))
			require.NoError(t, s.SetBudget(ctx, &model.Budget{Month: "2024-03", AccountID: "acct-1", Amount: 40}))

			global, err := s.FindBudget(ctx, "2024-03", "")
			require.NoError(t, err)
			assert.Equal(t, 150.0, global.Amount)

			scoped, err := s.FindBudget(ctx, "2024-03", "acct-1")
			require.NoError(t, err)
			assert.Equal(t, 40.0, scoped.Amount)
		})
	}
}

func TestAccounts(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			prod := &model.Account{AccountID: "1111", Name: "prod", Budget: 500, ExchangeRate: 150}
			dev := &model.Account{AccountID: "2222", Name: "dev", ExchangeRate: 140}
			require.NoError(t, s.UpsertAccount(ctx, prod))
			require.NoError(t, s.UpsertAccount(ctx, dev))
			require.NotEmpty(t, prod.ID)

			accounts, err := s.ListAccounts(ctx)
			require.NoError(t, err)
			require.Len(t, accounts, 2)
			assert.Equal(t, "dev", accounts[0].Name)

			prod.Budget = 750
			require.NoError(t, s.UpsertAccount(ctx, prod))
			got, err := s.GetAccount(ctx, prod.ID)
			require.NoError(t, err)
			assert.Equal(t, 750.0, got.Budget)

			_, err = s.GetAccount(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestForecastSnapshots(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)

			require.NoError(t, s.SaveForecastSnapshot(ctx, &model.ForecastSnapshot{
				Month: "2024-03", Type: "current_month", Amount: 10, CalculatedAt: base,
			}))
			require.NoError(t, s.SaveForecastSnapshot(ctx, &model.ForecastSnapshot{
				Month: "2024-03", Type: "current_month", Amount: 20, CalculatedAt: base.Add(24 * time.Hour),
			}))
			require.NoError(t, s.SaveForecastSnapshot(ctx, &model.ForecastSnapshot{
				Month: "2024-03", AccountID: "acct-1", Type: "current_month", Amount: 99, CalculatedAt: base.Add(48 * time.Hour),
			}))

			latest, err := s.GetLatestForecastSnapshot(ctx, "2024-03", "", "current_month")
			require.NoError(t, err)
			assert.Equal(t, 20.0, latest.Amount)
			assert.True(t, latest.CalculatedAt.Equal(base.Add(24*time.Hour)))

			_, err = s.GetLatestForecastSnapshot(ctx, "2024-04", "", "current_month")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRecordKey(t *testing.T) {
	a := &model.CostRecord{Date: day(2024, 1, 1), Service: "EC2", AccountID: "acct-1", RecordType: "Usage", Amount: 1}
	b := &model.CostRecord{Date: day(2024, 1, 1), Service: "EC2", AccountID: "acct-1", RecordType: "Usage", Amount: 2}
	c := &model.CostRecord{Date: day(2024, 1, 1), Service: "S3", AccountID: "acct-1", RecordType: "Usage", Amount: 1}

	assert.Equal(t, RecordKey(a), RecordKey(b), "amount is not part of the natural key")
	assert.NotEqual(t, RecordKey(a), RecordKey(c))
}
