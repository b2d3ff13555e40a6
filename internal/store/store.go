package store

import (
	"context"
	"errors"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a budget, account or snapshot does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for all database operations used by the service
type Store interface {
	// Cost record operations
	ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error)
	UpsertCostRecords(ctx context.Context, records []*model.CostRecord) error

	// Budget operations
	FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error)
	SetBudget(ctx context.Context, budget *model.Budget) error

	// Account operations
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	UpsertAccount(ctx context.Context, account *model.Account) error

	// Forecast snapshot operations
	SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error
	GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error)
}

// keyNamespace seeds deterministic IDs so that re-importing the same record overwrites it.
var keyNamespace = uuid.MustParse("6f1c8a52-2f0e-4c55-9a51-0b7f3f3f9d2e")

// RecordKey returns the stable ID of a cost record derived from its natural key
// (date, account, service, record type).
func RecordKey(r *model.CostRecord) string {
	key := r.Date.UTC().Format("2006-01-02T15:04:05Z") + "|" + r.AccountID + "|" + r.Service + "|" + r.RecordType
	return uuid.NewSHA1(keyNamespace, []byte(key)).String()
}

// BudgetKey returns the stable ID of a budget for a month and account.
func BudgetKey(month, accountID string) string {
	return uuid.NewSHA1(keyNamespace, []byte("budget|"+month+"|"+accountID)).String()
}

// matchesFilter reports whether r falls inside the inclusive range and account of f.
func matchesFilter(r *model.CostRecord, f model.RecordFilter) bool {
	if account := model.AccountFilter(f.AccountID); account != "" && r.AccountID != account {
		return false
	}
	if !f.From.IsZero() && r.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.Date.After(f.To) {
		return false
	}
	return true
}
