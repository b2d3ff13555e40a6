package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/google/uuid"
)

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	// Storage maps
	records   map[string]*model.CostRecord
	budgets   map[string]*model.Budget
	accounts  map[string]*model.Account
	snapshots []*model.ForecastSnapshot
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string]*model.CostRecord),
		budgets:  make(map[string]*model.Budget),
		accounts: make(map[string]*model.Account),
	}
}

// Cost record operations

func (m *MemoryStore) ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.CostRecord
	for _, r := range m.records {
		if !matchesFilter(r, filter) {
			continue
		}
		rec := *r
		result = append(result, &rec)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *MemoryStore) UpsertCostRecords(ctx context.Context, records []*model.CostRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range records {
		rec := *r
		rec.ID = RecordKey(r)
		m.records[rec.ID] = &rec
	}
	return nil
}

// Budget operations

func (m *MemoryStore) FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	budget, ok := m.budgets[BudgetKey(month, accountID)]
	if !ok {
		return nil, fmt.Errorf("budget %s/%q: %w", month, accountID, ErrNotFound)
	}
	b := *budget
	return &b, nil
}

func (m *MemoryStore) SetBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := *budget
	b.ID = BudgetKey(b.Month, b.AccountID)
	m.budgets[b.ID] = &b
	return nil
}

// Account operations

func (m *MemoryStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	a := *account
	return &a, nil
}

func (m *MemoryStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		a := *account
		result = append(result, &a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *MemoryStore) UpsertAccount(ctx context.Context, account *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	a := *account
	m.accounts[a.ID] = &a
	return nil
}

// Forecast snapshot operations

func (m *MemoryStore) SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	s := *snapshot
	m.snapshots = append(m.snapshots, &s)
	return nil
}

func (m *MemoryStore) GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *model.ForecastSnapshot
	for _, s := range m.snapshots {
		if s.Month != month || s.AccountID != accountID || s.Type != snapshotType {
			continue
		}
		if latest == nil || s.CalculatedAt.After(latest.CalculatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("forecast snapshot %s/%q: %w", month, accountID, ErrNotFound)
	}
	s := *latest
	return &s, nil
}
