package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cost_records (
	id TEXT PRIMARY KEY,
	date TIMESTAMPTZ NOT NULL,
	amount DOUBLE PRECISION NOT NULL,
	service TEXT NOT NULL,
	account_id TEXT NOT NULL,
	record_type TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cost_records_date ON cost_records(date);

CREATE TABLE IF NOT EXISTS budgets (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	account_id TEXT NOT NULL DEFAULT '',
	amount DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	name TEXT NOT NULL,
	profile_name TEXT NOT NULL DEFAULT '',
	budget DOUBLE PRECISION NOT NULL DEFAULT 0,
	exchange_rate DOUBLE PRECISION NOT NULL DEFAULT 150
);

CREATE TABLE IF NOT EXISTS forecast_snapshots (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	account_id TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	amount DOUBLE PRECISION NOT NULL,
	calculated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_forecast_snapshots_lookup ON forecast_snapshots(month, account_id, type, calculated_at DESC);`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL and applies the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply postgres schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases every pooled connection.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error) {
	query := `SELECT id, date, amount, service, account_id, record_type FROM cost_records WHERE true`
	var args []any
	if account := model.AccountFilter(filter.AccountID); account != "" {
		args = append(args, account)
		query += ` AND account_id = $` + strconv.Itoa(len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost records: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.CostRecord, error) {
		var r model.CostRecord
		err := row.Scan(&r.ID, &r.Date, &r.Amount, &r.Service, &r.AccountID, &r.RecordType)
		r.Date = r.Date.UTC()
		return &r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cost records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) UpsertCostRecords(ctx context.Context, records []*model.CostRecord) error {
	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO cost_records (id, date, amount, service, account_id, record_type)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount`,
			RecordKey(r), r.Date.UTC(), r.Amount, r.Service, r.AccountID, r.RecordType)
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert cost records: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error) {
	var b model.Budget
	err := s.pool.QueryRow(ctx,
		`SELECT id, month, account_id, amount FROM budgets WHERE month = $1 AND account_id = $2`,
		month, accountID).Scan(&b.ID, &b.Month, &b.AccountID, &b.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("budget %s/%q: %w", month, accountID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &b, nil
}

func (s *PostgresStore) SetBudget(ctx context.Context, budget *model.Budget) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO budgets (id, month, account_id, amount) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount`,
		BudgetKey(budget.Month, budget.AccountID), budget.Month, budget.AccountID, budget.Amount)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account
	err := s.pool.QueryRow(ctx,
		`SELECT id, account_id, name, profile_name, budget, exchange_rate FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.AccountID, &a.Name, &a.ProfileName, &a.Budget, &a.ExchangeRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, account_id, name, profile_name, budget, exchange_rate FROM accounts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Account, error) {
		var a model.Account
		err := row.Scan(&a.ID, &a.AccountID, &a.Name, &a.ProfileName, &a.Budget, &a.ExchangeRate)
		return &a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return accounts, nil
}

func (s *PostgresStore) UpsertAccount(ctx context.Context, account *model.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO accounts (id, account_id, name, profile_name, budget, exchange_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			name = EXCLUDED.name,
			profile_name = EXCLUDED.profile_name,
			budget = EXCLUDED.budget,
			exchange_rate = EXCLUDED.exchange_rate`,
		account.ID, account.AccountID, account.Name, account.ProfileName, account.Budget, account.ExchangeRate)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO forecast_snapshots (id, month, account_id, type, amount, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		snapshot.ID, snapshot.Month, snapshot.AccountID, snapshot.Type, snapshot.Amount, snapshot.CalculatedAt)
	if err != nil {
		return fmt.Errorf("failed to save forecast snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error) {
	var snap model.ForecastSnapshot
	err := s.pool.QueryRow(ctx, `
		SELECT id, month, account_id, type, amount, calculated_at FROM forecast_snapshots
		WHERE month = $1 AND account_id = $2 AND type = $3
		ORDER BY calculated_at DESC LIMIT 1`,
		month, accountID, snapshotType).
		Scan(&snap.ID, &snap.Month, &snap.AccountID, &snap.Type, &snap.Amount, &snap.CalculatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("forecast snapshot %s/%q: %w", month, accountID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast snapshot: %w", err)
	}
	snap.CalculatedAt = snap.CalculatedAt.UTC()
	return &snap, nil
}
