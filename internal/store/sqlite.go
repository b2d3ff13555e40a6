package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cost_records (
	id TEXT PRIMARY KEY,
	date_ms INTEGER NOT NULL,
	amount REAL NOT NULL,
	service TEXT NOT NULL,
	account_id TEXT NOT NULL,
	record_type TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cost_records_date ON cost_records(date_ms);

CREATE TABLE IF NOT EXISTS budgets (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	account_id TEXT NOT NULL DEFAULT '',
	amount REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	name TEXT NOT NULL,
	profile_name TEXT NOT NULL DEFAULT '',
	budget REAL NOT NULL DEFAULT 0,
	exchange_rate REAL NOT NULL DEFAULT 150
);

CREATE TABLE IF NOT EXISTS forecast_snapshots (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	account_id TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	amount REAL NOT NULL,
	calculated_at_ms INTEGER NOT NULL
);`

// SQLiteStore implements Store on a local SQLite file, the desktop default.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and applies the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc serialises writers; a single connection avoids SQLITE_BUSY under concurrent upserts.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error) {
	query := `SELECT id, date_ms, amount, service, account_id, record_type FROM cost_records WHERE 1=1`
	var args []any
	if account := model.AccountFilter(filter.AccountID); account != "" {
		query += ` AND account_id = ?`
		args = append(args, account)
	}
	if !filter.From.IsZero() {
		query += ` AND date_ms >= ?`
		args = append(args, filter.From.UnixMilli())
	}
	if !filter.To.IsZero() {
		query += ` AND date_ms <= ?`
		args = append(args, filter.To.UnixMilli())
	}
	query += ` ORDER BY date_ms ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost records: %w", err)
	}
	defer rows.Close()

	var records []*model.CostRecord
	for rows.Next() {
		var r model.CostRecord
		var dateMs int64
		if err := rows.Scan(&r.ID, &dateMs, &r.Amount, &r.Service, &r.AccountID, &r.RecordType); err != nil {
			return nil, fmt.Errorf("failed to scan cost record: %w", err)
		}
		r.Date = time.UnixMilli(dateMs).UTC()
		records = append(records, &r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) UpsertCostRecords(ctx context.Context, records []*model.CostRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cost_records (id, date_ms, amount, service, account_id, record_type)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET amount = excluded.amount`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, RecordKey(r), r.Date.UnixMilli(), r.Amount, r.Service, r.AccountID, r.RecordType); err != nil {
			return fmt.Errorf("failed to upsert cost record: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error) {
	var b model.Budget
	err := s.db.QueryRowContext(ctx,
		`SELECT id, month, account_id, amount FROM budgets WHERE month = ? AND account_id = ?`,
		month, accountID).Scan(&b.ID, &b.Month, &b.AccountID, &b.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("budget %s/%q: %w", month, accountID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &b, nil
}

func (s *SQLiteStore) SetBudget(ctx context.Context, budget *model.Budget) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, month, account_id, amount) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET amount = excluded.amount`,
		BudgetKey(budget.Month, budget.AccountID), budget.Month, budget.AccountID, budget.Amount)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, profile_name, budget, exchange_rate FROM accounts WHERE id = ?`, id).
		Scan(&a.ID, &a.AccountID, &a.Name, &a.ProfileName, &a.Budget, &a.ExchangeRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, name, profile_name, budget, exchange_rate FROM accounts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Name, &a.ProfileName, &a.Budget, &a.ExchangeRate); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

func (s *SQLiteStore) UpsertAccount(ctx context.Context, account *model.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, account_id, name, profile_name, budget, exchange_rate)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			account_id = excluded.account_id,
			name = excluded.name,
			profile_name = excluded.profile_name,
			budget = excluded.budget,
			exchange_rate = excluded.exchange_rate`,
		account.ID, account.AccountID, account.Name, account.ProfileName, account.Budget, account.ExchangeRate)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO forecast_snapshots (id, month, account_id, type, amount, calculated_at_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snapshot.ID, snapshot.Month, snapshot.AccountID, snapshot.Type, snapshot.Amount, snapshot.CalculatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save forecast snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error) {
	var snap model.ForecastSnapshot
	var calculatedMs int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, month, account_id, type, amount, calculated_at_ms FROM forecast_snapshots
		WHERE month = ? AND account_id = ? AND type = ?
		ORDER BY calculated_at_ms DESC LIMIT 1`,
		month, accountID, snapshotType).
		Scan(&snap.ID, &snap.Month, &snap.AccountID, &snap.Type, &snap.Amount, &calculatedMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("forecast snapshot %s/%q: %w", month, accountID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast snapshot: %w", err)
	}
	snap.CalculatedAt = time.UnixMilli(calculatedMs).UTC()
	return &snap, nil
}
