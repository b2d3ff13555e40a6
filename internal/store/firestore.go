package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/cloudcost/internal/model"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	costRecordsCollection       = "costRecords"
	budgetsCollection           = "budgets"
	accountsCollection          = "accounts"
	forecastSnapshotsCollection = "forecastSnapshots"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// ListCostRecords lists cost records inside an inclusive date range.
// NOTE: Field names must match the firestore struct tags on model.CostRecord.
func (s *FirestoreStore) ListCostRecords(ctx context.Context, filter model.RecordFilter) ([]*model.CostRecord, error) {
	query := s.client.Collection(costRecordsCollection).Query

	if account := model.AccountFilter(filter.AccountID); account != "" {
		query = query.Where("AccountId", "==", account)
	}
	if !filter.From.IsZero() {
		query = query.Where("Date", ">=", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("Date", "<=", filter.To)
	}
	query = query.OrderBy("Date", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cost records: %w", err)
	}

	records := make([]*model.CostRecord, 0, len(docs))
	for _, doc := range docs {
		var record model.CostRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to parse cost record %s: %w", doc.Ref.ID, err)
		}
		records = append(records, &record)
	}
	return records, nil
}

// UpsertCostRecords writes records keyed by their natural key.
func (s *FirestoreStore) UpsertCostRecords(ctx context.Context, records []*model.CostRecord) error {
	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(records))
	for _, r := range records {
		rec := *r
		rec.ID = RecordKey(r)
		job, err := bw.Set(s.client.Collection(costRecordsCollection).Doc(rec.ID), rec)
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue cost record: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("failed to write cost record: %w", err)
		}
	}
	return nil
}

// FindBudget retrieves the budget override for a month and account.
func (s *FirestoreStore) FindBudget(ctx context.Context, month, accountID string) (*model.Budget, error) {
	doc, err := s.client.Collection(budgetsCollection).Doc(BudgetKey(month, accountID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("budget %s/%q: %w", month, accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	var budget model.Budget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	return &budget, nil
}

// SetBudget creates or replaces the budget for its month and account.
func (s *FirestoreStore) SetBudget(ctx context.Context, budget *model.Budget) error {
	b := *budget
	b.ID = BudgetKey(b.Month, b.AccountID)
	_, err := s.client.Collection(budgetsCollection).Doc(b.ID).Set(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by its internal ID.
func (s *FirestoreStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	doc, err := s.client.Collection(accountsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var account model.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, fmt.Errorf("failed to parse account: %w", err)
	}
	return &account, nil
}

// ListAccounts lists every account ordered by name.
func (s *FirestoreStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	docs, err := s.client.Collection(accountsCollection).OrderBy("Name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*model.Account, 0, len(docs))
	for _, doc := range docs {
		var account model.Account
		if err := doc.DataTo(&account); err != nil {
			return nil, fmt.Errorf("failed to parse account %s: %w", doc.Ref.ID, err)
		}
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

// UpsertAccount creates or replaces an account.
func (s *FirestoreStore) UpsertAccount(ctx context.Context, account *model.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	_, err := s.client.Collection(accountsCollection).Doc(account.ID).Set(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

// SaveForecastSnapshot appends a forecast snapshot.
func (s *FirestoreStore) SaveForecastSnapshot(ctx context.Context, snapshot *model.ForecastSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	_, err := s.client.Collection(forecastSnapshotsCollection).Doc(snapshot.ID).Set(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("failed to save forecast snapshot: %w", err)
	}
	return nil
}

// GetLatestForecastSnapshot returns the most recently calculated snapshot for a month and account.
func (s *FirestoreStore) GetLatestForecastSnapshot(ctx context.Context, month, accountID, snapshotType string) (*model.ForecastSnapshot, error) {
	iter := s.client.Collection(forecastSnapshotsCollection).
		Where("Month", "==", month).
		Where("AccountId", "==", accountID).
		Where("Type", "==", snapshotType).
		OrderBy("CalculatedAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("forecast snapshot %s/%q: %w", month, accountID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast snapshot: %w", err)
	}

	var snapshot model.ForecastSnapshot
	if err := doc.DataTo(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse forecast snapshot: %w", err)
	}
	return &snapshot, nil
}
