// Package model defines the cost domain types shared by the stores, the analytics core and the
// RPC layer.
package model

import "time"

// TotalService is the provider's pre-aggregated row. Older syncs stored a single "Total" row per
// day instead of per-service rows.
const TotalService = "Total"

// AllAccounts selects every account when passed as an account filter.
const AllAccounts = "all"

// DefaultExchangeRate is used when no account carries a display rate.
const DefaultExchangeRate = 150.0

// SnapshotTypeTotal marks a forecast snapshot holding the predicted monthly total.
const SnapshotTypeTotal = "Total"

// CostRecord is a single billed amount for one service on one day.
type CostRecord struct {
	ID         string    `json:"id" firestore:"Id"`
	Date       time.Time `json:"date" firestore:"Date"`
	Amount     float64   `json:"amount" firestore:"Amount"`
	Service    string    `json:"service" firestore:"Service"`
	AccountID  string    `json:"accountId" firestore:"AccountId"`
	RecordType string    `json:"recordType" firestore:"RecordType"`
}

// Account is a billing account tracked by the application.
type Account struct {
	ID           string  `json:"id" firestore:"Id"`
	AccountID    string  `json:"accountId" firestore:"AccountId"`
	Name         string  `json:"name" firestore:"Name"`
	ProfileName  string  `json:"profileName,omitempty" firestore:"ProfileName"`
	Budget       float64 `json:"budget" firestore:"Budget"`
	ExchangeRate float64 `json:"exchangeRate" firestore:"ExchangeRate"`
}

// Budget is a monthly budget override. An empty AccountID is the global budget.
type Budget struct {
	ID        string  `json:"id" firestore:"Id"`
	Month     string  `json:"month" firestore:"Month"` // YYYY-MM
	AccountID string  `json:"accountId,omitempty" firestore:"AccountId"`
	Amount    float64 `json:"amount" firestore:"Amount"`
}

// ForecastSnapshot is the persisted outcome of a scheduled forecast run.
type ForecastSnapshot struct {
	ID           string    `json:"id" firestore:"Id"`
	Month        string    `json:"month" firestore:"Month"`
	AccountID    string    `json:"accountId,omitempty" firestore:"AccountId"`
	Type         string    `json:"type" firestore:"Type"`
	Amount       float64   `json:"amount" firestore:"Amount"`
	CalculatedAt time.Time `json:"calculatedAt" firestore:"CalculatedAt"`
}

// RecordFilter selects cost records by an inclusive date range and an optional account.
type RecordFilter struct {
	From      time.Time
	To        time.Time
	AccountID string
}

// AccountFilter normalises an account selector: "" and "all" both mean every account.
func AccountFilter(accountID string) string {
	if accountID == AllAccounts {
		return ""
	}
	return accountID
}

// MonthKey formats t as YYYY-MM using t's own location.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
