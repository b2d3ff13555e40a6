//go:build ignore
// +build ignore

// seed-cost-demo seeds 7 months of realistic daily cloud cost data for two demo accounts.
//
// Usage:
//   go run ./cmd/server &
//   go run scripts/seed-cost-demo.go

package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	cloudcostv1 "github.com/castlemilk/cloudcost/gen/cloudcost/v1"
	"github.com/castlemilk/cloudcost/gen/cloudcost/v1/cloudcostv1connect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const defaultAPIURL = "http://localhost:8111"

type serviceTemplate struct {
	name       string
	baseDaily  float64
	growth     float64 // fractional monthly growth
	volatility float64
	monthly    bool // billed once on the 1st
}

var services = []serviceTemplate{
	{"Amazon Elastic Compute Cloud - Compute", 42, 0.04, 0.10, false},
	{"Amazon Relational Database Service", 18, 0.01, 0.03, false},
	{"Amazon Simple Storage Service", 3.5, 0.06, 0.05, false},
	{"AmazonCloudWatch", 1.2, 0.02, 0.15, false},
	{"AWS Lambda", 0.4, 0.10, 0.40, false},
	{"Amazon Route 53", 0.5, 0, 0, true},
	{"AWS Support (Business)", 100, 0.02, 0, true},
	{"Tax", 0, 0, 0, true},
}

func main() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42)) // deterministic for reproducibility

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	client := cloudcostv1connect.NewCostServiceClient(http.DefaultClient, apiURL)

	accounts := []*cloudcostv1.Account{
		{Id: "demo-prod", AccountId: "111111111111", Name: "prod", Budget: 3000, ExchangeRate: 150},
		{Id: "demo-dev", AccountId: "222222222222", Name: "dev", Budget: 800, ExchangeRate: 150},
	}
	for i, account := range accounts {
		if _, err := client.UpsertAccount(ctx, connect.NewRequest(&cloudcostv1.UpsertAccountRequest{Account: account})); err != nil {
			log.Fatalf("Failed to upsert account %s: %v", account.Name, err)
		}
		log.Printf("👤 Account %s ready", account.Name)

		scale := 1.0 / float64(i*2+1)
		records := generate(rng, account.Id, scale)
		resp, err := client.UpsertCostRecords(ctx, connect.NewRequest(&cloudcostv1.UpsertCostRecordsRequest{Records: records}))
		if err != nil {
			log.Fatalf("Failed to seed records for %s: %v", account.Name, err)
		}
		log.Printf("  ✅ Seeded %d cost records", resp.Msg.Count)
	}

	month := time.Now().Format("2006-01")
	if _, err := client.SetBudget(ctx, connect.NewRequest(&cloudcostv1.SetBudgetRequest{Month: month, Amount: 4000})); err != nil {
		log.Fatalf("Failed to set budget: %v", err)
	}
	log.Printf("💰 Global budget for %s set", month)

	recalc, err := client.RecalculateForecasts(ctx, connect.NewRequest(&cloudcostv1.RecalculateForecastsRequest{}))
	if err != nil {
		log.Fatalf("Failed to recalculate forecasts: %v", err)
	}
	log.Printf("📈 Stored %d forecast snapshots (%d failed)", len(recalc.Msg.Snapshots), recalc.Msg.Failed)
}

// generate emits daily records from the first of the month six months ago through yesterday.
func generate(rng *rand.Rand, accountID string, scale float64) []*cloudcostv1.CostRecord {
	now := time.Now()
	start := time.Date(now.Year(), now.Month()-6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var records []*cloudcostv1.CostRecord
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		monthIndex := float64((d.Year()-start.Year())*12 + int(d.Month()-start.Month()))
		var dayTotal float64
		for _, svc := range services {
			if svc.monthly && d.Day() != 1 {
				continue
			}
			amount := svc.baseDaily * scale * math.Pow(1+svc.growth, monthIndex)
			amount *= 1 + svc.volatility*(rng.Float64()*2-1)
			// Weekend dip for compute
			if !svc.monthly && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
				amount *= 0.85
			}
			if svc.name == "Tax" {
				amount = dayTotal * 0.1
			}
			amount = math.Round(amount*100) / 100
			dayTotal += amount
			records = append(records, &cloudcostv1.CostRecord{
				Date:       timestamppb.New(d),
				Amount:     amount,
				Service:    svc.name,
				AccountId:  accountID,
				RecordType: "Usage",
			})
		}
	}
	return records
}
