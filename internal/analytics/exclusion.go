package analytics

import (
	"strings"

	"github.com/castlemilk/cloudcost/internal/model"
)

// excludedSubstrings mark tax and support-plan line items; they do not follow usage.
var excludedSubstrings = []string{"Tax", "Support"}

// IsExcludedService reports whether service is left out of forecast training, history and
// month-to-date actuals. Matching is a case-sensitive substring test.
func IsExcludedService(service string) bool {
	for _, s := range excludedSubstrings {
		if strings.Contains(service, s) {
			return true
		}
	}
	return false
}

func filterExcluded(records []*model.CostRecord) []*model.CostRecord {
	kept := make([]*model.CostRecord, 0, len(records))
	for _, r := range records {
		if !IsExcludedService(r.Service) {
			kept = append(kept, r)
		}
	}
	return kept
}

// dropProviderTotals removes the provider's pre-aggregated row once per-service rows are present,
// so that mixed syncs are not counted twice.
func dropProviderTotals(records []*model.CostRecord) []*model.CostRecord {
	perService := false
	for _, r := range records {
		if r.Service != model.TotalService {
			perService = true
			break
		}
	}
	if !perService {
		return records
	}
	kept := make([]*model.CostRecord, 0, len(records))
	for _, r := range records {
		if r.Service != model.TotalService {
			kept = append(kept, r)
		}
	}
	return kept
}
