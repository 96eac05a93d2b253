// services/dashboard_service.go
package services

import (
	"sort"
	"strings"

	"github.com/draftdesk/draftdesk/lifecycle"
	"github.com/draftdesk/draftdesk/models"
)

// DashboardService derives filter buckets and per-field editability from
// contract state. Everything here is recomputed on demand and never stored.
type DashboardService struct {
	contracts *ContractService
}

func NewDashboardService(contracts *ContractService) *DashboardService {
	return &DashboardService{contracts: contracts}
}

// CategoryCounts returns the number of contracts per dashboard category,
// with CategoryAll holding the grand total.
func (s *DashboardService) CategoryCounts() map[models.Category]int {
	counts := map[models.Category]int{
		models.CategoryAll:      0,
		models.CategoryActive:   0,
		models.CategoryPending:  0,
		models.CategorySigned:   0,
		models.CategoryArchived: 0,
	}

	for _, c := range s.contracts.List() {
		counts[lifecycle.CategoryOf(c.Status)]++
		counts[models.CategoryAll]++
	}
	return counts
}

// Contracts returns the contracts in category (all of them for CategoryAll)
// whose contract name or blueprint name contains query case-insensitively,
// sorted by creation time descending.
func (s *DashboardService) Contracts(category models.Category, query string) []models.Contract {
	allowed := make(map[models.ContractStatus]bool)
	for _, st := range lifecycle.StatusesForCategory(category) {
		allowed[st] = true
	}

	query = strings.ToLower(strings.TrimSpace(query))

	var out []models.Contract
	for _, c := range s.contracts.List() {
		if !allowed[c.Status] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.BlueprintName), query) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FieldEditable reports whether a field may be edited while its contract is
// in the given status. In CREATED the manager fills manager/both (or
// unset) fields; in SENT the client fills client/both fields; every other
// status disables all fields. This is what lets a single operator present
// both the manager and the client perspective of the same contract.
func (s *DashboardService) FieldEditable(status models.ContractStatus, field models.ContractField) bool {
	switch {
	case lifecycle.IsEditable(status):
		return field.EditableBy == models.EditableByManager ||
			field.EditableBy == models.EditableByBoth ||
			field.EditableBy == ""
	case status == models.StatusSent:
		return field.EditableBy == models.EditableByClient ||
			field.EditableBy == models.EditableByBoth
	default:
		return false
	}
}
