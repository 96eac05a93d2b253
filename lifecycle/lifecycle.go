// lifecycle/lifecycle.go
//
// Package lifecycle is the contract state machine: pure, stateless queries
// over two fixed lookup tables. Both the contract repository (to gate
// writes) and the embedding UI (to decide which actions to offer) consume
// it. An unknown status reaching this package is a broken invariant
// upstream and panics.
package lifecycle

import (
	"fmt"

	"github.com/draftdesk/draftdesk/models"
)

// Statuses lists every lifecycle status in canonical order.
var Statuses = []models.ContractStatus{
	models.StatusCreated,
	models.StatusApproved,
	models.StatusSent,
	models.StatusSigned,
	models.StatusLocked,
	models.StatusRevoked,
}

// transitions is the single source of truth for legal status changes.
// Target order is fixed: it drives deterministic action ordering in UIs.
var transitions = map[models.ContractStatus][]models.ContractStatus{
	models.StatusCreated:  {models.StatusApproved, models.StatusRevoked},
	models.StatusApproved: {models.StatusSent, models.StatusCreated, models.StatusRevoked},
	models.StatusSent:     {models.StatusSigned, models.StatusRevoked},
	models.StatusSigned:   {models.StatusLocked},
	models.StatusLocked:   {},
	models.StatusRevoked:  {},
}

var categories = map[models.ContractStatus]models.Category{
	models.StatusCreated:  models.CategoryActive,
	models.StatusApproved: models.CategoryActive,
	models.StatusSent:     models.CategoryPending,
	models.StatusSigned:   models.CategorySigned,
	models.StatusLocked:   models.CategorySigned,
	models.StatusRevoked:  models.CategoryArchived,
}

func init() {
	if err := validateTables(); err != nil {
		panic(fmt.Sprintf("lifecycle: %v", err))
	}
}

// validateTables checks table consistency once at startup: every status is
// a key in both tables and every transition target is itself a known status.
func validateTables() error {
	if len(transitions) != len(Statuses) || len(categories) != len(Statuses) {
		return fmt.Errorf("tables must cover exactly %d statuses", len(Statuses))
	}
	for _, s := range Statuses {
		targets, ok := transitions[s]
		if !ok {
			return fmt.Errorf("status %q missing from transition table", s)
		}
		if _, ok := categories[s]; !ok {
			return fmt.Errorf("status %q missing from category table", s)
		}
		for _, t := range targets {
			if _, ok := transitions[t]; !ok {
				return fmt.Errorf("transition %q -> %q targets unknown status", s, t)
			}
		}
	}
	return nil
}

func mustKnow(s models.ContractStatus) {
	if _, ok := transitions[s]; !ok {
		panic(fmt.Sprintf("lifecycle: unknown contract status %q", s))
	}
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to models.ContractStatus) bool {
	mustKnow(from)
	mustKnow(to)
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ValidTransitions returns the legal targets for status, in table order.
func ValidTransitions(status models.ContractStatus) []models.ContractStatus {
	mustKnow(status)
	targets := transitions[status]
	out := make([]models.ContractStatus, len(targets))
	copy(out, targets)
	return out
}

// IsEditable reports whether generic field values may be bulk-replaced in
// this status. Only CREATED qualifies; the narrower signature-capture
// allowance in SENT is the contract repository's concern.
func IsEditable(status models.ContractStatus) bool {
	mustKnow(status)
	return status == models.StatusCreated
}

// IsTerminal reports whether status has no outgoing transitions.
func IsTerminal(status models.ContractStatus) bool {
	mustKnow(status)
	return len(transitions[status]) == 0
}

// CategoryOf maps a status to its dashboard category.
func CategoryOf(status models.ContractStatus) models.Category {
	mustKnow(status)
	return categories[status]
}

// StatusesForCategory is the exact inverse of CategoryOf, in canonical
// status order. CategoryAll maps to all six statuses.
func StatusesForCategory(category models.Category) []models.ContractStatus {
	if category == models.CategoryAll {
		out := make([]models.ContractStatus, len(Statuses))
		copy(out, Statuses)
		return out
	}
	switch category {
	case models.CategoryActive, models.CategoryPending, models.CategorySigned, models.CategoryArchived:
	default:
		panic(fmt.Sprintf("lifecycle: unknown category %q", category))
	}
	var out []models.ContractStatus
	for _, s := range Statuses {
		if categories[s] == category {
			out = append(out, s)
		}
	}
	return out
}
