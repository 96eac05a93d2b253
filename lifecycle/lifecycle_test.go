// lifecycle/lifecycle_test.go
package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftdesk/draftdesk/lifecycle"
	"github.com/draftdesk/draftdesk/models"
)

func TestValidTransitionsTable(t *testing.T) {
	expected := map[models.ContractStatus][]models.ContractStatus{
		models.StatusCreated:  {models.StatusApproved, models.StatusRevoked},
		models.StatusApproved: {models.StatusSent, models.StatusCreated, models.StatusRevoked},
		models.StatusSent:     {models.StatusSigned, models.StatusRevoked},
		models.StatusSigned:   {models.StatusLocked},
		models.StatusLocked:   {},
		models.StatusRevoked:  {},
	}

	require.Len(t, lifecycle.Statuses, 6)
	for _, status := range lifecycle.Statuses {
		got := lifecycle.ValidTransitions(status)
		// Order matters: it drives deterministic UI action ordering.
		assert.Equal(t, expected[status], got, "targets for %s", status)
	}
}

func TestCanTransitionMatchesTable(t *testing.T) {
	for _, from := range lifecycle.Statuses {
		targets := lifecycle.ValidTransitions(from)
		for _, to := range lifecycle.Statuses {
			inTable := false
			for _, target := range targets {
				if target == to {
					inTable = true
					break
				}
			}
			assert.Equal(t, inTable, lifecycle.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[models.ContractStatus]bool{
		models.StatusLocked:  true,
		models.StatusRevoked: true,
	}

	for _, status := range lifecycle.Statuses {
		assert.Equal(t, terminal[status], lifecycle.IsTerminal(status), "status %s", status)
	}
}

func TestIsEditable(t *testing.T) {
	for _, status := range lifecycle.Statuses {
		assert.Equal(t, status == models.StatusCreated, lifecycle.IsEditable(status), "status %s", status)
	}
}

func TestCategoryOf(t *testing.T) {
	expected := map[models.ContractStatus]models.Category{
		models.StatusCreated:  models.CategoryActive,
		models.StatusApproved: models.CategoryActive,
		models.StatusSent:     models.CategoryPending,
		models.StatusSigned:   models.CategorySigned,
		models.StatusLocked:   models.CategorySigned,
		models.StatusRevoked:  models.CategoryArchived,
	}

	for status, category := range expected {
		assert.Equal(t, category, lifecycle.CategoryOf(status), "status %s", status)
	}
}

func TestStatusesForCategoryIsInverseOfCategoryOf(t *testing.T) {
	// Every status appears in its own category's bucket.
	for _, status := range lifecycle.Statuses {
		assert.Contains(t, lifecycle.StatusesForCategory(lifecycle.CategoryOf(status)), status)
	}

	// Every bucketed status maps back to its category.
	categories := []models.Category{
		models.CategoryActive,
		models.CategoryPending,
		models.CategorySigned,
		models.CategoryArchived,
	}
	for _, category := range categories {
		for _, status := range lifecycle.StatusesForCategory(category) {
			assert.Equal(t, category, lifecycle.CategoryOf(status))
		}
	}
}

func TestStatusesForCategoryAll(t *testing.T) {
	assert.Equal(t, lifecycle.Statuses, lifecycle.StatusesForCategory(models.CategoryAll))
}

func TestUnknownStatusPanics(t *testing.T) {
	bogus := models.ContractStatus("drafted")

	assert.Panics(t, func() { lifecycle.ValidTransitions(bogus) })
	assert.Panics(t, func() { lifecycle.CanTransition(models.StatusCreated, bogus) })
	assert.Panics(t, func() { lifecycle.CanTransition(bogus, models.StatusCreated) })
	assert.Panics(t, func() { lifecycle.IsEditable(bogus) })
	assert.Panics(t, func() { lifecycle.IsTerminal(bogus) })
	assert.Panics(t, func() { lifecycle.CategoryOf(bogus) })
	assert.Panics(t, func() { lifecycle.StatusesForCategory(models.Category("trash")) })
}

func TestValidTransitionsReturnsCopy(t *testing.T) {
	first := lifecycle.ValidTransitions(models.StatusApproved)
	first[0] = models.StatusLocked

	second := lifecycle.ValidTransitions(models.StatusApproved)
	assert.Equal(t, models.StatusSent, second[0])
}
