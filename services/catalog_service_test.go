// services/catalog_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftdesk/draftdesk/models"
)

func newBlueprintWithFields(t *testing.T, s *CatalogService, labels ...string) *models.Blueprint {
	t.Helper()

	bp, err := s.Create(CreateBlueprintInput{Name: "Test Blueprint"})
	require.NoError(t, err)

	for _, label := range labels {
		_, err := s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeText, Label: label})
		require.NoError(t, err)
	}

	out, ok := s.Get(bp.ID)
	require.True(t, ok)
	return out
}

func TestCreateAndGetBlueprint(t *testing.T) {
	s := NewCatalogService(nil)

	bp, err := s.Create(CreateBlueprintInput{Name: "NDA", Description: "Mutual NDA"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bp.ID)
	assert.Equal(t, "NDA", bp.Name)
	assert.Empty(t, bp.Fields)

	got, ok := s.Get(bp.ID)
	require.True(t, ok)
	assert.Equal(t, bp.ID, got.ID)

	_, ok = s.Get(uuid.New())
	assert.False(t, ok)
}

func TestCreateBlueprintValidation(t *testing.T) {
	s := NewCatalogService(nil)

	_, err := s.Create(CreateBlueprintInput{Name: ""})
	assert.Error(t, err)
	assert.Empty(t, s.List())
}

func TestUpdateBlueprint(t *testing.T) {
	s := NewCatalogService(nil)
	bp, err := s.Create(CreateBlueprintInput{Name: "Old Name", Description: "Old description"})
	require.NoError(t, err)

	updated, err := s.Update(bp.ID, UpdateBlueprintInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Old description", updated.Description)

	_, err = s.Update(uuid.New(), UpdateBlueprintInput{Name: "Nope"})
	assert.ErrorIs(t, err, ErrBlueprintNotFound)
}

func TestDeleteBlueprint(t *testing.T) {
	s := NewCatalogService(nil)
	bp, err := s.Create(CreateBlueprintInput{Name: "Doomed"})
	require.NoError(t, err)

	assert.True(t, s.Delete(bp.ID))
	assert.False(t, s.Delete(bp.ID))
	_, ok := s.Get(bp.ID)
	assert.False(t, ok)
}

func TestAddFieldAppendsAtEnd(t *testing.T) {
	s := NewCatalogService(nil)
	bp, err := s.Create(CreateBlueprintInput{Name: "Form"})
	require.NoError(t, err)

	first, err := s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeText, Label: "Name", Placeholder: "Full name"})
	require.NoError(t, err)
	second, err := s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeCheckbox, Label: "Agreed", DefaultChecked: boolPtr(true), Placeholder: "ignored"})
	require.NoError(t, err)
	third, err := s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeSignature, Label: "Signature", EditableBy: models.EditableByClient})
	require.NoError(t, err)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, 2, third.Position)

	// editableBy defaults to manager when not supplied.
	assert.Equal(t, models.EditableByManager, first.EditableBy)
	assert.Equal(t, models.EditableByClient, third.EditableBy)

	// Placeholder only applies to TEXT, defaultChecked only to CHECKBOX.
	assert.Equal(t, "Full name", first.Placeholder)
	assert.Empty(t, second.Placeholder)
	require.NotNil(t, second.DefaultChecked)
	assert.True(t, *second.DefaultChecked)
	assert.Nil(t, first.DefaultChecked)

	_, err = s.AddField(uuid.New(), AddFieldInput{Type: models.FieldTypeText, Label: "Orphan"})
	assert.ErrorIs(t, err, ErrBlueprintNotFound)
}

func TestAddFieldValidation(t *testing.T) {
	s := NewCatalogService(nil)
	bp, err := s.Create(CreateBlueprintInput{Name: "Form"})
	require.NoError(t, err)

	_, err = s.AddField(bp.ID, AddFieldInput{Type: "dropdown", Label: "Pick one"})
	assert.Error(t, err)

	_, err = s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeText, Label: ""})
	assert.Error(t, err)

	_, err = s.AddField(bp.ID, AddFieldInput{Type: models.FieldTypeText, Label: "OK", EditableBy: "nobody"})
	assert.Error(t, err)

	got, ok := s.Get(bp.ID)
	require.True(t, ok)
	assert.Empty(t, got.Fields)
}

func TestUpdateField(t *testing.T) {
	s := NewCatalogService(nil)
	bp := newBlueprintWithFields(t, s, "Original")
	fieldID := bp.Fields[0].ID

	updated, err := s.UpdateField(bp.ID, fieldID, UpdateFieldInput{
		Label:      "Renamed",
		Required:   boolPtr(true),
		EditableBy: models.EditableByBoth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Label)
	assert.True(t, updated.Required)
	assert.Equal(t, models.EditableByBoth, updated.EditableBy)
	assert.Equal(t, 0, updated.Position)

	_, err = s.UpdateField(bp.ID, uuid.New(), UpdateFieldInput{Label: "Ghost"})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestDeleteFieldRenormalizesPositions(t *testing.T) {
	s := NewCatalogService(nil)
	bp := newBlueprintWithFields(t, s, "A", "B", "C", "D")

	require.True(t, s.DeleteField(bp.ID, bp.Fields[1].ID))

	got, ok := s.Get(bp.ID)
	require.True(t, ok)
	require.Len(t, got.Fields, 3)
	for i, label := range []string{"A", "C", "D"} {
		assert.Equal(t, label, got.Fields[i].Label)
		assert.Equal(t, i, got.Fields[i].Position)
	}

	assert.False(t, s.DeleteField(bp.ID, uuid.New()))
	assert.False(t, s.DeleteField(uuid.New(), bp.Fields[0].ID))
}

func TestReorderField(t *testing.T) {
	s := NewCatalogService(nil)
	bp := newBlueprintWithFields(t, s, "A", "B", "C")

	require.True(t, s.ReorderField(bp.ID, bp.Fields[0].ID, MoveDown))

	got, ok := s.Get(bp.ID)
	require.True(t, ok)
	for i, label := range []string{"B", "A", "C"} {
		assert.Equal(t, label, got.Fields[i].Label)
		assert.Equal(t, i, got.Fields[i].Position)
	}

	// Boundary moves are accepted no-ops.
	require.True(t, s.ReorderField(bp.ID, got.Fields[0].ID, MoveUp))
	require.True(t, s.ReorderField(bp.ID, got.Fields[2].ID, MoveDown))

	unchanged, ok := s.Get(bp.ID)
	require.True(t, ok)
	for i, label := range []string{"B", "A", "C"} {
		assert.Equal(t, label, unchanged.Fields[i].Label)
	}

	assert.False(t, s.ReorderField(bp.ID, got.Fields[0].ID, MoveDirection("sideways")))
	assert.False(t, s.ReorderField(bp.ID, uuid.New(), MoveUp))
}

func TestFieldMutationsStampUpdatedAt(t *testing.T) {
	s := NewCatalogService(nil)
	bp := newBlueprintWithFields(t, s, "A", "B")

	before, ok := s.Get(bp.ID)
	require.True(t, ok)

	time.Sleep(2 * time.Millisecond)
	require.True(t, s.DeleteField(bp.ID, before.Fields[0].ID))

	after, ok := s.Get(bp.ID)
	require.True(t, ok)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestEnsureSeeds(t *testing.T) {
	s := NewCatalogService(nil)

	added := s.EnsureSeeds(SeedBlueprints())
	assert.Equal(t, 4, added)
	assert.Len(t, s.List(), 4)

	// Reconciliation is idempotent.
	assert.Zero(t, s.EnsureSeeds(SeedBlueprints()))

	// A user blueprint survives and only the missing seed comes back.
	user, err := s.Create(CreateBlueprintInput{Name: "Custom Form"})
	require.NoError(t, err)
	require.True(t, s.Delete(seedRentalID))

	assert.Equal(t, 1, s.EnsureSeeds(SeedBlueprints()))
	assert.Len(t, s.List(), 5)
	_, ok := s.Get(user.ID)
	assert.True(t, ok)
	_, ok = s.Get(seedRentalID)
	assert.True(t, ok)
}

func TestCatalogReturnsClones(t *testing.T) {
	s := NewCatalogService(nil)
	bp := newBlueprintWithFields(t, s, "A")

	got, ok := s.Get(bp.ID)
	require.True(t, ok)
	got.Name = "Tampered"
	got.Fields[0].Label = "Tampered"

	fresh, ok := s.Get(bp.ID)
	require.True(t, ok)
	assert.Equal(t, "Test Blueprint", fresh.Name)
	assert.Equal(t, "A", fresh.Fields[0].Label)
}
