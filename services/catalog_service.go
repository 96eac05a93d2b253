// services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/draftdesk/draftdesk/models"
	"github.com/draftdesk/draftdesk/utils"
)

var (
	ErrBlueprintNotFound = errors.New("blueprint not found")
	ErrFieldNotFound     = errors.New("field not found")
)

// MoveDirection is the direction of a single-step field reorder.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// CatalogService owns the blueprint collection. All reads return deep
// copies; the stored entities are never aliased to callers.
type CatalogService struct {
	blueprints []models.Blueprint

	// afterChange, when set, runs after every committed mutation. The
	// workspace uses it to flush the snapshot through the store.
	afterChange func()
}

type CreateBlueprintInput struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
}

type UpdateBlueprintInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description string `json:"description,omitempty"`
}

type AddFieldInput struct {
	Type           models.FieldType  `json:"type" validate:"required,field_type"`
	Label          string            `json:"label" validate:"required,min=1,max=255"`
	Required       bool              `json:"required"`
	EditableBy     models.EditableBy `json:"editable_by,omitempty" validate:"omitempty,editable_by"`
	Placeholder    string            `json:"placeholder,omitempty"`
	DefaultChecked *bool             `json:"default_checked,omitempty"`
}

type UpdateFieldInput struct {
	Label          string            `json:"label,omitempty" validate:"omitempty,min=1,max=255"`
	Required       *bool             `json:"required,omitempty"`
	EditableBy     models.EditableBy `json:"editable_by,omitempty" validate:"omitempty,editable_by"`
	Placeholder    *string           `json:"placeholder,omitempty"`
	DefaultChecked *bool             `json:"default_checked,omitempty"`
}

func NewCatalogService(initial []models.Blueprint) *CatalogService {
	s := &CatalogService{blueprints: make([]models.Blueprint, 0, len(initial))}
	for _, bp := range initial {
		s.blueprints = append(s.blueprints, bp.Clone())
	}
	return s
}

// List returns all blueprints in insertion order.
func (s *CatalogService) List() []models.Blueprint {
	out := make([]models.Blueprint, len(s.blueprints))
	for i, bp := range s.blueprints {
		out[i] = bp.Clone()
	}
	return out
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Blueprint, bool) {
	idx := s.find(id)
	if idx < 0 {
		return nil, false
	}
	bp := s.blueprints[idx].Clone()
	return &bp, true
}

func (s *CatalogService) Create(input CreateBlueprintInput) (*models.Blueprint, error) {
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	bp := models.Blueprint{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Fields:      models.FieldDefinitionList{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.blueprints = append(s.blueprints, bp)
	s.changed()

	out := bp.Clone()
	return &out, nil
}

func (s *CatalogService) Update(id uuid.UUID, input UpdateBlueprintInput) (*models.Blueprint, error) {
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	idx := s.find(id)
	if idx < 0 {
		return nil, ErrBlueprintNotFound
	}

	bp := &s.blueprints[idx]
	if input.Name != "" {
		bp.Name = input.Name
	}
	if input.Description != "" {
		bp.Description = input.Description
	}
	bp.UpdatedAt = time.Now()
	s.changed()

	out := bp.Clone()
	return &out, nil
}

// Delete removes a blueprint. Contracts already created from it are
// untouched (snapshot semantics); their denormalized blueprint name keeps
// resolving for display.
func (s *CatalogService) Delete(id uuid.UUID) bool {
	idx := s.find(id)
	if idx < 0 {
		return false
	}

	s.blueprints = append(s.blueprints[:idx], s.blueprints[idx+1:]...)
	s.changed()
	return true
}

// AddField appends a field at position = current field count.
func (s *CatalogService) AddField(blueprintID uuid.UUID, input AddFieldInput) (*models.FieldDefinition, error) {
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	idx := s.find(blueprintID)
	if idx < 0 {
		return nil, ErrBlueprintNotFound
	}
	bp := &s.blueprints[idx]

	editableBy := input.EditableBy
	if editableBy == "" {
		editableBy = models.EditableByManager
	}

	def := models.FieldDefinition{
		ID:         uuid.New(),
		Type:       input.Type,
		Label:      input.Label,
		Position:   len(bp.Fields),
		Required:   input.Required,
		EditableBy: editableBy,
	}
	if input.Type == models.FieldTypeText {
		def.Placeholder = input.Placeholder
	}
	if input.Type == models.FieldTypeCheckbox && input.DefaultChecked != nil {
		v := *input.DefaultChecked
		def.DefaultChecked = &v
	}

	bp.Fields = append(bp.Fields, def)
	bp.UpdatedAt = time.Now()
	s.changed()

	out := def.Clone()
	return &out, nil
}

func (s *CatalogService) UpdateField(blueprintID, fieldID uuid.UUID, input UpdateFieldInput) (*models.FieldDefinition, error) {
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	idx := s.find(blueprintID)
	if idx < 0 {
		return nil, ErrBlueprintNotFound
	}
	bp := &s.blueprints[idx]

	fieldIdx := findField(bp.Fields, fieldID)
	if fieldIdx < 0 {
		return nil, ErrFieldNotFound
	}

	def := &bp.Fields[fieldIdx]
	if input.Label != "" {
		def.Label = input.Label
	}
	if input.Required != nil {
		def.Required = *input.Required
	}
	if input.EditableBy != "" {
		def.EditableBy = input.EditableBy
	}
	if input.Placeholder != nil && def.Type == models.FieldTypeText {
		def.Placeholder = *input.Placeholder
	}
	if input.DefaultChecked != nil && def.Type == models.FieldTypeCheckbox {
		v := *input.DefaultChecked
		def.DefaultChecked = &v
	}

	bp.UpdatedAt = time.Now()
	s.changed()

	out := def.Clone()
	return &out, nil
}

// DeleteField removes a field and renormalizes the remaining positions to a
// contiguous 0-based sequence in their relative order.
func (s *CatalogService) DeleteField(blueprintID, fieldID uuid.UUID) bool {
	idx := s.find(blueprintID)
	if idx < 0 {
		return false
	}
	bp := &s.blueprints[idx]

	fieldIdx := findField(bp.Fields, fieldID)
	if fieldIdx < 0 {
		return false
	}

	bp.Fields = append(bp.Fields[:fieldIdx], bp.Fields[fieldIdx+1:]...)
	normalizePositions(bp.Fields)
	bp.UpdatedAt = time.Now()
	s.changed()
	return true
}

// ReorderField swaps a field with its neighbor in the given direction.
// A move past either end is a no-op that still reports success.
func (s *CatalogService) ReorderField(blueprintID, fieldID uuid.UUID, direction MoveDirection) bool {
	idx := s.find(blueprintID)
	if idx < 0 {
		return false
	}
	bp := &s.blueprints[idx]

	fieldIdx := findField(bp.Fields, fieldID)
	if fieldIdx < 0 {
		return false
	}

	var target int
	switch direction {
	case MoveUp:
		target = fieldIdx - 1
	case MoveDown:
		target = fieldIdx + 1
	default:
		return false
	}

	if target < 0 || target >= len(bp.Fields) {
		return true
	}

	bp.Fields[fieldIdx], bp.Fields[target] = bp.Fields[target], bp.Fields[fieldIdx]
	normalizePositions(bp.Fields)
	bp.UpdatedAt = time.Now()
	s.changed()
	return true
}

// EnsureSeeds re-inserts any seed blueprint whose id is absent and leaves
// everything already present untouched. Returns how many were added.
func (s *CatalogService) EnsureSeeds(seeds []models.Blueprint) int {
	added := 0
	for _, seed := range seeds {
		if s.find(seed.ID) >= 0 {
			continue
		}
		s.blueprints = append(s.blueprints, seed.Clone())
		added++
	}

	if added > 0 {
		logrus.WithField("count", added).Info("Seed blueprints restored")
		s.changed()
	}
	return added
}

func (s *CatalogService) snapshot() []models.Blueprint {
	return s.List()
}

func (s *CatalogService) changed() {
	if s.afterChange != nil {
		s.afterChange()
	}
}

func (s *CatalogService) find(id uuid.UUID) int {
	for i := range s.blueprints {
		if s.blueprints[i].ID == id {
			return i
		}
	}
	return -1
}

func findField(fields models.FieldDefinitionList, id uuid.UUID) int {
	for i := range fields {
		if fields[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizePositions(fields models.FieldDefinitionList) {
	for i := range fields {
		fields[i].Position = i
	}
}
