// models/blueprint.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// FieldDefinition is one fillable field of a blueprint. Position defines
// display/fill order and stays contiguous 0..n-1 within the owning blueprint.
type FieldDefinition struct {
	ID             uuid.UUID  `json:"id"`
	Type           FieldType  `json:"type"`
	Label          string     `json:"label"`
	Position       int        `json:"position"`
	Required       bool       `json:"required"`
	EditableBy     EditableBy `json:"editable_by,omitempty"`
	Placeholder    string     `json:"placeholder,omitempty"`     // TEXT fields only
	DefaultChecked *bool      `json:"default_checked,omitempty"` // CHECKBOX fields only
}

func (f FieldDefinition) Clone() FieldDefinition {
	c := f
	if f.DefaultChecked != nil {
		v := *f.DefaultChecked
		c.DefaultChecked = &v
	}
	return c
}

func (l FieldDefinitionList) Clone() FieldDefinitionList {
	if l == nil {
		return nil
	}
	out := make(FieldDefinitionList, len(l))
	for i, f := range l {
		out[i] = f.Clone()
	}
	return out
}

// Blueprint is a reusable document template: a named, ordered field set.
type Blueprint struct {
	ID          uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string              `json:"name" gorm:"not null"`
	Description string              `json:"description" gorm:"type:text"`
	Fields      FieldDefinitionList `json:"fields" gorm:"type:json"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (Blueprint) TableName() string {
	return "blueprints"
}

func (b Blueprint) Clone() Blueprint {
	c := b
	c.Fields = b.Fields.Clone()
	return c
}
