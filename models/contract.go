// models/contract.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractField is a contract-owned copy of a blueprint field plus the
// filled value. Everything except Value is fixed at contract creation and is
// never re-synchronized from the source blueprint.
//
// Value holds a string for TEXT/DATE, a bool for CHECKBOX and a base64 image
// string or nil for SIGNATURE.
type ContractField struct {
	ID             uuid.UUID   `json:"id"`
	Type           FieldType   `json:"type"`
	Label          string      `json:"label"`
	Position       int         `json:"position"`
	Required       bool        `json:"required"`
	EditableBy     EditableBy  `json:"editable_by,omitempty"`
	Placeholder    string      `json:"placeholder,omitempty"`
	DefaultChecked *bool       `json:"default_checked,omitempty"`
	Value          interface{} `json:"value"`
}

// NewContractField snapshots a blueprint field into a fresh contract field
// with its type's initial value: CHECKBOX starts at the definition default
// (false when unset), SIGNATURE starts nil, TEXT and DATE start empty.
func NewContractField(def FieldDefinition) ContractField {
	def = def.Clone()
	f := ContractField{
		ID:             def.ID,
		Type:           def.Type,
		Label:          def.Label,
		Position:       def.Position,
		Required:       def.Required,
		EditableBy:     def.EditableBy,
		Placeholder:    def.Placeholder,
		DefaultChecked: def.DefaultChecked,
	}
	switch def.Type {
	case FieldTypeCheckbox:
		checked := false
		if def.DefaultChecked != nil {
			checked = *def.DefaultChecked
		}
		f.Value = checked
	case FieldTypeSignature:
		f.Value = nil
	default:
		f.Value = ""
	}
	return f
}

func (f ContractField) Clone() ContractField {
	c := f
	if f.DefaultChecked != nil {
		v := *f.DefaultChecked
		c.DefaultChecked = &v
	}
	// Value is always a scalar (string, bool or nil), so the shallow copy
	// above already detaches it.
	return c
}

func (l ContractFieldList) Clone() ContractFieldList {
	if l == nil {
		return nil
	}
	out := make(ContractFieldList, len(l))
	for i, f := range l {
		out[i] = f.Clone()
	}
	return out
}

// Contract is an instance created from a blueprint. BlueprintName is
// denormalized so the contract keeps rendering after the blueprint is gone.
type Contract struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string            `json:"name" gorm:"not null"`
	BlueprintID   uuid.UUID         `json:"blueprint_id" gorm:"type:uuid;index"`
	BlueprintName string            `json:"blueprint_name"`
	Status        ContractStatus    `json:"status" gorm:"type:varchar(20);not null;index"`
	Fields        ContractFieldList `json:"fields" gorm:"type:json"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c Contract) Clone() Contract {
	out := c
	out.Fields = c.Fields.Clone()
	return out
}

// Snapshot is the full serializable state handed to and received from the
// persistence collaborator.
type Snapshot struct {
	Blueprints []Blueprint `json:"blueprints"`
	Contracts  []Contract  `json:"contracts"`
}
