// models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Enums
type ContractStatus string

const (
	StatusCreated  ContractStatus = "created"
	StatusApproved ContractStatus = "approved"
	StatusSent     ContractStatus = "sent"
	StatusSigned   ContractStatus = "signed"
	StatusLocked   ContractStatus = "locked"
	StatusRevoked  ContractStatus = "revoked"
)

type Category string

const (
	CategoryAll      Category = "all"
	CategoryActive   Category = "active"
	CategoryPending  Category = "pending"
	CategorySigned   Category = "signed"
	CategoryArchived Category = "archived"
)

type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeDate      FieldType = "date"
	FieldTypeSignature FieldType = "signature"
	FieldTypeCheckbox  FieldType = "checkbox"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeDate, FieldTypeSignature, FieldTypeCheckbox:
		return true
	}
	return false
}

// EditableBy names the party allowed to fill a field. An empty value is
// treated as EditableByManager everywhere.
type EditableBy string

const (
	EditableByManager EditableBy = "manager"
	EditableByClient  EditableBy = "client"
	EditableByBoth    EditableBy = "both"
)

func (e EditableBy) Valid() bool {
	switch e {
	case EditableByManager, EditableByClient, EditableByBoth:
		return true
	}
	return false
}

// FieldDefinitionList is stored as a single JSON column.
type FieldDefinitionList []FieldDefinition

func (l FieldDefinitionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FieldDefinitionList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

// ContractFieldList is stored as a single JSON column.
type ContractFieldList []ContractField

func (l ContractFieldList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ContractFieldList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

func scanJSONList(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported column type for JSON field list")
	}
}
