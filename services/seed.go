// services/seed.go
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/draftdesk/draftdesk/models"
)

// Seed blueprint ids are fixed so reconciliation can recognize them across
// sessions and stale snapshots.
var (
	seedNDAID        = uuid.MustParse("5b8c1a2e-4f3d-4a6b-9c7e-1d2f3a4b5c6d")
	seedServiceID    = uuid.MustParse("8e2d4c6a-1b3f-4d5e-8a9c-7b6d5e4f3a2b")
	seedEmploymentID = uuid.MustParse("c4a6e8d2-3f5b-4c7d-a1e9-2b4d6f8a0c1e")
	seedRentalID     = uuid.MustParse("f1e3d5c7-9b8a-4e6f-b2d4-6a8c0e2f4b5d")
)

func boolPtr(v bool) *bool { return &v }

// SeedBlueprints builds fresh copies of the four built-in templates. Callers
// own the returned values.
func SeedBlueprints() []models.Blueprint {
	now := time.Now()

	return []models.Blueprint{
		{
			ID:          seedNDAID,
			Name:        "Non-Disclosure Agreement",
			Description: "Mutual confidentiality agreement between two parties.",
			Fields: models.FieldDefinitionList{
				{ID: uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c5d"), Type: models.FieldTypeText, Label: "Disclosing Party", Position: 0, Required: true, EditableBy: models.EditableByManager, Placeholder: "Company or person disclosing information"},
				{ID: uuid.MustParse("1b2c3d4e-5f6a-4b7c-9d0e-1f2a3b4c5d6e"), Type: models.FieldTypeText, Label: "Receiving Party", Position: 1, Required: true, EditableBy: models.EditableByManager, Placeholder: "Company or person receiving information"},
				{ID: uuid.MustParse("2c3d4e5f-6a7b-4c8d-a0e1-2f3a4b5c6d7e"), Type: models.FieldTypeDate, Label: "Effective Date", Position: 2, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("3d4e5f6a-7b8c-4d9e-b1f2-3a4b5c6d7e8f"), Type: models.FieldTypeCheckbox, Label: "Mutual obligations", Position: 3, Required: false, EditableBy: models.EditableByManager, DefaultChecked: boolPtr(true)},
				{ID: uuid.MustParse("4e5f6a7b-8c9d-4e0f-82a3-4b5c6d7e8f9a"), Type: models.FieldTypeSignature, Label: "Receiving Party Signature", Position: 4, Required: true, EditableBy: models.EditableByClient},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          seedServiceID,
			Name:        "Service Agreement",
			Description: "Scope, fees and term for contracted services.",
			Fields: models.FieldDefinitionList{
				{ID: uuid.MustParse("5f6a7b8c-9d0e-4f1a-93b4-5c6d7e8f9a0b"), Type: models.FieldTypeText, Label: "Client Name", Position: 0, Required: true, EditableBy: models.EditableByManager, Placeholder: "Full legal name"},
				{ID: uuid.MustParse("6a7b8c9d-0e1f-4a2b-84c5-6d7e8f9a0b1c"), Type: models.FieldTypeText, Label: "Scope of Services", Position: 1, Required: true, EditableBy: models.EditableByManager, Placeholder: "Describe the services to be delivered"},
				{ID: uuid.MustParse("7b8c9d0e-1f2a-4b3c-95d6-7e8f9a0b1c2d"), Type: models.FieldTypeText, Label: "Monthly Fee", Position: 2, Required: true, EditableBy: models.EditableByManager, Placeholder: "e.g. 2500 USD"},
				{ID: uuid.MustParse("8c9d0e1f-2a3b-4c4d-a6e7-8f9a0b1c2d3e"), Type: models.FieldTypeDate, Label: "Start Date", Position: 3, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("9d0e1f2a-3b4c-4d5e-b7f8-9a0b1c2d3e4f"), Type: models.FieldTypeCheckbox, Label: "Renews automatically", Position: 4, Required: false, EditableBy: models.EditableByManager, DefaultChecked: boolPtr(false)},
				{ID: uuid.MustParse("a0b1c2d3-4e5f-4a6b-88c9-0d1e2f3a4b5c"), Type: models.FieldTypeSignature, Label: "Client Signature", Position: 5, Required: true, EditableBy: models.EditableByClient},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          seedEmploymentID,
			Name:        "Employment Agreement",
			Description: "Core terms for a new hire.",
			Fields: models.FieldDefinitionList{
				{ID: uuid.MustParse("b1c2d3e4-5f6a-4b7c-99d0-1e2f3a4b5c6d"), Type: models.FieldTypeText, Label: "Employee Name", Position: 0, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("c2d3e4f5-6a7b-4c8d-8ae1-2f3a4b5c6d7e"), Type: models.FieldTypeText, Label: "Job Title", Position: 1, Required: true, EditableBy: models.EditableByManager, Placeholder: "e.g. Software Engineer"},
				{ID: uuid.MustParse("d3e4f5a6-7b8c-4d9e-8bf2-3a4b5c6d7e8f"), Type: models.FieldTypeDate, Label: "Start Date", Position: 2, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("e4f5a6b7-8c9d-4e0f-8ca3-4b5c6d7e8f9a"), Type: models.FieldTypeCheckbox, Label: "Full-time position", Position: 3, Required: false, EditableBy: models.EditableByManager, DefaultChecked: boolPtr(true)},
				{ID: uuid.MustParse("f5a6b7c8-9d0e-4f1a-8db4-5c6d7e8f9a0b"), Type: models.FieldTypeSignature, Label: "Employee Signature", Position: 4, Required: true, EditableBy: models.EditableByClient},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          seedRentalID,
			Name:        "Rental Agreement",
			Description: "Residential lease between landlord and tenant.",
			Fields: models.FieldDefinitionList{
				{ID: uuid.MustParse("06b7c8d9-0e1f-4a2b-8ec5-6d7e8f9a0b1c"), Type: models.FieldTypeText, Label: "Tenant Name", Position: 0, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("17c8d9e0-1f2a-4b3c-8fd6-7e8f9a0b1c2d"), Type: models.FieldTypeText, Label: "Property Address", Position: 1, Required: true, EditableBy: models.EditableByManager, Placeholder: "Street, city, postal code"},
				{ID: uuid.MustParse("28d9e0f1-2a3b-4c4d-80e7-8f9a0b1c2d3e"), Type: models.FieldTypeDate, Label: "Lease Start", Position: 2, Required: true, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("39e0f1a2-3b4c-4d5e-91f8-9a0b1c2d3e4f"), Type: models.FieldTypeDate, Label: "Lease End", Position: 3, Required: false, EditableBy: models.EditableByManager},
				{ID: uuid.MustParse("4af1a2b3-4c5d-4e6f-a209-0b1c2d3e4f5a"), Type: models.FieldTypeCheckbox, Label: "Pets allowed", Position: 4, Required: false, EditableBy: models.EditableByManager, DefaultChecked: boolPtr(false)},
				{ID: uuid.MustParse("5ba2b3c4-5d6e-4f7a-b31a-1c2d3e4f5a6b"), Type: models.FieldTypeSignature, Label: "Tenant Signature", Position: 5, Required: true, EditableBy: models.EditableByClient},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
