// services/contract_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/draftdesk/draftdesk/lifecycle"
	"github.com/draftdesk/draftdesk/models"
	"github.com/draftdesk/draftdesk/utils"
)

// ContractService owns the contract collection and enforces that no status
// or field mutation bypasses the lifecycle engine. Gated operations signal
// refusal with a plain false; only Create distinguishes an error, because a
// missing blueprint is a referential-integrity problem the caller must
// surface.
type ContractService struct {
	catalog   *CatalogService
	contracts []models.Contract

	afterChange func()
}

type CreateContractInput struct {
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	BlueprintID uuid.UUID `json:"blueprint_id" validate:"required"`
}

func NewContractService(catalog *CatalogService, initial []models.Contract) *ContractService {
	s := &ContractService{
		catalog:   catalog,
		contracts: make([]models.Contract, 0, len(initial)),
	}
	for _, c := range initial {
		s.contracts = append(s.contracts, c.Clone())
	}
	return s
}

// List returns all contracts in insertion order.
func (s *ContractService) List() []models.Contract {
	out := make([]models.Contract, len(s.contracts))
	for i, c := range s.contracts {
		out[i] = c.Clone()
	}
	return out
}

func (s *ContractService) Get(id uuid.UUID) (*models.Contract, bool) {
	idx := s.find(id)
	if idx < 0 {
		return nil, false
	}
	c := s.contracts[idx].Clone()
	return &c, true
}

// Create instantiates a contract from a blueprint, deep-copying every field
// definition into a contract field with its type's initial value. The new
// contract starts in CREATED. Template edits after this point never
// propagate to the contract.
func (s *ContractService) Create(input CreateContractInput) (*models.Contract, error) {
	if err := utils.ValidateStruct(&input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	bp, ok := s.catalog.Get(input.BlueprintID)
	if !ok {
		return nil, ErrBlueprintNotFound
	}

	fields := make(models.ContractFieldList, len(bp.Fields))
	for i, def := range bp.Fields {
		fields[i] = models.NewContractField(def)
	}

	now := time.Now()
	contract := models.Contract{
		ID:            uuid.New(),
		Name:          input.Name,
		BlueprintID:   bp.ID,
		BlueprintName: bp.Name,
		Status:        models.StatusCreated,
		Fields:        fields,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.contracts = append(s.contracts, contract)

	logrus.WithFields(logrus.Fields{
		"contract_id": contract.ID,
		"blueprint":   bp.Name,
		"fields":      len(fields),
	}).Info("Contract created")

	s.changed()

	out := contract.Clone()
	return &out, nil
}

// ReplaceFields commits a new field list if the contract exists and its
// status permits edits: CREATED (full editing) or SENT (the signing party
// writes its signature value). Callers are responsible for restricting
// which fields they actually change in the SENT case.
func (s *ContractService) ReplaceFields(id uuid.UUID, fields []models.ContractField) bool {
	idx := s.find(id)
	if idx < 0 {
		return false
	}
	contract := &s.contracts[idx]

	if !lifecycle.IsEditable(contract.Status) && contract.Status != models.StatusSent {
		logrus.WithFields(logrus.Fields{
			"contract_id": id,
			"status":      contract.Status,
		}).Debug("Field edit refused by lifecycle")
		return false
	}

	contract.Fields = models.ContractFieldList(fields).Clone()
	contract.UpdatedAt = time.Now()
	s.changed()
	return true
}

// Transition applies a status change if the lifecycle engine allows it.
func (s *ContractService) Transition(id uuid.UUID, newStatus models.ContractStatus) bool {
	idx := s.find(id)
	if idx < 0 {
		return false
	}
	contract := &s.contracts[idx]

	if !lifecycle.CanTransition(contract.Status, newStatus) {
		logrus.WithFields(logrus.Fields{
			"contract_id": id,
			"from":        contract.Status,
			"to":          newStatus,
		}).Debug("Transition refused by lifecycle")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"contract_id": id,
		"from":        contract.Status,
		"to":          newStatus,
	}).Info("Contract transitioned")

	contract.Status = newStatus
	contract.UpdatedAt = time.Now()
	s.changed()
	return true
}

// Delete removes a contract at any lifecycle stage. Deletion is
// deliberately not lifecycle-protected.
func (s *ContractService) Delete(id uuid.UUID) bool {
	idx := s.find(id)
	if idx < 0 {
		return false
	}

	s.contracts = append(s.contracts[:idx], s.contracts[idx+1:]...)
	s.changed()
	return true
}

func (s *ContractService) snapshot() []models.Contract {
	return s.List()
}

func (s *ContractService) changed() {
	if s.afterChange != nil {
		s.afterChange()
	}
}

func (s *ContractService) find(id uuid.UUID) int {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			return i
		}
	}
	return -1
}
