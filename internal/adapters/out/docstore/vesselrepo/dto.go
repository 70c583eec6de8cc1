// Package vesselrepo maps vessel aggregates onto schemaless documents and
// implements the vessel repository port over the document store.
package vesselrepo

import (
	"encoding/json"
	"fmt"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
)

// VesselDTO is the JSON document shape of a stored vessel. The id lives in
// the store key, not in the document body.
type VesselDTO struct {
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Length    int           `json:"length"`
	Owner     string        `json:"owner"`
	CargoRefs []CargoRefDTO `json:"cargo"`
}

// CargoRefDTO is one entry of the vessel's embedded cargo reference list.
type CargoRefDTO struct {
	ID int64 `json:"id"`
}

// fromDomain converts a vessel aggregate to its document representation.
func fromDomain(aggregate *vessel.Vessel) ([]byte, error) {
	refs := make([]CargoRefDTO, 0, len(aggregate.CargoRefs()))
	for _, ref := range aggregate.CargoRefs() {
		refs = append(refs, CargoRefDTO{ID: ref.Int64()})
	}

	dto := VesselDTO{
		Name:      aggregate.Name(),
		Type:      aggregate.VesselType(),
		Length:    aggregate.Length(),
		Owner:     aggregate.Owner(),
		CargoRefs: refs,
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode vessel document: %w", err)
	}
	return data, nil
}

// toDomain reconstructs a vessel aggregate from a stored document.
func toDomain(doc ports.Document) (*vessel.Vessel, error) {
	var dto VesselDTO
	if err := json.Unmarshal(doc.Data, &dto); err != nil {
		return nil, fmt.Errorf("decode vessel document %d: %w", doc.ID, err)
	}

	id, err := kernel.NewID(doc.ID)
	if err != nil {
		return nil, err
	}

	refs := make([]kernel.ID, 0, len(dto.CargoRefs))
	for _, ref := range dto.CargoRefs {
		refID, refErr := kernel.NewID(ref.ID)
		if refErr != nil {
			return nil, refErr
		}
		refs = append(refs, refID)
	}

	return vessel.RestoreVessel(id, dto.Name, dto.Type, dto.Length, dto.Owner, refs)
}
