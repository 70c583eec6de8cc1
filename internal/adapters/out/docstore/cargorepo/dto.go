// Package cargorepo maps cargo aggregates onto schemaless documents and
// implements the cargo repository port over the document store.
package cargorepo

import (
	"encoding/json"
	"fmt"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/ports"
)

// CargoDTO is the JSON document shape of a stored cargo record. Carrier is
// null while the item sits unloaded.
type CargoDTO struct {
	Item         string      `json:"item"`
	CreationDate string      `json:"creation_date"`
	Volume       int         `json:"volume"`
	Carrier      *CarrierDTO `json:"carrier"`
}

// CarrierDTO is the embedded reference to the vessel currently holding the
// cargo. The vessel name is denormalized into the document.
type CarrierDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// fromDomain converts a cargo aggregate to its document representation.
func fromDomain(aggregate *cargo.Cargo) ([]byte, error) {
	dto := CargoDTO{
		Item:         aggregate.Item(),
		CreationDate: aggregate.CreationDate(),
		Volume:       aggregate.Volume(),
	}

	if carrier := aggregate.Carrier(); carrier != nil {
		dto.Carrier = &CarrierDTO{
			ID:   carrier.VesselID().Int64(),
			Name: carrier.VesselName(),
		}
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode cargo document: %w", err)
	}
	return data, nil
}

// toDomain reconstructs a cargo aggregate from a stored document.
func toDomain(doc ports.Document) (*cargo.Cargo, error) {
	var dto CargoDTO
	if err := json.Unmarshal(doc.Data, &dto); err != nil {
		return nil, fmt.Errorf("decode cargo document %d: %w", doc.ID, err)
	}

	id, err := kernel.NewID(doc.ID)
	if err != nil {
		return nil, err
	}

	var carrier *cargo.Carrier
	if dto.Carrier != nil {
		vesselID, vesselErr := kernel.NewID(dto.Carrier.ID)
		if vesselErr != nil {
			return nil, vesselErr
		}
		c, carrierErr := cargo.NewCarrier(vesselID, dto.Carrier.Name)
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrier = &c
	}

	return cargo.RestoreCargo(id, dto.Item, dto.CreationDate, dto.Volume, carrier)
}
