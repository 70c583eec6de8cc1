package queries

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/ports"
)

// GetCargoQueryHandler retrieves a single cargo read model.
type GetCargoQueryHandler struct {
	cargo ports.CargoRepository
}

// NewGetCargoQueryHandler creates a handler for single-cargo retrieval.
func NewGetCargoQueryHandler(cargoRepo ports.CargoRepository) GetCargoQueryHandler {
	return GetCargoQueryHandler{cargo: cargoRepo}
}

// Handle executes the query.
func (h GetCargoQueryHandler) Handle(ctx context.Context, query GetCargoQuery) (CargoResponse, error) {
	if err := query.Validate(); err != nil {
		return CargoResponse{}, err
	}

	aggregate, err := h.cargo.Get(ctx, query.CargoID())
	if err != nil {
		return CargoResponse{}, err
	}

	return cargoToResponse(aggregate), nil
}

func cargoToResponse(aggregate *cargo.Cargo) CargoResponse {
	response := CargoResponse{
		ID:           aggregate.ID(),
		Item:         aggregate.Item(),
		CreationDate: aggregate.CreationDate(),
		Volume:       aggregate.Volume(),
	}

	if carrier := aggregate.Carrier(); carrier != nil {
		response.Carrier = &CarrierResponse{
			VesselID:   carrier.VesselID(),
			VesselName: carrier.VesselName(),
		}
	}

	return response
}
