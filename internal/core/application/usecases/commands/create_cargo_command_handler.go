package commands

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/ports"
)

// CreateCargoCommandHandler handles cargo registration.
type CreateCargoCommandHandler struct {
	cargo ports.CargoRepository
}

// NewCreateCargoCommandHandler creates a handler for cargo registration.
func NewCreateCargoCommandHandler(cargoRepo ports.CargoRepository) CreateCargoCommandHandler {
	return CreateCargoCommandHandler{
		cargo: cargoRepo,
	}
}

// Handle processes the cargo creation command and returns the persisted
// aggregate with its store-assigned identifier.
func (h CreateCargoCommandHandler) Handle(ctx context.Context, cmd CreateCargoCommand) (*cargo.Cargo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := cargo.NewCargo(cmd.Item(), cmd.CreationDate(), cmd.Volume())
	if err != nil {
		return nil, err
	}

	if err := h.cargo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
