package commands

import (
	"context"

	"harbor/internal/core/ports"
)

// DeleteCargoCommandHandler handles cargo removal. The vessel side of the
// association is cleaned up first so no vessel keeps a reference to a deleted
// record.
type DeleteCargoCommandHandler struct {
	cargo       ports.CargoRepository
	coordinator RelationshipCoordinator
}

// NewDeleteCargoCommandHandler creates a handler for cargo removal.
func NewDeleteCargoCommandHandler(
	cargoRepo ports.CargoRepository,
	coordinator RelationshipCoordinator,
) DeleteCargoCommandHandler {
	return DeleteCargoCommandHandler{
		cargo:       cargoRepo,
		coordinator: coordinator,
	}
}

// Handle processes the cargo deletion command.
func (h DeleteCargoCommandHandler) Handle(ctx context.Context, cmd DeleteCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.cargo.Get(ctx, cmd.CargoID())
	if err != nil {
		return err
	}

	if err := h.coordinator.DetachFromCarrier(ctx, aggregate); err != nil {
		return err
	}

	return h.cargo.Delete(ctx, cmd.CargoID())
}
