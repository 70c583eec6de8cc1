package commands

import (
	"context"

	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// AssignCargoCommandHandler handles placing cargo aboard a vessel. The
// paired writes go through the relationship coordinator, vessel record
// first.
type AssignCargoCommandHandler struct {
	vessels     ports.VesselRepository
	cargo       ports.CargoRepository
	coordinator RelationshipCoordinator
}

// NewAssignCargoCommandHandler creates a handler for cargo assignment.
func NewAssignCargoCommandHandler(
	vessels ports.VesselRepository,
	cargoRepo ports.CargoRepository,
	coordinator RelationshipCoordinator,
) AssignCargoCommandHandler {
	return AssignCargoCommandHandler{
		vessels:     vessels,
		cargo:       cargoRepo,
		coordinator: coordinator,
	}
}

// Handle processes the assignment command. Both records must exist before
// the ownership check runs; a cargo already aboard any vessel is a conflict.
func (h AssignCargoCommandHandler) Handle(ctx context.Context, cmd AssignCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vesselAggregate, err := h.vessels.Get(ctx, cmd.VesselID())
	if err != nil {
		return err
	}
	cargoAggregate, err := h.cargo.Get(ctx, cmd.CargoID())
	if err != nil {
		return err
	}

	if !vesselAggregate.IsOwnedBy(cmd.Principal()) {
		return errs.NewAccessForbiddenError("vesselId", cmd.VesselID().String())
	}

	return h.coordinator.Assign(ctx, vesselAggregate, cargoAggregate)
}
