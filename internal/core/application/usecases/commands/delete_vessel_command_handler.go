package commands

import (
	"context"

	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// DeleteVesselCommandHandler handles vessel removal. The carrier pointers of
// cargo aboard the vessel are cleared first; that pass is best effort, so a
// straggling cargo record is left for the reconciliation job rather than
// blocking the deletion.
type DeleteVesselCommandHandler struct {
	vessels     ports.VesselRepository
	coordinator RelationshipCoordinator
}

// NewDeleteVesselCommandHandler creates a handler for vessel removal.
func NewDeleteVesselCommandHandler(
	vessels ports.VesselRepository,
	coordinator RelationshipCoordinator,
) DeleteVesselCommandHandler {
	return DeleteVesselCommandHandler{
		vessels:     vessels,
		coordinator: coordinator,
	}
}

// Handle processes the vessel deletion command. Existence is checked before
// ownership.
func (h DeleteVesselCommandHandler) Handle(ctx context.Context, cmd DeleteVesselCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.vessels.Get(ctx, cmd.VesselID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.Principal()) {
		return errs.NewAccessForbiddenError("vesselId", cmd.VesselID().String())
	}

	h.coordinator.DetachAllCargo(ctx, aggregate)

	return h.vessels.Delete(ctx, cmd.VesselID())
}
