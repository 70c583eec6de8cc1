package commands

import (
	"context"

	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// ReleaseCargoCommandHandler handles taking cargo off a vessel. The paired
// writes go through the relationship coordinator, vessel record first.
type ReleaseCargoCommandHandler struct {
	vessels     ports.VesselRepository
	cargo       ports.CargoRepository
	coordinator RelationshipCoordinator
}

// NewReleaseCargoCommandHandler creates a handler for cargo release.
func NewReleaseCargoCommandHandler(
	vessels ports.VesselRepository,
	cargoRepo ports.CargoRepository,
	coordinator RelationshipCoordinator,
) ReleaseCargoCommandHandler {
	return ReleaseCargoCommandHandler{
		vessels:     vessels,
		cargo:       cargoRepo,
		coordinator: coordinator,
	}
}

// Handle processes the release command. Both records must exist before the
// ownership check runs; releasing cargo that is not aboard this vessel is
// not-found.
func (h ReleaseCargoCommandHandler) Handle(ctx context.Context, cmd ReleaseCargoCommand) error {
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

	return h.coordinator.Release(ctx, vesselAggregate, cargoAggregate)
}
