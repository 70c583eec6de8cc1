package commands

import (
	"context"

	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// UpdateVesselCommandHandler handles vessel attribute updates.
//
// A rename re-runs the advisory duplicate-name scan and afterwards refreshes
// the denormalized carrier name in every cargo record the vessel carries.
type UpdateVesselCommandHandler struct {
	vessels     ports.VesselRepository
	coordinator RelationshipCoordinator
}

// NewUpdateVesselCommandHandler creates a handler for vessel updates.
func NewUpdateVesselCommandHandler(
	vessels ports.VesselRepository,
	coordinator RelationshipCoordinator,
) UpdateVesselCommandHandler {
	return UpdateVesselCommandHandler{
		vessels:     vessels,
		coordinator: coordinator,
	}
}

// Handle processes the vessel update command and returns the updated
// aggregate. Existence is checked before ownership, so a missing vessel is
// not-found even for a caller who would not own it.
func (h UpdateVesselCommandHandler) Handle(ctx context.Context, cmd UpdateVesselCommand) (*vessel.Vessel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.vessels.Get(ctx, cmd.VesselID())
	if err != nil {
		return nil, err
	}
	if !aggregate.IsOwnedBy(cmd.Principal()) {
		return nil, errs.NewAccessForbiddenError("vesselId", cmd.VesselID().String())
	}

	renamed := false
	if name := cmd.Name(); name != nil && *name != aggregate.Name() {
		duplicate, dupErr := h.vessels.IsDuplicateName(ctx, *name)
		if dupErr != nil {
			return nil, dupErr
		}
		if duplicate {
			return nil, errs.NewObjectConflictError("name", *name)
		}
		if err := aggregate.Rename(*name); err != nil {
			return nil, err
		}
		renamed = true
	}
	if vesselType := cmd.VesselType(); vesselType != nil {
		if err := aggregate.ChangeVesselType(*vesselType); err != nil {
			return nil, err
		}
	}
	if length := cmd.Length(); length != nil {
		if err := aggregate.ChangeLength(*length); err != nil {
			return nil, err
		}
	}

	if err := h.vessels.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if renamed {
		h.coordinator.RefreshCarrierNames(ctx, aggregate)
	}

	return aggregate, nil
}
