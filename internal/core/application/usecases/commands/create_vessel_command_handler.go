package commands

import (
	"context"

	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// CreateVesselCommandHandler handles vessel registration.
//
// Name uniqueness is advisory: the handler runs an equality scan before the
// insert, so two concurrent creates of the same name can both pass the check.
// The store offers nothing stronger.
type CreateVesselCommandHandler struct {
	vessels ports.VesselRepository
}

// NewCreateVesselCommandHandler creates a handler for vessel registration.
func NewCreateVesselCommandHandler(vessels ports.VesselRepository) CreateVesselCommandHandler {
	return CreateVesselCommandHandler{
		vessels: vessels,
	}
}

// Handle processes the vessel creation command and returns the persisted
// aggregate with its store-assigned identifier.
func (h CreateVesselCommandHandler) Handle(ctx context.Context, cmd CreateVesselCommand) (*vessel.Vessel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	duplicate, err := h.vessels.IsDuplicateName(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, errs.NewObjectConflictError("name", cmd.Name())
	}

	aggregate, err := vessel.NewVessel(cmd.Name(), cmd.VesselType(), cmd.Length(), cmd.Owner())
	if err != nil {
		return nil, err
	}

	if err := h.vessels.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
