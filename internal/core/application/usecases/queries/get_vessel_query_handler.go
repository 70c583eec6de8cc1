package queries

import (
	"context"

	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// GetVesselQueryHandler retrieves a single vessel read model.
type GetVesselQueryHandler struct {
	vessels ports.VesselRepository
}

// NewGetVesselQueryHandler creates a handler for single-vessel retrieval.
func NewGetVesselQueryHandler(vessels ports.VesselRepository) GetVesselQueryHandler {
	return GetVesselQueryHandler{vessels: vessels}
}

// Handle executes the query. A vessel that exists but belongs to another
// principal yields an access-forbidden error; existence is checked first.
func (h GetVesselQueryHandler) Handle(ctx context.Context, query GetVesselQuery) (VesselResponse, error) {
	if err := query.Validate(); err != nil {
		return VesselResponse{}, err
	}

	aggregate, err := h.vessels.Get(ctx, query.VesselID())
	if err != nil {
		return VesselResponse{}, err
	}
	if !aggregate.IsOwnedBy(query.Principal()) {
		return VesselResponse{}, errs.NewAccessForbiddenError("vesselId", query.VesselID().String())
	}

	return vesselToResponse(aggregate), nil
}

func vesselToResponse(aggregate *vessel.Vessel) VesselResponse {
	return VesselResponse{
		ID:       aggregate.ID(),
		Name:     aggregate.Name(),
		Type:     aggregate.VesselType(),
		Length:   aggregate.Length(),
		Owner:    aggregate.Owner(),
		CargoIDs: aggregate.CargoRefs(),
	}
}
