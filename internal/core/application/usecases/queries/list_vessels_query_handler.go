package queries

import (
	"context"

	"harbor/internal/core/ports"
)

// ListVesselsQueryHandler retrieves pages of the principal's vessels.
type ListVesselsQueryHandler struct {
	vessels ports.VesselRepository
}

// NewListVesselsQueryHandler creates a handler for vessel listings.
func NewListVesselsQueryHandler(vessels ports.VesselRepository) ListVesselsQueryHandler {
	return ListVesselsQueryHandler{vessels: vessels}
}

// Handle executes the query. The page carries the principal's total vessel
// count alongside the page items.
func (h ListVesselsQueryHandler) Handle(ctx context.Context, query ListVesselsQuery) (VesselListResponse, error) {
	if err := query.Validate(); err != nil {
		return VesselListResponse{}, err
	}

	page, err := h.vessels.GetByOwner(ctx, query.Principal(), ports.PageRequest{Cursor: query.Cursor()})
	if err != nil {
		return VesselListResponse{}, err
	}

	response := VesselListResponse{
		Vessels:    make([]VesselResponse, 0, len(page.Vessels)),
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	}
	for _, aggregate := range page.Vessels {
		response.Vessels = append(response.Vessels, vesselToResponse(aggregate))
	}

	return response, nil
}
