package queries

import (
	"context"

	"harbor/internal/core/ports"
)

// ListCargoQueryHandler retrieves pages of the cargo collection.
type ListCargoQueryHandler struct {
	cargo ports.CargoRepository
}

// NewListCargoQueryHandler creates a handler for cargo listings.
func NewListCargoQueryHandler(cargoRepo ports.CargoRepository) ListCargoQueryHandler {
	return ListCargoQueryHandler{cargo: cargoRepo}
}

// Handle executes the query. The page carries the collection total alongside
// the page items.
func (h ListCargoQueryHandler) Handle(ctx context.Context, query ListCargoQuery) (CargoListResponse, error) {
	if err := query.Validate(); err != nil {
		return CargoListResponse{}, err
	}

	page, err := h.cargo.GetAll(ctx, ports.PageRequest{Cursor: query.Cursor()})
	if err != nil {
		return CargoListResponse{}, err
	}

	response := CargoListResponse{
		Cargo:      make([]CargoResponse, 0, len(page.Cargo)),
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	}
	for _, aggregate := range page.Cargo {
		response.Cargo = append(response.Cargo, cargoToResponse(aggregate))
	}

	return response, nil
}
