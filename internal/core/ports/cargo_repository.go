package ports

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/kernel"
)

// CargoPage is a single page of cargo records.
type CargoPage struct {
	Cargo []*cargo.Cargo
	PageInfo
}

// CargoRepository provides access to cargo records in the document store.
type CargoRepository interface {
	// Add persists a new cargo record and assigns it a store-generated
	// identifier. The aggregate is mutated in place via AssignID.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update fully replaces a previously persisted cargo record.
	// Returns ObjectNotFoundError when the record no longer exists.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Delete removes a cargo record.
	// Returns ObjectNotFoundError when the record does not exist.
	Delete(ctx context.Context, cargoID kernel.ID) error

	// Get loads a cargo record by identifier.
	// Returns ObjectNotFoundError when the record does not exist.
	Get(ctx context.Context, cargoID kernel.ID) (*cargo.Cargo, error)

	// GetAll returns one page of all cargo records together with the total
	// count. Cargo listings are not scoped to a principal.
	GetAll(ctx context.Context, page PageRequest) (CargoPage, error)
}
