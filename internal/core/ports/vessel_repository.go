package ports

import (
	"context"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"
)

// VesselPage is a single page of vessels scoped to one owner.
type VesselPage struct {
	Vessels []*vessel.Vessel
	PageInfo
}

// VesselRepository provides access to vessel records in the document store.
//
// There are no cross-record guarantees: each Add/Update/Delete touches exactly
// one record, and callers that need to keep several records in agreement must
// sequence their own writes.
type VesselRepository interface {
	// Add persists a new vessel and assigns it a store-generated identifier.
	// The aggregate is mutated in place via AssignID.
	Add(ctx context.Context, aggregate *vessel.Vessel) error

	// Update fully replaces a previously persisted vessel record.
	// Returns ObjectNotFoundError when the record no longer exists.
	Update(ctx context.Context, aggregate *vessel.Vessel) error

	// Delete removes a vessel record.
	// Returns ObjectNotFoundError when the record does not exist.
	Delete(ctx context.Context, vesselID kernel.ID) error

	// Get loads a vessel by identifier.
	// Returns ObjectNotFoundError when the record does not exist.
	Get(ctx context.Context, vesselID kernel.ID) (*vessel.Vessel, error)

	// GetByOwner returns one page of the owner's vessels together with the
	// owner's total vessel count.
	GetByOwner(ctx context.Context, owner string, page PageRequest) (VesselPage, error)

	// GetAll returns one page of all vessels regardless of owner, together
	// with the total vessel count. Used by maintenance scans.
	GetAll(ctx context.Context, page PageRequest) (VesselPage, error)

	// IsDuplicateName reports whether any vessel already carries the given
	// name. The check is an equality scan, not a uniqueness constraint, so
	// concurrent creates may still race.
	IsDuplicateName(ctx context.Context, name string) (bool, error)
}
