// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: guarded
// construction, validation, then persistence through the repository ports.
//
// The store behind the repositories has no multi-record transactions, so
// handlers that touch both entity kinds delegate the write sequencing to the
// relationship coordinator instead of a unit of work.
package commands

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/vessel"
)

// RelationshipCoordinator sequences the paired writes that keep the
// vessel-cargo association bidirectionally consistent. Implemented by
// services.RelationshipCoordinator.
type RelationshipCoordinator interface {
	// Assign places cargo aboard a vessel, vessel record first.
	Assign(ctx context.Context, v *vessel.Vessel, c *cargo.Cargo) error

	// Release takes cargo off a vessel, vessel record first.
	Release(ctx context.Context, v *vessel.Vessel, c *cargo.Cargo) error

	// DetachAllCargo clears the carrier of every referenced cargo record
	// ahead of a vessel deletion. Best effort.
	DetachAllCargo(ctx context.Context, v *vessel.Vessel)

	// RefreshCarrierNames rewrites denormalized carrier names after a
	// vessel rename. Best effort.
	RefreshCarrierNames(ctx context.Context, v *vessel.Vessel)

	// DetachFromCarrier removes the cargo from its carrier's reference list
	// ahead of a cargo deletion.
	DetachFromCarrier(ctx context.Context, c *cargo.Cargo) error
}
