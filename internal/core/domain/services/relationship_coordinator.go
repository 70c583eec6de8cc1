package services

import (
	"context"
	"log/slog"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// RelationshipCoordinator is a domain service that maintains the
// bidirectional vessel-cargo association.
//
// The association is stored twice: the vessel document embeds a cargo
// reference list, and the cargo document embeds a carrier reference. The
// underlying store offers no multi-record transactions, so the coordinator
// keeps the two sides in agreement by sequencing writes instead. Every
// mutation touches the vessel record first and the cargo record second.
// When the second write fails the two records disagree until the
// reconciliation job repairs them; the coordinator performs no rollback.
type RelationshipCoordinator struct {
	vessels ports.VesselRepository
	cargo   ports.CargoRepository
	log     *slog.Logger
}

// NewRelationshipCoordinator creates a new RelationshipCoordinator.
func NewRelationshipCoordinator(
	vessels ports.VesselRepository,
	cargoRepo ports.CargoRepository,
	log *slog.Logger,
) (*RelationshipCoordinator, error) {
	if vessels == nil {
		return nil, errs.NewValueIsRequiredError("vessels")
	}
	if cargoRepo == nil {
		return nil, errs.NewValueIsRequiredError("cargoRepo")
	}
	if log == nil {
		return nil, errs.NewValueIsRequiredError("log")
	}

	return &RelationshipCoordinator{
		vessels: vessels,
		cargo:   cargoRepo,
		log:     log,
	}, nil
}

// Assign places the cargo aboard the vessel. Both aggregates are mutated and
// persisted, vessel side first. The operation fails with an object-conflict
// error when the cargo is already loaded anywhere, including on the same
// vessel.
func (s *RelationshipCoordinator) Assign(ctx context.Context, v *vessel.Vessel, c *cargo.Cargo) error {
	carrier, err := cargo.NewCarrier(v.ID(), v.Name())
	if err != nil {
		return err
	}

	if err := c.Load(carrier); err != nil {
		return err
	}
	if err := v.AddCargoRef(c.ID()); err != nil {
		return err
	}

	if err := s.vessels.Update(ctx, v); err != nil {
		return err
	}
	if err := s.cargo.Update(ctx, c); err != nil {
		s.log.ErrorContext(ctx, "cargo side of assignment not persisted, records disagree until reconciliation",
			"vessel_id", v.ID().String(),
			"cargo_id", c.ID().String(),
			"error", err)
		return err
	}

	return nil
}

// Release takes the cargo off the vessel. Both aggregates are mutated and
// persisted, vessel side first. The operation fails with an
// object-not-found error when the cargo is not aboard this vessel.
func (s *RelationshipCoordinator) Release(ctx context.Context, v *vessel.Vessel, c *cargo.Cargo) error {
	if err := c.Unload(v.ID()); err != nil {
		return err
	}
	if err := v.RemoveCargoRef(c.ID()); err != nil {
		return err
	}

	if err := s.vessels.Update(ctx, v); err != nil {
		return err
	}
	if err := s.cargo.Update(ctx, c); err != nil {
		s.log.ErrorContext(ctx, "cargo side of release not persisted, records disagree until reconciliation",
			"vessel_id", v.ID().String(),
			"cargo_id", c.ID().String(),
			"error", err)
		return err
	}

	return nil
}

// DetachAllCargo clears the carrier of every cargo record the vessel
// references. It is called before a vessel is deleted, so the vessel record
// itself is not rewritten. The pass is best effort: a cargo record that
// cannot be read or written is logged and skipped so the remaining records
// still get cleared.
func (s *RelationshipCoordinator) DetachAllCargo(ctx context.Context, v *vessel.Vessel) {
	for _, cargoID := range v.CargoRefs() {
		c, err := s.cargo.Get(ctx, cargoID)
		if err != nil {
			s.log.WarnContext(ctx, "referenced cargo not readable during vessel detach",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
			continue
		}

		if err := c.Unload(v.ID()); err != nil {
			s.log.WarnContext(ctx, "referenced cargo does not name this vessel as carrier",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
			continue
		}

		if err := s.cargo.Update(ctx, c); err != nil {
			s.log.WarnContext(ctx, "carrier not cleared during vessel detach",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
		}
	}
}

// RefreshCarrierNames rewrites the denormalized carrier name in every cargo
// record the vessel references. It is called after a vessel rename. The pass
// is best effort: a failure is logged and the remaining records still get
// refreshed, since the reconciliation job repairs stale names as well.
func (s *RelationshipCoordinator) RefreshCarrierNames(ctx context.Context, v *vessel.Vessel) {
	for _, cargoID := range v.CargoRefs() {
		c, err := s.cargo.Get(ctx, cargoID)
		if err != nil {
			s.log.WarnContext(ctx, "referenced cargo not readable during carrier name refresh",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
			continue
		}

		carrier := c.Carrier()
		if carrier == nil || !carrier.VesselID().IsEqual(v.ID()) || carrier.VesselName() == v.Name() {
			continue
		}

		if err := c.RefreshCarrierName(v.Name()); err != nil {
			s.log.WarnContext(ctx, "carrier name not refreshed",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
			continue
		}

		if err := s.cargo.Update(ctx, c); err != nil {
			s.log.WarnContext(ctx, "refreshed carrier name not persisted",
				"vessel_id", v.ID().String(),
				"cargo_id", cargoID.String(),
				"error", err)
		}
	}
}

// DetachFromCarrier removes the cargo from its carrier's reference list. It
// is called before a cargo record is deleted, so the cargo record itself is
// not rewritten. A missing carrier vessel or an absent reference is logged
// and tolerated; a failed vessel write is returned so the caller does not
// delete a cargo record a vessel still references.
func (s *RelationshipCoordinator) DetachFromCarrier(ctx context.Context, c *cargo.Cargo) error {
	carrier := c.Carrier()
	if carrier == nil {
		return nil
	}

	v, err := s.vessels.Get(ctx, carrier.VesselID())
	if err != nil {
		s.log.WarnContext(ctx, "carrier vessel not readable during cargo detach",
			"vessel_id", carrier.VesselID().String(),
			"cargo_id", c.ID().String(),
			"error", err)
		return nil
	}

	if err := v.RemoveCargoRef(c.ID()); err != nil {
		s.log.WarnContext(ctx, "carrier vessel does not reference this cargo",
			"vessel_id", v.ID().String(),
			"cargo_id", c.ID().String(),
			"error", err)
		return nil
	}

	return s.vessels.Update(ctx, v)
}
