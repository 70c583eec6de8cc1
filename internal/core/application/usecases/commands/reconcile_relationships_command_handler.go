package commands

import (
	"context"
	"errors"
	"log/slog"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// ReconcileRelationshipsCommandHandler walks every vessel and cargo record
// and repairs the vessel-cargo association wherever the two sides disagree.
//
// The repair rule mirrors the write order of assign and release: the vessel
// record is written first, so a pair that only one side confirms is treated
// as a failed second write and settled back to unloaded. A cargo ref with no
// confirming carrier is dropped; a carrier with no confirming cargo ref, or
// one naming a vessel that no longer exists, is cleared. Carriers whose
// denormalized vessel name went stale are refreshed.
//
// The sweep is best effort: a record that cannot be repaired is logged and
// skipped so one bad document never blocks the rest of the scan.
type ReconcileRelationshipsCommandHandler struct {
	vessels ports.VesselRepository
	cargo   ports.CargoRepository
	log     *slog.Logger
}

// NewReconcileRelationshipsCommandHandler creates the reconciliation handler.
func NewReconcileRelationshipsCommandHandler(
	vessels ports.VesselRepository,
	cargoRepo ports.CargoRepository,
	log *slog.Logger,
) ReconcileRelationshipsCommandHandler {
	return ReconcileRelationshipsCommandHandler{
		vessels: vessels,
		cargo:   cargoRepo,
		log:     log,
	}
}

// Handle runs one full reconciliation sweep. It fails only when a page scan
// itself fails; per-record repair failures are logged and skipped.
func (h ReconcileRelationshipsCommandHandler) Handle(ctx context.Context, cmd ReconcileRelationshipsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var refsDropped, carriersCleared, namesRefreshed int

	cursor := ""
	for {
		page, err := h.vessels.GetAll(ctx, ports.PageRequest{Cursor: cursor})
		if err != nil {
			return err
		}

		for _, v := range page.Vessels {
			refsDropped += h.reconcileVessel(ctx, v)
		}

		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}

	cursor = ""
	for {
		page, err := h.cargo.GetAll(ctx, ports.PageRequest{Cursor: cursor})
		if err != nil {
			return err
		}

		for _, c := range page.Cargo {
			cleared, refreshed := h.reconcileCargo(ctx, c)
			carriersCleared += cleared
			namesRefreshed += refreshed
		}

		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}

	if refsDropped > 0 || carriersCleared > 0 || namesRefreshed > 0 {
		h.log.InfoContext(ctx, "relationship reconciliation repaired records",
			"refsDropped", refsDropped,
			"carriersCleared", carriersCleared,
			"namesRefreshed", namesRefreshed)
	}

	return nil
}

// reconcileVessel drops cargo refs the cargo record does not confirm and
// returns the number of refs removed.
func (h ReconcileRelationshipsCommandHandler) reconcileVessel(ctx context.Context, v *vessel.Vessel) int {
	dropped := 0

	for _, cargoID := range v.CargoRefs() {
		c, err := h.cargo.Get(ctx, cargoID)
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				h.log.WarnContext(ctx, "failed to load cargo during reconciliation",
					"cargoId", cargoID.String(), "error", err)
				continue
			}
			c = nil
		}

		confirmed := c != nil && c.Carrier() != nil && c.Carrier().VesselID().IsEqual(v.ID())
		if confirmed {
			continue
		}

		if err := v.RemoveCargoRef(cargoID); err != nil {
			h.log.WarnContext(ctx, "failed to drop unconfirmed cargo ref",
				"vesselId", v.ID().String(), "cargoId", cargoID.String(), "error", err)
			continue
		}
		dropped++
	}

	if dropped == 0 {
		return 0
	}

	if err := h.vessels.Update(ctx, v); err != nil {
		h.log.WarnContext(ctx, "failed to save vessel during reconciliation",
			"vesselId", v.ID().String(), "error", err)
		return 0
	}
	return dropped
}

// reconcileCargo clears a carrier the vessel record does not confirm, or
// refreshes its denormalized vessel name when it went stale. Returns how
// many carriers were cleared and how many names were refreshed.
func (h ReconcileRelationshipsCommandHandler) reconcileCargo(ctx context.Context, c *cargo.Cargo) (int, int) {
	carrier := c.Carrier()
	if carrier == nil {
		return 0, 0
	}

	v, err := h.vessels.Get(ctx, carrier.VesselID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		h.log.WarnContext(ctx, "failed to load vessel during reconciliation",
			"vesselId", carrier.VesselID().String(), "error", err)
		return 0, 0
	}

	if v != nil && v.HasCargoRef(c.ID()) {
		if v.Name() == carrier.VesselName() {
			return 0, 0
		}

		if err := c.RefreshCarrierName(v.Name()); err != nil {
			h.log.WarnContext(ctx, "failed to refresh carrier name",
				"cargoId", c.ID().String(), "error", err)
			return 0, 0
		}
		if err := h.cargo.Update(ctx, c); err != nil {
			h.log.WarnContext(ctx, "failed to save cargo during reconciliation",
				"cargoId", c.ID().String(), "error", err)
			return 0, 0
		}
		return 0, 1
	}

	if err := c.Unload(carrier.VesselID()); err != nil {
		h.log.WarnContext(ctx, "failed to clear unconfirmed carrier",
			"cargoId", c.ID().String(), "error", err)
		return 0, 0
	}
	if err := h.cargo.Update(ctx, c); err != nil {
		h.log.WarnContext(ctx, "failed to save cargo during reconciliation",
			"cargoId", c.ID().String(), "error", err)
		return 0, 0
	}
	return 1, 0
}
