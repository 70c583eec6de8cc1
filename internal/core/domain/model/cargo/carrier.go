package cargo

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is the cargo-side pointer to the vessel currently holding the item.
// It carries the vessel id together with a denormalized copy of the vessel
// name, so listing cargo does not require a second lookup per item.
//
// Carrier is an immutable value object; the denormalized name reflects the
// vessel at assignment time and is refreshed by the reconciliation job if the
// vessel is renamed.
type Carrier struct {
	vesselID   kernel.ID
	vesselName string
}

// NewCarrier creates a carrier pointer to the given vessel.
func NewCarrier(vesselID kernel.ID, vesselName string) (Carrier, error) {
	if err := vesselID.Validate(); err != nil {
		return Carrier{}, err
	}
	if vesselName == "" {
		return Carrier{}, errs.NewValueIsRequiredError("vesselName")
	}

	return Carrier{vesselID: vesselID, vesselName: vesselName}, nil
}

// Validate checks that the Carrier was built via NewCarrier.
func (c Carrier) Validate() error {
	if err := c.vesselID.Validate(); err != nil {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// VesselID returns the id of the carrying vessel.
func (c Carrier) VesselID() kernel.ID {
	return c.vesselID
}

// VesselName returns the denormalized name of the carrying vessel.
func (c Carrier) VesselName() string {
	return c.vesselName
}
