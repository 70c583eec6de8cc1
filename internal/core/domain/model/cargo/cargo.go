package cargo

import (
	"errors"
	"fmt"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/errs"
	"harbor/internal/pkg/guard"
)

// Domain errors for cargo operations.
var (
	// ErrItemIsRequired is returned when attempting to create a cargo item without an item description.
	ErrItemIsRequired = errs.NewValueIsRequiredError("item")
	// ErrCargoIsNotConstructed is returned when using an improperly initialized Cargo.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to a cargo item that already has one.
	ErrIDAlreadyAssigned = errors.New("cargo already has a store-assigned id")
)

// Cargo represents a transportable record that is either unloaded or loaded
// on exactly one vessel. It owns the cargo-side carrier pointer; the
// vessel-side reference list is owned by the Vessel aggregate.
//
// Business rules:
//   - Item description is required; creation date is opaque
//   - Volume must be positive
//   - A cargo item has at most one carrier at any time
//   - Creation never references a vessel; loading is a separate operation
type Cargo struct {
	// id is the store-assigned identifier; zero until first persisted
	id kernel.ID
	// item is the caller-supplied description of the cargo
	item string
	// creationDate is an opaque caller-supplied attribute
	creationDate string
	// volume is a caller-supplied positive quantity
	volume int
	// carrier points at the current vessel, nil while unloaded
	carrier *Carrier
	// guard ensures the cargo was properly constructed
	guard guard.ConstructorGuard
}

// NewCargo creates an unloaded Cargo that has not been persisted yet.
// The repository assigns the id on first save via AssignID.
func NewCargo(item, creationDate string, volume int) (*Cargo, error) {
	c := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setItem(item),
		c.setCreationDate(creationDate),
		c.setVolume(volume),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCargo reconstructs a Cargo aggregate from its persisted document,
// including the carrier pointer when the item is loaded.
func RestoreCargo(
	id kernel.ID,
	item, creationDate string,
	volume int,
	carrier *Carrier,
) (*Cargo, error) {
	c := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setItem(item),
		c.setCreationDate(creationDate),
		c.setVolume(volume),
		c.setCarrier(carrier),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Cargo was built via one of its constructors.
func (c *Cargo) Validate() error {
	if c == nil {
		return ErrCargoIsNotConstructed
	}
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// IsEqual compares two cargo items by their store-assigned identifiers.
func (c *Cargo) IsEqual(other *Cargo) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier. Zero until persisted.
func (c *Cargo) ID() kernel.ID {
	return c.id
}

// Item returns the caller-supplied item description.
func (c *Cargo) Item() string {
	return c.item
}

// CreationDate returns the opaque caller-supplied creation date.
func (c *Cargo) CreationDate() string {
	return c.creationDate
}

// Volume returns the caller-supplied volume.
func (c *Cargo) Volume() int {
	return c.volume
}

// Carrier returns a copy of the current carrier pointer, or nil while unloaded.
func (c *Cargo) Carrier() *Carrier {
	if c.carrier == nil {
		return nil
	}
	carrier := *c.carrier
	return &carrier
}

// IsLoaded reports whether the cargo item currently has a carrier.
func (c *Cargo) IsLoaded() bool {
	return c.carrier != nil
}

// AssignID records the identifier the document store allocated on first save.
// It may be called exactly once.
func (c *Cargo) AssignID(id kernel.ID) error {
	if !c.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	return c.setID(id)
}

// Load attaches the cargo item to a vessel. Loading an item that already has
// a carrier is a conflict regardless of which vessel it is on: the caller
// must release it first, so there is never an implicit reassignment.
func (c *Cargo) Load(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	if c.carrier != nil {
		return errs.NewObjectConflictErrorWithCause("cargoId", c.id.String(),
			fmt.Errorf("cargo is already loaded on vessel %s", c.carrier.VesselID()))
	}

	c.carrier = &carrier
	return nil
}

// Unload detaches the cargo item from the named vessel. If the item is not
// currently loaded on that vessel the operation fails with a not-found
// condition and the state is left unchanged.
func (c *Cargo) Unload(vesselID kernel.ID) error {
	if c.carrier == nil || !c.carrier.VesselID().IsEqual(vesselID) {
		return errs.NewObjectNotFoundErrorWithCause("cargoId", c.id.String(),
			fmt.Errorf("cargo is not loaded on vessel %s", vesselID))
	}

	c.carrier = nil
	return nil
}

// ChangeItem replaces the item description. The carrier pointer is untouched.
func (c *Cargo) ChangeItem(item string) error {
	return c.setItem(item)
}

// ChangeCreationDate replaces the opaque creation date attribute.
func (c *Cargo) ChangeCreationDate(creationDate string) error {
	return c.setCreationDate(creationDate)
}

// ChangeVolume replaces the volume. Volume must stay positive.
func (c *Cargo) ChangeVolume(volume int) error {
	return c.setVolume(volume)
}

// RefreshCarrierName updates the denormalized vessel name on the carrier
// pointer. Used by reconciliation after a vessel rename; a no-op while
// unloaded.
func (c *Cargo) RefreshCarrierName(vesselName string) error {
	if c.carrier == nil {
		return nil
	}

	carrier, err := NewCarrier(c.carrier.VesselID(), vesselName)
	if err != nil {
		return err
	}
	c.carrier = &carrier
	return nil
}

func (c *Cargo) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Cargo) setItem(item string) error {
	if item == "" {
		return ErrItemIsRequired
	}

	c.item = item
	return nil
}

func (c *Cargo) setCreationDate(creationDate string) error {
	c.creationDate = creationDate
	return nil
}

func (c *Cargo) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%d is not greater than 0", volume))
	}

	c.volume = volume
	return nil
}

func (c *Cargo) setCarrier(carrier *Carrier) error {
	if carrier == nil {
		c.carrier = nil
		return nil
	}
	if err := carrier.Validate(); err != nil {
		return err
	}

	cp := *carrier
	c.carrier = &cp
	return nil
}
