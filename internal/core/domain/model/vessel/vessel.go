package vessel

import (
	"errors"
	"fmt"
	"regexp"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/errs"
	"harbor/internal/pkg/guard"
)

const (
	// nameMinLength and nameMaxLength bound the vessel name.
	nameMinLength = 1
	nameMaxLength = 15
)

// namePattern accepts alphanumeric words separated by single internal spaces.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]+(?: [a-zA-Z0-9]+)*$`)

// Domain errors for vessel operations.
var (
	// ErrNameIsRequired is returned when attempting to create a vessel without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameIsInvalid is returned when a vessel name violates the charset rule.
	ErrNameIsInvalid = errs.NewValueIsInvalidError("name")
	// ErrOwnerIsRequired is returned when attempting to create a vessel without an owner.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner")
	// ErrVesselIsNotConstructed is returned when using an improperly initialized Vessel.
	ErrVesselIsNotConstructed = errors.New("Vessel must be created via NewVessel or RestoreVessel constructor")
	// ErrIDAlreadyAssigned is returned when assigning an identifier to a vessel that already has one.
	ErrIDAlreadyAssigned = errors.New("vessel already has a store-assigned id")
)

// Vessel represents a carrier record in the system.
// It is an aggregate root that manages vessel identity, caller-supplied
// attributes and the vessel-side half of the vessel-cargo association.
//
// Business rules:
//   - Name is 1-15 characters, alphanumeric words with single internal spaces
//   - Length must be positive; type is an opaque caller-supplied attribute
//   - Owner is the creating principal and never changes
//   - The id is assigned by the document store on first save and is immutable
//   - Cargo references are unique and keep their insertion (assignment) order
//
// The cargo reference list must only be mutated through the relationship
// coordinator so the cargo-side carrier pointer stays in step.
type Vessel struct {
	// id is the store-assigned identifier; zero until first persisted
	id kernel.ID
	// name is unique across vessels (advisory, checked at creation and rename)
	name string
	// vesselType is an opaque caller-supplied attribute
	vesselType string
	// length is a caller-supplied positive dimension
	length int
	// owner is the principal that created the vessel
	owner string
	// cargoRefs holds the ids of carried cargo items in assignment order
	cargoRefs []kernel.ID
	// guard ensures the vessel was properly constructed
	guard guard.ConstructorGuard
}

// NewVessel creates a Vessel that has not been persisted yet: it carries no
// identifier and an empty cargo reference list. The repository assigns the id
// on first save via AssignID.
//
// Validation errors for the individual fields are aggregated with errors.Join
// so the caller sees every violation at once.
func NewVessel(name, vesselType string, length int, owner string) (*Vessel, error) {
	v := &Vessel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setName(name),
		v.setVesselType(vesselType),
		v.setLength(length),
		v.setOwner(owner),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVessel reconstructs a Vessel aggregate from its persisted document,
// including the store-assigned id and the embedded cargo reference list.
// The restored vessel behaves identically to one built through normal domain
// operations.
func RestoreVessel(
	id kernel.ID,
	name, vesselType string,
	length int,
	owner string,
	cargoRefs []kernel.ID,
) (*Vessel, error) {
	v := &Vessel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setVesselType(vesselType),
		v.setLength(length),
		v.setOwner(owner),
		v.setCargoRefs(cargoRefs),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks that the Vessel was built via one of its constructors.
// The zero value is invalid.
func (v *Vessel) Validate() error {
	if v == nil {
		return ErrVesselIsNotConstructed
	}
	return v.guard.Validate(ErrVesselIsNotConstructed)
}

// IsEqual compares two vessels by their store-assigned identifiers.
func (v *Vessel) IsEqual(other *Vessel) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier. It is the zero ID until the
// vessel has been persisted.
func (v *Vessel) ID() kernel.ID {
	return v.id
}

// Name returns the vessel name.
func (v *Vessel) Name() string {
	return v.name
}

// VesselType returns the opaque caller-supplied type attribute.
func (v *Vessel) VesselType() string {
	return v.vesselType
}

// Length returns the caller-supplied length attribute.
func (v *Vessel) Length() int {
	return v.length
}

// Owner returns the principal that created the vessel.
func (v *Vessel) Owner() string {
	return v.owner
}

// IsOwnedBy reports whether the given principal owns the vessel.
// Principals are opaque strings compared for equality.
func (v *Vessel) IsOwnedBy(principal string) bool {
	return v.owner == principal
}

// CargoRefs returns the ids of carried cargo items in assignment order.
// The returned slice is a copy to prevent external modification.
func (v *Vessel) CargoRefs() []kernel.ID {
	out := make([]kernel.ID, len(v.cargoRefs))
	copy(out, v.cargoRefs)
	return out
}

// AssignID records the identifier the document store allocated on first save.
// It may be called exactly once; the id is immutable afterwards.
func (v *Vessel) AssignID(id kernel.ID) error {
	if !v.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	return v.setID(id)
}

// Rename changes the vessel name, applying the same format rules as creation.
// Name uniqueness across vessels is advisory and checked by the caller before
// renaming, since the store offers no uniqueness constraint.
func (v *Vessel) Rename(name string) error {
	return v.setName(name)
}

// ChangeVesselType replaces the opaque type attribute.
func (v *Vessel) ChangeVesselType(vesselType string) error {
	return v.setVesselType(vesselType)
}

// ChangeLength replaces the length attribute. Length must stay positive.
func (v *Vessel) ChangeLength(length int) error {
	return v.setLength(length)
}

// HasCargoRef reports whether the vessel currently references the cargo item.
func (v *Vessel) HasCargoRef(cargoID kernel.ID) bool {
	for _, ref := range v.cargoRefs {
		if ref.IsEqual(cargoID) {
			return true
		}
	}
	return false
}

// AddCargoRef appends a cargo reference, preserving assignment order.
// Adding an id that is already referenced is a conflict: the caller must
// release the cargo item first.
func (v *Vessel) AddCargoRef(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}
	if v.HasCargoRef(cargoID) {
		return errs.NewObjectConflictErrorWithCause("cargoId", cargoID.String(),
			fmt.Errorf("cargo is already referenced by vessel %s", v.id))
	}

	v.cargoRefs = append(v.cargoRefs, cargoID)
	return nil
}

// RemoveCargoRef removes the reference to the given cargo item.
// Removing an id that is not referenced yields a not-found error, which the
// release operation surfaces to the caller.
func (v *Vessel) RemoveCargoRef(cargoID kernel.ID) error {
	for i, ref := range v.cargoRefs {
		if ref.IsEqual(cargoID) {
			v.cargoRefs = append(v.cargoRefs[:i], v.cargoRefs[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cargoId", cargoID.String())
}

// setID sets the vessel's identifier with validation.
func (v *Vessel) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setName validates the name format: bounded length, alphanumeric words with
// single internal spaces.
func (v *Vessel) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name", name, nameMinLength, nameMaxLength)
	}
	if !namePattern.MatchString(name) {
		return ErrNameIsInvalid
	}

	v.name = name
	return nil
}

// setVesselType stores the opaque type attribute. Empty is allowed: the core
// does not validate caller-supplied attributes beyond presence rules.
func (v *Vessel) setVesselType(vesselType string) error {
	v.vesselType = vesselType
	return nil
}

// setLength validates that the caller-supplied length is positive.
func (v *Vessel) setLength(length int) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length",
			fmt.Errorf("%d is not greater than 0", length))
	}

	v.length = length
	return nil
}

// setOwner stores the creating principal. Owner is required and immutable.
func (v *Vessel) setOwner(owner string) error {
	if owner == "" {
		return ErrOwnerIsRequired
	}

	v.owner = owner
	return nil
}

// setCargoRefs restores the embedded reference list from persistence.
// All ids must be valid; duplicates are rejected to preserve the at-most-once
// invariant of the association.
func (v *Vessel) setCargoRefs(cargoRefs []kernel.ID) error {
	seen := make(map[int64]struct{}, len(cargoRefs))
	for _, ref := range cargoRefs {
		if err := ref.Validate(); err != nil {
			return err
		}
		if _, dup := seen[ref.Int64()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("cargoRefs",
				fmt.Errorf("duplicate cargo reference %s", ref))
		}
		seen[ref.Int64()] = struct{}{}
	}

	v.cargoRefs = make([]kernel.ID, len(cargoRefs))
	copy(v.cargoRefs, cargoRefs)
	return nil
}
