package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var (
	ErrUpdateVesselCommandIsNotConstructed = errors.New(
		"UpdateVesselCommand must be created via NewUpdateVesselCommand constructor",
	)
	ErrPrincipalIsRequired = errors.New("principal is required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be updated")
)

// UpdateVesselCommand represents a request to change a vessel's
// caller-supplied attributes. Nil fields are left untouched, so a partial
// update sets only what it names and a full replacement sets all three.
// Ownership and the cargo reference list are never updatable this way.
type UpdateVesselCommand struct { //nolint:recvcheck //using for validation
	vesselID   kernel.ID
	principal  string
	name       *string
	vesselType *string
	length     *int

	guard guard.ConstructorGuard
}

// NewUpdateVesselCommand creates a command to update a vessel on behalf of
// the given principal. At least one field must be provided.
func NewUpdateVesselCommand(
	vesselID kernel.ID,
	principal string,
	name, vesselType *string,
	length *int,
) (UpdateVesselCommand, error) {
	command := UpdateVesselCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setPrincipal(principal),
		command.setFields(name, vesselType, length),
	); err != nil {
		return UpdateVesselCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVesselCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVesselCommandIsNotConstructed)
}

// VesselID returns the target vessel identifier.
func (c UpdateVesselCommand) VesselID() kernel.ID {
	return c.vesselID
}

// Principal returns the authenticated caller.
func (c UpdateVesselCommand) Principal() string {
	return c.principal
}

// Name returns the new name, or nil when the name is untouched.
func (c UpdateVesselCommand) Name() *string {
	return c.name
}

// VesselType returns the new type, or nil when the type is untouched.
func (c UpdateVesselCommand) VesselType() *string {
	return c.vesselType
}

// Length returns the new length, or nil when the length is untouched.
func (c UpdateVesselCommand) Length() *int {
	return c.length
}

func (c *UpdateVesselCommand) setVesselID(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *UpdateVesselCommand) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	c.principal = principal
	return nil
}

func (c *UpdateVesselCommand) setFields(name, vesselType *string, length *int) error {
	if name == nil && vesselType == nil && length == nil {
		return ErrNoFieldsToUpdate
	}
	if name != nil && *name == "" {
		return ErrNameIsRequired
	}
	if vesselType != nil && *vesselType == "" {
		return ErrTypeIsRequired
	}
	if length != nil && *length <= 0 {
		return ErrLengthIsInvalid
	}

	c.name = name
	c.vesselType = vesselType
	c.length = length
	return nil
}
