package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrDeleteVesselCommandIsNotConstructed = errors.New(
	"DeleteVesselCommand must be created via NewDeleteVesselCommand constructor",
)

// DeleteVesselCommand represents a request to remove a vessel. Cargo aboard
// the vessel is not deleted with it; the handler clears each cargo's carrier
// before the vessel record goes away.
type DeleteVesselCommand struct { //nolint:recvcheck //using for validation
	vesselID  kernel.ID
	principal string

	guard guard.ConstructorGuard
}

// NewDeleteVesselCommand creates a command to delete a vessel on behalf of
// the given principal.
func NewDeleteVesselCommand(vesselID kernel.ID, principal string) (DeleteVesselCommand, error) {
	command := DeleteVesselCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setPrincipal(principal),
	); err != nil {
		return DeleteVesselCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVesselCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVesselCommandIsNotConstructed)
}

// VesselID returns the target vessel identifier.
func (c DeleteVesselCommand) VesselID() kernel.ID {
	return c.vesselID
}

// Principal returns the authenticated caller.
func (c DeleteVesselCommand) Principal() string {
	return c.principal
}

func (c *DeleteVesselCommand) setVesselID(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *DeleteVesselCommand) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	c.principal = principal
	return nil
}
