package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrReleaseCargoCommandIsNotConstructed = errors.New(
	"ReleaseCargoCommand must be created via NewReleaseCargoCommand constructor",
)

// ReleaseCargoCommand represents a request to take a cargo item off a vessel
// on behalf of the vessel's owner.
type ReleaseCargoCommand struct { //nolint:recvcheck //using for validation
	vesselID  kernel.ID
	cargoID   kernel.ID
	principal string

	guard guard.ConstructorGuard
}

// NewReleaseCargoCommand creates a command to release cargo from a vessel.
func NewReleaseCargoCommand(vesselID, cargoID kernel.ID, principal string) (ReleaseCargoCommand, error) {
	command := ReleaseCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setCargoID(cargoID),
		command.setPrincipal(principal),
	); err != nil {
		return ReleaseCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseCargoCommand) Validate() error {
	return c.guard.Validate(ErrReleaseCargoCommandIsNotConstructed)
}

// VesselID returns the target vessel identifier.
func (c ReleaseCargoCommand) VesselID() kernel.ID {
	return c.vesselID
}

// CargoID returns the cargo identifier to release.
func (c ReleaseCargoCommand) CargoID() kernel.ID {
	return c.cargoID
}

// Principal returns the authenticated caller.
func (c ReleaseCargoCommand) Principal() string {
	return c.principal
}

func (c *ReleaseCargoCommand) setVesselID(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *ReleaseCargoCommand) setCargoID(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *ReleaseCargoCommand) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	c.principal = principal
	return nil
}
