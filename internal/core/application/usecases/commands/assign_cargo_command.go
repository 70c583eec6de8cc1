package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrAssignCargoCommandIsNotConstructed = errors.New(
	"AssignCargoCommand must be created via NewAssignCargoCommand constructor",
)

// AssignCargoCommand represents a request to place a cargo item aboard a
// vessel on behalf of the vessel's owner.
type AssignCargoCommand struct { //nolint:recvcheck //using for validation
	vesselID  kernel.ID
	cargoID   kernel.ID
	principal string

	guard guard.ConstructorGuard
}

// NewAssignCargoCommand creates a command to assign cargo to a vessel.
func NewAssignCargoCommand(vesselID, cargoID kernel.ID, principal string) (AssignCargoCommand, error) {
	command := AssignCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setCargoID(cargoID),
		command.setPrincipal(principal),
	); err != nil {
		return AssignCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCargoCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoCommandIsNotConstructed)
}

// VesselID returns the target vessel identifier.
func (c AssignCargoCommand) VesselID() kernel.ID {
	return c.vesselID
}

// CargoID returns the cargo identifier to assign.
func (c AssignCargoCommand) CargoID() kernel.ID {
	return c.cargoID
}

// Principal returns the authenticated caller.
func (c AssignCargoCommand) Principal() string {
	return c.principal
}

func (c *AssignCargoCommand) setVesselID(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *AssignCargoCommand) setCargoID(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *AssignCargoCommand) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	c.principal = principal
	return nil
}
