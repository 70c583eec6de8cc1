package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrDeleteCargoCommandIsNotConstructed = errors.New(
	"DeleteCargoCommand must be created via NewDeleteCargoCommand constructor",
)

// DeleteCargoCommand represents a request to remove a cargo item. Loaded
// cargo is removed from its carrier's reference list before the record goes
// away.
type DeleteCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteCargoCommand creates a command to delete a cargo item.
func NewDeleteCargoCommand(cargoID kernel.ID) (DeleteCargoCommand, error) {
	command := DeleteCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCargoID(cargoID); err != nil {
		return DeleteCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCargoCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCargoCommandIsNotConstructed)
}

// CargoID returns the target cargo identifier.
func (c DeleteCargoCommand) CargoID() kernel.ID {
	return c.cargoID
}

func (c *DeleteCargoCommand) setCargoID(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}
