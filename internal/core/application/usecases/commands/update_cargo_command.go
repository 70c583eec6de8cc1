package commands

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrUpdateCargoCommandIsNotConstructed = errors.New(
	"UpdateCargoCommand must be created via NewUpdateCargoCommand constructor",
)

// UpdateCargoCommand represents a request to change a cargo item's
// caller-supplied attributes. Nil fields are left untouched. The carrier
// pointer is never updatable this way; it only changes through assignment
// and release.
type UpdateCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID      kernel.ID
	item         *string
	creationDate *string
	volume       *int

	guard guard.ConstructorGuard
}

// NewUpdateCargoCommand creates a command to update a cargo item. At least
// one field must be provided.
func NewUpdateCargoCommand(
	cargoID kernel.ID,
	item, creationDate *string,
	volume *int,
) (UpdateCargoCommand, error) {
	command := UpdateCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCargoID(cargoID),
		command.setFields(item, creationDate, volume),
	); err != nil {
		return UpdateCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCargoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCargoCommandIsNotConstructed)
}

// CargoID returns the target cargo identifier.
func (c UpdateCargoCommand) CargoID() kernel.ID {
	return c.cargoID
}

// Item returns the new item description, or nil when untouched.
func (c UpdateCargoCommand) Item() *string {
	return c.item
}

// CreationDate returns the new creation date, or nil when untouched.
func (c UpdateCargoCommand) CreationDate() *string {
	return c.creationDate
}

// Volume returns the new volume, or nil when untouched.
func (c UpdateCargoCommand) Volume() *int {
	return c.volume
}

func (c *UpdateCargoCommand) setCargoID(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *UpdateCargoCommand) setFields(item, creationDate *string, volume *int) error {
	if item == nil && creationDate == nil && volume == nil {
		return ErrNoFieldsToUpdate
	}
	if item != nil && *item == "" {
		return ErrItemIsRequired
	}
	if volume != nil && *volume <= 0 {
		return ErrVolumeIsInvalid
	}

	c.item = item
	c.creationDate = creationDate
	c.volume = volume
	return nil
}
