package commands

import (
	"errors"

	"harbor/internal/pkg/guard"
)

var ErrCreateCargoCommandIsNotConstructed = errors.New(
	"CreateCargoCommand must be created via NewCreateCargoCommand constructor",
)

// CreateCargoCommand represents a request to register a new cargo item.
// Cargo records are not owned by a principal, so no caller identity is
// carried. New cargo always starts unloaded.
type CreateCargoCommand struct { //nolint:recvcheck //using for validation
	item         string
	creationDate string
	volume       int

	guard guard.ConstructorGuard
}

// NewCreateCargoCommand creates a command to register a new cargo item.
// The creation date is an opaque caller-supplied string and may be empty.
func NewCreateCargoCommand(item, creationDate string, volume int) (CreateCargoCommand, error) {
	command := CreateCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItem(item),
		command.setCreationDate(creationDate),
		command.setVolume(volume),
	); err != nil {
		return CreateCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCargoCommand) Validate() error {
	return c.guard.Validate(ErrCreateCargoCommandIsNotConstructed)
}

// Item returns the cargo description from the command.
func (c CreateCargoCommand) Item() string {
	return c.item
}

// CreationDate returns the caller-supplied creation date from the command.
func (c CreateCargoCommand) CreationDate() string {
	return c.creationDate
}

// Volume returns the cargo volume from the command.
func (c CreateCargoCommand) Volume() int {
	return c.volume
}

func (c *CreateCargoCommand) setItem(item string) error {
	if item == "" {
		return ErrItemIsRequired
	}

	c.item = item
	return nil
}

func (c *CreateCargoCommand) setCreationDate(creationDate string) error {
	c.creationDate = creationDate
	return nil
}

func (c *CreateCargoCommand) setVolume(volume int) error {
	if volume <= 0 {
		return ErrVolumeIsInvalid
	}

	c.volume = volume
	return nil
}
