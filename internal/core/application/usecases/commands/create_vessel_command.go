package commands

import (
	"errors"

	"harbor/internal/pkg/guard"
)

var (
	ErrCreateVesselCommandIsNotConstructed = errors.New(
		"CreateVesselCommand must be created via NewCreateVesselCommand constructor",
	)
	ErrNameIsRequired   = errors.New("name is required")
	ErrTypeIsRequired   = errors.New("type is required")
	ErrLengthIsInvalid  = errors.New("length must be greater than 0")
	ErrOwnerIsRequired  = errors.New("owner is required")
	ErrItemIsRequired   = errors.New("item is required")
	ErrVolumeIsInvalid  = errors.New("volume must be greater than 0")
)

// CreateVesselCommand represents a request to register a new vessel for the
// authenticated principal. The identifier is assigned by the store when the
// handler persists the record.
//
// Example:
//
//	cmd, err := NewCreateVesselCommand("Sea Witch", "sloop", 28, principal)
//	if err != nil {
//	    return fmt.Errorf("invalid vessel data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create vessel: %w", err)
//	}
//	fmt.Printf("Created vessel %s", created.ID())
type CreateVesselCommand struct { //nolint:recvcheck //using for validation
	name       string
	vesselType string
	length     int
	owner      string

	guard guard.ConstructorGuard
}

// NewCreateVesselCommand creates a command to register a new vessel.
// Validates that name, type and owner are present and length is positive;
// the full naming rules are enforced by the vessel aggregate.
func NewCreateVesselCommand(name, vesselType string, length int, owner string) (CreateVesselCommand, error) {
	command := CreateVesselCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setVesselType(vesselType),
		command.setLength(length),
		command.setOwner(owner),
	); err != nil {
		return CreateVesselCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVesselCommand) Validate() error {
	return c.guard.Validate(ErrCreateVesselCommandIsNotConstructed)
}

// Name returns the vessel name from the command.
func (c CreateVesselCommand) Name() string {
	return c.name
}

// VesselType returns the vessel type from the command.
func (c CreateVesselCommand) VesselType() string {
	return c.vesselType
}

// Length returns the vessel length from the command.
func (c CreateVesselCommand) Length() int {
	return c.length
}

// Owner returns the owning principal from the command.
func (c CreateVesselCommand) Owner() string {
	return c.owner
}

func (c *CreateVesselCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateVesselCommand) setVesselType(vesselType string) error {
	if vesselType == "" {
		return ErrTypeIsRequired
	}

	c.vesselType = vesselType
	return nil
}

func (c *CreateVesselCommand) setLength(length int) error {
	if length <= 0 {
		return ErrLengthIsInvalid
	}

	c.length = length
	return nil
}

func (c *CreateVesselCommand) setOwner(owner string) error {
	if owner == "" {
		return ErrOwnerIsRequired
	}

	c.owner = owner
	return nil
}
