package commands

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/ports"
)

// UpdateCargoCommandHandler handles cargo attribute updates. The carrier
// pointer of a loaded cargo survives the update untouched.
type UpdateCargoCommandHandler struct {
	cargo ports.CargoRepository
}

// NewUpdateCargoCommandHandler creates a handler for cargo updates.
func NewUpdateCargoCommandHandler(cargoRepo ports.CargoRepository) UpdateCargoCommandHandler {
	return UpdateCargoCommandHandler{
		cargo: cargoRepo,
	}
}

// Handle processes the cargo update command and returns the updated
// aggregate.
func (h UpdateCargoCommandHandler) Handle(ctx context.Context, cmd UpdateCargoCommand) (*cargo.Cargo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.cargo.Get(ctx, cmd.CargoID())
	if err != nil {
		return nil, err
	}

	if item := cmd.Item(); item != nil {
		if err := aggregate.ChangeItem(*item); err != nil {
			return nil, err
		}
	}
	if creationDate := cmd.CreationDate(); creationDate != nil {
		if err := aggregate.ChangeCreationDate(*creationDate); err != nil {
			return nil, err
		}
	}
	if volume := cmd.Volume(); volume != nil {
		if err := aggregate.ChangeVolume(*volume); err != nil {
			return nil, err
		}
	}

	if err := h.cargo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
