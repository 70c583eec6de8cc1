package commands_test

import (
	"context"
	"testing"

	"harbor/internal/core/application/usecases/commands"
	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedCargo(t *testing.T, id int64, carrier *cargo.Carrier) *cargo.Cargo {
	t.Helper()
	c, err := cargo.RestoreCargo(mustID(t, id), "Timber", "2026-08-01", 40, carrier)
	require.NoError(t, err)
	return c
}

func TestNewUpdateCargoCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateCargoCommand(mustID(t, 1), nil, nil, nil)
	assert.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)

	_, err = commands.NewUpdateCargoCommand(mustID(t, 1), strPtr(""), nil, nil)
	assert.ErrorIs(t, err, commands.ErrItemIsRequired)

	_, err = commands.NewUpdateCargoCommand(mustID(t, 1), nil, nil, intPtr(-1))
	assert.ErrorIs(t, err, commands.ErrVolumeIsInvalid)

	var zero commands.UpdateCargoCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrUpdateCargoCommandIsNotConstructed)
}

func TestUpdateCargoCommandHandler_PartialUpdatePreservesCarrier(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := commands.NewUpdateCargoCommandHandler(cargoRepo)

	vesselID := mustID(t, 9)
	carrier, err := cargo.NewCarrier(vesselID, "Sea Witch")
	require.NoError(t, err)
	existing := storedCargo(t, 1, &carrier)

	cmd, err := commands.NewUpdateCargoCommand(existing.ID(), strPtr("Coal"), nil, intPtr(12))
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	cargoRepo.On("Update", ctx, existing).Return(nil).Once()

	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Coal", updated.Item())
	assert.Equal(t, 12, updated.Volume())
	assert.Equal(t, "2026-08-01", updated.CreationDate())
	require.NotNil(t, updated.Carrier())
	assert.Equal(t, vesselID, updated.Carrier().VesselID())

	cargoRepo.AssertExpectations(t)
}

func TestUpdateCargoCommandHandler_MissingCargo(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := commands.NewUpdateCargoCommandHandler(cargoRepo)

	id := mustID(t, 404)
	cmd, err := commands.NewUpdateCargoCommand(id, strPtr("Coal"), nil, nil)
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("cargoId", "404")).Once()

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
