package commands_test

import (
	"context"
	"testing"

	"harbor/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCargoCommand(t *testing.T) {
	cmd, err := commands.NewCreateCargoCommand("Timber", "2026-08-01", 40)
	require.NoError(t, err)

	assert.Equal(t, "Timber", cmd.Item())
	assert.Equal(t, "2026-08-01", cmd.CreationDate())
	assert.Equal(t, 40, cmd.Volume())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCargoCommand_EmptyCreationDateAllowed(t *testing.T) {
	cmd, err := commands.NewCreateCargoCommand("Timber", "", 40)
	require.NoError(t, err)
	assert.Empty(t, cmd.CreationDate())
}

func TestNewCreateCargoCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		volume   int
		expected error
	}{
		{"empty item", "", 40, commands.ErrItemIsRequired},
		{"zero volume", "Timber", 0, commands.ErrVolumeIsInvalid},
		{"negative volume", "Timber", -5, commands.ErrVolumeIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateCargoCommand(tt.item, "2026-08-01", tt.volume)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCreateCargoCommandHandler_Success(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := commands.NewCreateCargoCommandHandler(cargoRepo)

	cmd, err := commands.NewCreateCargoCommand("Timber", "2026-08-01", 40)
	require.NoError(t, err)

	cargoRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

	created, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Timber", created.Item())
	assert.False(t, created.IsLoaded())

	cargoRepo.AssertExpectations(t)
}

func TestCreateCargoCommandHandler_UnconstructedCommand(t *testing.T) {
	cargoRepo := new(MockCargoRepository)
	handler := commands.NewCreateCargoCommandHandler(cargoRepo)

	var cmd commands.CreateCargoCommand
	_, err := handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, commands.ErrCreateCargoCommandIsNotConstructed)
	cargoRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
