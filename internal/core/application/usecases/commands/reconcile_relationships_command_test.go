package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"harbor/internal/core/application/usecases/commands"
	"harbor/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileRelationshipsCommand_Validate(t *testing.T) {
	cmd := commands.NewReconcileRelationshipsCommand()
	assert.NoError(t, cmd.Validate())

	var zero commands.ReconcileRelationshipsCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrReconcileRelationshipsCommandIsNotConstructed)
}

func TestReconcileRelationshipsCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	vessels := &MockVesselRepository{}
	cargoRepo := &MockCargoRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewReconcileRelationshipsCommandHandler(vessels, cargoRepo, logger)

	var zero commands.ReconcileRelationshipsCommand
	err := handler.Handle(context.Background(), zero)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReconcileRelationshipsCommandIsNotConstructed)
	vessels.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
}

func TestReconcileRelationshipsCommandHandler_SurfacesScanFailure(t *testing.T) {
	vessels := &MockVesselRepository{}
	cargoRepo := &MockCargoRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewReconcileRelationshipsCommandHandler(vessels, cargoRepo, logger)

	scanErr := errors.New("store unavailable")
	vessels.On("GetAll", mock.Anything, ports.PageRequest{}).Return(ports.VesselPage{}, scanErr)

	err := handler.Handle(context.Background(), commands.NewReconcileRelationshipsCommand())

	require.Error(t, err)
	assert.ErrorIs(t, err, scanErr)
	cargoRepo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
}

func TestReconcileRelationshipsCommandHandler_EmptyStoreIsANoop(t *testing.T) {
	vessels := &MockVesselRepository{}
	cargoRepo := &MockCargoRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewReconcileRelationshipsCommandHandler(vessels, cargoRepo, logger)

	vessels.On("GetAll", mock.Anything, ports.PageRequest{}).Return(ports.VesselPage{}, nil)
	cargoRepo.On("GetAll", mock.Anything, ports.PageRequest{}).Return(ports.CargoPage{}, nil)

	require.NoError(t, handler.Handle(context.Background(), commands.NewReconcileRelationshipsCommand()))
	vessels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	cargoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
