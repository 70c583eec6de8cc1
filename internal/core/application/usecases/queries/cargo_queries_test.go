package queries_test

import (
	"context"
	"testing"

	"harbor/internal/core/application/usecases/queries"
	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/ports"
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

func TestGetCargoQueryHandler_Unloaded(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := queries.NewGetCargoQueryHandler(cargoRepo)

	c := storedCargo(t, 1, nil)
	query, err := queries.NewGetCargoQuery(c.ID())
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, c.ID(), response.ID)
	assert.Equal(t, "Timber", response.Item)
	assert.Equal(t, 40, response.Volume)
	assert.Nil(t, response.Carrier)
}

func TestGetCargoQueryHandler_Loaded(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := queries.NewGetCargoQueryHandler(cargoRepo)

	carrier, err := cargo.NewCarrier(mustID(t, 9), "Sea Witch")
	require.NoError(t, err)
	c := storedCargo(t, 1, &carrier)

	query, err := queries.NewGetCargoQuery(c.ID())
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, response.Carrier)
	assert.Equal(t, int64(9), response.Carrier.VesselID.Int64())
	assert.Equal(t, "Sea Witch", response.Carrier.VesselName)
}

func TestGetCargoQueryHandler_Missing(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := queries.NewGetCargoQueryHandler(cargoRepo)

	id := mustID(t, 404)
	query, err := queries.NewGetCargoQuery(id)
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("cargoId", "404")).Once()

	_, err = handler.Handle(ctx, query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListCargoQueryHandler_PageWithTotals(t *testing.T) {
	ctx := context.Background()
	cargoRepo := new(MockCargoRepository)
	handler := queries.NewListCargoQueryHandler(cargoRepo)

	query := queries.NewListCargoQuery("")

	page := ports.CargoPage{
		Cargo:    []*cargo.Cargo{storedCargo(t, 1, nil), storedCargo(t, 2, nil)},
		PageInfo: ports.PageInfo{Total: 9, HasMore: true, NextCursor: "Mg"},
	}
	cargoRepo.On("GetAll", ctx, ports.PageRequest{}).Return(page, nil).Once()

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, response.Cargo, 2)
	assert.Equal(t, 9, response.Total)
	assert.True(t, response.HasMore)
	assert.Equal(t, "Mg", response.NextCursor)
}

func TestListCargoQuery_ZeroValueFailsValidate(t *testing.T) {
	var zero queries.ListCargoQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrListCargoQueryIsNotConstructed)
}
