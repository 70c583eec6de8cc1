package queries_test

import (
	"context"

	"harbor/internal/core/domain/model/cargo"
	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVesselRepository struct{ mock.Mock }

func (m *MockVesselRepository) Add(ctx context.Context, v *vessel.Vessel) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVesselRepository) Update(ctx context.Context, v *vessel.Vessel) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVesselRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVesselRepository) Get(ctx context.Context, id kernel.ID) (*vessel.Vessel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vessel.Vessel), args.Error(1)
}

func (m *MockVesselRepository) GetByOwner(ctx context.Context, owner string, page ports.PageRequest) (ports.VesselPage, error) {
	args := m.Called(ctx, owner, page)
	return args.Get(0).(ports.VesselPage), args.Error(1)
}

func (m *MockVesselRepository) GetAll(ctx context.Context, page ports.PageRequest) (ports.VesselPage, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(ports.VesselPage), args.Error(1)
}

func (m *MockVesselRepository) IsDuplicateName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, id kernel.ID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) GetAll(ctx context.Context, page ports.PageRequest) (ports.CargoPage, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(ports.CargoPage), args.Error(1)
}

