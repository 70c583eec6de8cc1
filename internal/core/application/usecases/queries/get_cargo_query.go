package queries

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var ErrGetCargoQueryIsNotConstructed = errors.New(
	"GetCargoQuery must be created via NewGetCargoQuery constructor",
)

// GetCargoQuery retrieves a single cargo record. Cargo is not owned, so no
// caller identity is carried.
type GetCargoQuery struct { //nolint:recvcheck //using for validation
	cargoID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCargoQuery creates a query for one cargo record.
func NewGetCargoQuery(cargoID kernel.ID) (GetCargoQuery, error) {
	query := GetCargoQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCargoID(cargoID); err != nil {
		return GetCargoQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCargoQuery) Validate() error {
	return q.guard.Validate(ErrGetCargoQueryIsNotConstructed)
}

// CargoID returns the requested cargo identifier.
func (q GetCargoQuery) CargoID() kernel.ID {
	return q.cargoID
}

func (q *GetCargoQuery) setCargoID(cargoID kernel.ID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	q.cargoID = cargoID
	return nil
}

// CarrierResponse is the embedded carrier reference of a loaded cargo.
type CarrierResponse struct {
	VesselID   kernel.ID
	VesselName string
}

// CargoResponse is the cargo read model. Carrier is nil while the item is
// unloaded.
type CargoResponse struct {
	ID           kernel.ID
	Item         string
	CreationDate string
	Volume       int
	Carrier      *CarrierResponse
}
