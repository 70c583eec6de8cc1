// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models assembled from the repository ports; the
// document store is schemaless and driver-pluggable, so reads go through the
// same ports as writes instead of raw SQL.
package queries

import (
	"errors"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/pkg/guard"
)

var (
	ErrGetVesselQueryIsNotConstructed = errors.New(
		"GetVesselQuery must be created via NewGetVesselQuery constructor",
	)
	ErrPrincipalIsRequired = errors.New("principal is required")
)

// GetVesselQuery retrieves a single vessel on behalf of its owner.
type GetVesselQuery struct { //nolint:recvcheck //using for validation
	vesselID  kernel.ID
	principal string

	guard guard.ConstructorGuard
}

// NewGetVesselQuery creates a query for one vessel.
func NewGetVesselQuery(vesselID kernel.ID, principal string) (GetVesselQuery, error) {
	query := GetVesselQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setVesselID(vesselID),
		query.setPrincipal(principal),
	); err != nil {
		return GetVesselQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVesselQuery) Validate() error {
	return q.guard.Validate(ErrGetVesselQueryIsNotConstructed)
}

// VesselID returns the requested vessel identifier.
func (q GetVesselQuery) VesselID() kernel.ID {
	return q.vesselID
}

// Principal returns the authenticated caller.
func (q GetVesselQuery) Principal() string {
	return q.principal
}

func (q *GetVesselQuery) setVesselID(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	q.vesselID = vesselID
	return nil
}

func (q *GetVesselQuery) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	q.principal = principal
	return nil
}

// VesselResponse is the vessel read model.
type VesselResponse struct {
	ID       kernel.ID
	Name     string
	Type     string
	Length   int
	Owner    string
	CargoIDs []kernel.ID
}
