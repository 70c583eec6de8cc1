package queries

import (
	"errors"

	"harbor/internal/pkg/guard"
)

var ErrListVesselsQueryIsNotConstructed = errors.New(
	"ListVesselsQuery must be created via NewListVesselsQuery constructor",
)

// ListVesselsQuery retrieves one page of the principal's vessels. The cursor
// is the opaque continuation token from a previous page; empty means the
// first page.
type ListVesselsQuery struct { //nolint:recvcheck //using for validation
	principal string
	cursor    string

	guard guard.ConstructorGuard
}

// NewListVesselsQuery creates a query for the principal's vessel listing.
func NewListVesselsQuery(principal, cursor string) (ListVesselsQuery, error) {
	query := ListVesselsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPrincipal(principal); err != nil {
		return ListVesselsQuery{}, err
	}
	query.cursor = cursor

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVesselsQuery) Validate() error {
	return q.guard.Validate(ErrListVesselsQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q ListVesselsQuery) Principal() string {
	return q.principal
}

// Cursor returns the continuation token, empty for the first page.
func (q ListVesselsQuery) Cursor() string {
	return q.cursor
}

func (q *ListVesselsQuery) setPrincipal(principal string) error {
	if principal == "" {
		return ErrPrincipalIsRequired
	}

	q.principal = principal
	return nil
}

// VesselListResponse is one page of the vessel listing read model.
type VesselListResponse struct {
	Vessels    []VesselResponse
	Total      int
	HasMore    bool
	NextCursor string
}
