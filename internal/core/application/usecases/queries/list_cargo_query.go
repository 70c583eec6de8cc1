package queries

import (
	"errors"

	"harbor/internal/pkg/guard"
)

var ErrListCargoQueryIsNotConstructed = errors.New(
	"ListCargoQuery must be created via NewListCargoQuery constructor",
)

// ListCargoQuery retrieves one page of all cargo records.
type ListCargoQuery struct { //nolint:recvcheck //using for validation
	cursor string

	guard guard.ConstructorGuard
}

// NewListCargoQuery creates a query for the cargo listing.
func NewListCargoQuery(cursor string) ListCargoQuery {
	return ListCargoQuery{
		cursor: cursor,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCargoQuery) Validate() error {
	return q.guard.Validate(ErrListCargoQueryIsNotConstructed)
}

// Cursor returns the continuation token, empty for the first page.
func (q ListCargoQuery) Cursor() string {
	return q.cursor
}

// CargoListResponse is one page of the cargo listing read model.
type CargoListResponse struct {
	Cargo      []CargoResponse
	Total      int
	HasMore    bool
	NextCursor string
}
