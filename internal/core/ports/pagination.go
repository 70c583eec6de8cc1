package ports

// PageRequest identifies the position of a listing scan. An empty cursor
// means "start from the beginning"; any other value must be a token produced
// by a previous page of the same listing.
type PageRequest struct {
	Cursor string
}

// PageInfo describes the pagination outcome of a listing: the total number of
// records matching the filter (computed by an unbounded pre-scan), whether
// more results remain beyond this page, and the opaque continuation token for
// the next page when they do.
type PageInfo struct {
	Total      int
	HasMore    bool
	NextCursor string
}
