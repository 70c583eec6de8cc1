package docstore

import (
	"encoding/base64"
	"strconv"

	"harbor/internal/pkg/errs"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 5

// EncodeCursor produces the opaque continuation token for a page whose last
// returned document had the given identifier.
func EncodeCursor(lastID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(lastID, 10)))
}

// DecodeCursor parses a continuation token back into the identifier of the
// last document already returned. An empty token decodes to zero, meaning the
// scan starts from the beginning.
func DecodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("cursor", err)
	}

	lastID, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || lastID <= 0 {
		return 0, errs.NewValueIsInvalidError("cursor")
	}

	return lastID, nil
}
