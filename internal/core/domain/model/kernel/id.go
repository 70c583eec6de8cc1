package kernel

import (
	"fmt"
	"strconv"

	"harbor/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized
// through one of the constructor functions. It is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is a value object that represents the numeric identifier the document
// store assigns to a record on first save. The zero value is invalid: an
// aggregate without an ID has simply not been persisted yet.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle invalid identifier
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a store-assigned numeric value.
// Values must be positive; the store never allocates zero or negative ids.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// ParseID creates an ID from its decimal string representation, as carried in
// request paths. Malformed or non-positive input yields a value-is-invalid error.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Validate reports whether the ID was created through a constructor.
// The zero value fails validation.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// IsZero reports whether the ID is the zero value, i.e. no identifier has
// been assigned by the store yet.
func (id ID) IsZero() bool {
	return id.value == 0
}

// IsEqual compares two IDs by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Int64 returns the raw numeric value.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation used in URLs and log output.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}
