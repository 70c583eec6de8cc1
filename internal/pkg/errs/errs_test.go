package errs_test

import (
	"errors"
	"testing"

	"harbor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vesselId", "123")

		assert.Equal(t, "vesselId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("vesselId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: vesselId, ID is: 123 (cause: store connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("numeric_ids_are_formatted", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("cargoId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestObjectConflictError(t *testing.T) {
	t.Run("NewObjectConflictError", func(t *testing.T) {
		err := errs.NewObjectConflictError("name", "Orca")

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, "Orca", err.Value)
		assert.Equal(t, "object conflict: Orca is name", err.Error())
		assert.Equal(t, errs.ErrObjectConflict, err.Unwrap())
	})

	t.Run("NewObjectConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("already loaded on vessel 7")
		err := errs.NewObjectConflictErrorWithCause("cargoId", 42, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object conflict: 42 is cargoId (cause: already loaded on vessel 7)", err.Error())
	})
}

func TestAccessForbiddenError(t *testing.T) {
	t.Run("NewAccessForbiddenError", func(t *testing.T) {
		err := errs.NewAccessForbiddenError("vesselId", 9)

		assert.Equal(t, "access forbidden: 9", err.Error())
		assert.Equal(t, errs.ErrAccessForbidden, err.Unwrap())
	})

	t.Run("NewAccessForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("owner mismatch")
		err := errs.NewAccessForbiddenErrorWithCause("vesselId", 9, cause)

		assert.Equal(t, "access forbidden: param is: vesselId, ID is: 9 (cause: owner mismatch)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: name", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: name (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "a very long vessel name", 1, 15)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 15, err.Max)
		assert.Equal(t,
			"value is invalid: a very long vessel name is name, min value is 1, max value is 15",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize_flattens_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("owner")

		assert.Equal(t, "value is required: owner", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("owner", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: owner (cause: missing required field)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error_messages_match_expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object conflict", errs.ErrObjectConflict.Error())
		assert.Equal(t, "access forbidden", errs.ErrAccessForbidden.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors_is_works_with_custom_errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("vesselId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewObjectConflictError("name", "Orca"), errs.ErrObjectConflict)
		require.ErrorIs(t, errs.NewAccessForbiddenError("vesselId", 9), errs.ErrAccessForbidden)
		require.ErrorIs(t, errs.NewValueIsInvalidError("name"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("owner"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("length", -1, 1, 100), errs.ErrValueIsOutOfRange)
	})
}
