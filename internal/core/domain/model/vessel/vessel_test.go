package vessel_test

import (
	"testing"

	"harbor/internal/core/domain/model/kernel"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func TestNewVessel(t *testing.T) {
	t.Run("valid_vessel", func(t *testing.T) {
		v, err := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsZero())
		assert.Equal(t, "Orca", v.Name())
		assert.Equal(t, "trawler", v.VesselType())
		assert.Equal(t, 28, v.Length())
		assert.Equal(t, "auth0|alice", v.Owner())
		assert.Empty(t, v.CargoRefs())
	})

	t.Run("name_with_internal_spaces_and_digits", func(t *testing.T) {
		v, err := vessel.NewVessel("Sea Witch 2", "sloop", 12, "auth0|alice")

		require.NoError(t, err)
		assert.Equal(t, "Sea Witch 2", v.Name())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("", "sloop", 12, "auth0|alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("name_longer_than_15_chars_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("A Very Long Name Indeed", "sloop", 12, "auth0|alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("name_with_punctuation_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("Orca!", "sloop", 12, "auth0|alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("name_with_double_space_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("Sea  Witch", "sloop", 12, "auth0|alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_positive_length_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("Orca", "sloop", 0, "auth0|alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_owner_is_rejected", func(t *testing.T) {
		_, err := vessel.NewVessel("Orca", "sloop", 12, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("all_violations_are_joined", func(t *testing.T) {
		_, err := vessel.NewVessel("", "sloop", -1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreVessel(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		refs := []kernel.ID{mustID(t, 7), mustID(t, 9)}

		v, err := vessel.RestoreVessel(mustID(t, 3), "Orca", "trawler", 28, "auth0|alice", refs)

		require.NoError(t, err)
		assert.Equal(t, int64(3), v.ID().Int64())
		assert.Equal(t, refs, v.CargoRefs())
	})

	t.Run("duplicate_cargo_refs_are_rejected", func(t *testing.T) {
		refs := []kernel.ID{mustID(t, 7), mustID(t, 7)}

		_, err := vessel.RestoreVessel(mustID(t, 3), "Orca", "trawler", 28, "auth0|alice", refs)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_id_is_rejected", func(t *testing.T) {
		var zero kernel.ID

		_, err := vessel.RestoreVessel(zero, "Orca", "trawler", 28, "auth0|alice", nil)

		require.Error(t, err)
	})
}

func TestVessel_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var v vessel.Vessel

		err := v.Validate()

		require.Error(t, err)
		assert.Equal(t, vessel.ErrVesselIsNotConstructed, err)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var v *vessel.Vessel

		require.Error(t, v.Validate())
	})
}

func TestVessel_AssignID(t *testing.T) {
	t.Run("assigns_once", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		require.NoError(t, v.AssignID(mustID(t, 5)))
		assert.Equal(t, int64(5), v.ID().Int64())
	})

	t.Run("second_assignment_is_rejected", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")
		require.NoError(t, v.AssignID(mustID(t, 5)))

		err := v.AssignID(mustID(t, 6))

		require.Error(t, err)
		assert.Equal(t, vessel.ErrIDAlreadyAssigned, err)
		assert.Equal(t, int64(5), v.ID().Int64())
	})
}

func TestVessel_CargoRefs(t *testing.T) {
	t.Run("add_preserves_assignment_order", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		require.NoError(t, v.AddCargoRef(mustID(t, 2)))
		require.NoError(t, v.AddCargoRef(mustID(t, 1)))
		require.NoError(t, v.AddCargoRef(mustID(t, 3)))

		refs := v.CargoRefs()
		require.Len(t, refs, 3)
		assert.Equal(t, int64(2), refs[0].Int64())
		assert.Equal(t, int64(1), refs[1].Int64())
		assert.Equal(t, int64(3), refs[2].Int64())
	})

	t.Run("duplicate_add_is_a_conflict", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")
		require.NoError(t, v.AddCargoRef(mustID(t, 2)))

		err := v.AddCargoRef(mustID(t, 2))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectConflict)
		assert.Len(t, v.CargoRefs(), 1)
	})

	t.Run("remove_existing_ref", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")
		require.NoError(t, v.AddCargoRef(mustID(t, 2)))
		require.NoError(t, v.AddCargoRef(mustID(t, 3)))

		require.NoError(t, v.RemoveCargoRef(mustID(t, 2)))

		refs := v.CargoRefs()
		require.Len(t, refs, 1)
		assert.Equal(t, int64(3), refs[0].Int64())
		assert.False(t, v.HasCargoRef(mustID(t, 2)))
	})

	t.Run("remove_missing_ref_is_not_found", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		err := v.RemoveCargoRef(mustID(t, 42))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")
		require.NoError(t, v.AddCargoRef(mustID(t, 2)))

		refs := v.CargoRefs()
		refs[0] = mustID(t, 99)

		assert.True(t, v.HasCargoRef(mustID(t, 2)))
		assert.False(t, v.HasCargoRef(mustID(t, 99)))
	})
}

func TestVessel_Mutations(t *testing.T) {
	t.Run("rename_applies_format_rules", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		require.NoError(t, v.Rename("Narwhal"))
		assert.Equal(t, "Narwhal", v.Name())

		require.Error(t, v.Rename("Narwhal!!!"))
		assert.Equal(t, "Narwhal", v.Name())
	})

	t.Run("change_length_rejects_non_positive", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		require.Error(t, v.ChangeLength(-3))
		assert.Equal(t, 28, v.Length())
	})

	t.Run("ownership_check", func(t *testing.T) {
		v, _ := vessel.NewVessel("Orca", "trawler", 28, "auth0|alice")

		assert.True(t, v.IsOwnedBy("auth0|alice"))
		assert.False(t, v.IsOwnedBy("auth0|bob"))
	})
}
