package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownUUID = "8f14e45f-ceea-467f-a8bb-92f0d3b1a2c4"

func TestNewUUID(t *testing.T) {
	t.Run("generates_valid_identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("successive_calls_differ", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("accepted_formats", func(t *testing.T) {
		for name, raw := range map[string]string{
			"canonical": knownUUID,
			"braced":    "{" + knownUUID + "}",
			"urn":       "urn:uuid:" + knownUUID,
			"bare_hex":  "8f14e45fceea467fa8bb92f0d3b1a2c4",
		} {
			t.Run(name, func(t *testing.T) {
				id, err := kernel.UUIDFromString(raw)

				require.NoError(t, err)
				assert.Equal(t, knownUUID, id.String())
				assert.NoError(t, id.Validate())
			})
		}
	})

	t.Run("rejected_inputs", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"ORD-1001",
			"8f14e45f-ceea-467f-a8bb",
			knownUUID + "ff",
			"zz14e45f-ceea-467f-a8bb-92f0d3b1a2c4",
		} {
			_, err := kernel.UUIDFromString(raw)

			require.Error(t, err, "input %q", raw)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips_through_bytes", func(t *testing.T) {
		original, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong_length_is_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x8f, 0x14, 0xe4})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("nil_uuid_is_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("matches_string_form", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.IsType(t, uuid.UUID{}, id.Bytes())
		assert.Equal(t, id.String(), id.Bytes().String())
	})

	t.Run("returned_value_is_a_copy", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same_value_parsed_twice", func(t *testing.T) {
		first, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("zero_values_are_equal", func(t *testing.T) {
		var first, second kernel.UUID

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed_value_passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("parsed_nil_uuid_fails", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
