package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef(t *testing.T) {
	t.Run("external_identifier_is_not_a_uuid", func(t *testing.T) {
		ref, err := order.NewRef("ORD-1001")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1001", ref.String())
		_, ok := ref.AsUUID()
		assert.False(t, ok)
	})

	t.Run("internal_identifier_parses_as_uuid", func(t *testing.T) {
		id := kernel.NewUUID()

		ref := order.RefFromID(id)

		require.NoError(t, ref.Validate())
		parsed, ok := ref.AsUUID()
		require.True(t, ok)
		assert.Equal(t, id.String(), parsed.String())
	})

	t.Run("empty_reference_is_rejected", func(t *testing.T) {
		_, err := order.NewRef("")

		require.Error(t, err)
	})

	t.Run("zero_value_ref_fails_validation", func(t *testing.T) {
		var ref order.Ref

		require.Error(t, ref.Validate())
	})
}
