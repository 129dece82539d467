package finch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	t.Run("membership", func(t *testing.T) {
		assert.True(t, All().Has(42))
		assert.True(t, All().Has("name"))
		assert.False(t, None().Has(42))

		assert.True(t, Keys(1, 2, 3).Has(2))
		assert.False(t, Keys(1, 2, 3).Has(4))
		assert.True(t, Keys("a", "b").Has("b"))
	})

	t.Run("emptiness and normalization", func(t *testing.T) {
		assert.True(t, None().Empty())
		assert.True(t, Keys().Empty())
		assert.False(t, All().Empty())
		assert.False(t, Keys(0).Empty())

		assert.Equal(t, None(), Keys().Normalize())
		assert.Equal(t, Keys(1), Keys(1).Normalize())
	})

	t.Run("keys deduplicate preserving order", func(t *testing.T) {
		assert.Equal(t, Keys(3, 1, 2), Keys(3, 1, 3, 2, 1))
	})

	t.Run("merge", func(t *testing.T) {
		assert.Equal(t, All(), Merge(All(), Keys(1)))
		assert.Equal(t, All(), Merge(None(), All()))
		assert.Equal(t, Keys(1), Merge(None(), Keys(1)))
		assert.Equal(t, Keys(1), Merge(Keys(1), None()))
		assert.Equal(t, None(), Merge(None(), None()))
		assert.Equal(t, None(), Merge(Keys(), None()))

		assert.Equal(t, Keys(1, 2, 3, 4), Merge(Keys(1, 2, 3), Keys(2, 3, 4)))
	})

	t.Run("merge is idempotent and none is the identity", func(t *testing.T) {
		ks := Keys(5, 7)

		assert.Equal(t, ks, Merge(ks, ks))
		assert.Equal(t, ks, Merge(ks, None()))
		assert.Equal(t, All(), Merge(All(), All()))
	})

	t.Run("merge key order follows first appearance", func(t *testing.T) {
		assert.Equal(t, Keys(2, 1, 3), Merge(Keys(2, 1), Keys(1, 3)))
	})
}
