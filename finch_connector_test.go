package finch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnector(t *testing.T) {
	t.Run("identity translates operations", func(t *testing.T) {
		list := NewSequence([]int{1, 2, 3})
		conn := Identity(list)

		mutate, region := conn(0, Dirty(Keys(1)))
		assert.Nil(t, mutate)
		assert.Equal(t, Keys(1), region)

		mutate, region = conn(0, Clear(All()))
		assert.Nil(t, mutate)
		assert.Equal(t, All(), region)

		// the upstream already grew; the splice region runs to its new end
		list.Push(4)
		mutate, region = conn(0, Splice(3, 0, 1))
		assert.Equal(t, Keys(3), region)
		assert.Equal(t, []any{2, 4, 6, nil}, mutate([]any{2, 4, 6}))

		mutate, region = conn(0, Swap(0, 2))
		assert.Equal(t, Keys(0, 2), region)
		assert.Equal(t, []any{6, 4, 2, nil}, mutate([]any{2, 4, 6, nil}))

		mutate, region = conn(0, Move(2, 0))
		assert.Equal(t, Keys(0, 1, 2), region)
		assert.Equal(t, []any{2, 6, 4, nil}, mutate([]any{6, 4, 2, nil}))
	})

	t.Run("custom connector filters irrelevant keys", func(t *testing.T) {
		log := []string{}

		list := NewSequence([]int{1, 2, 3})
		head := MustDerive([]AnyChannel{list}, func(vals []any) int {
			log = append(log, "compute")
			return vals[0].([]any)[0].(int)
		}, WithConnectors(func(pos int, op Operation) (Mutator, Index) {
			// only index 0 feeds this derivation
			if op.Region.Has(0) {
				return nil, All()
			}
			return nil, None()
		}))

		assert.Equal(t, 1, head.Read())
		assert.Equal(t, []string{"compute"}, log)

		list.SetItem(2, 30)
		assert.Equal(t, 1, head.Read())
		assert.Equal(t, []string{"compute"}, log)

		list.SetItem(0, 10)
		assert.Equal(t, 10, head.Read())
		assert.Equal(t, []string{"compute", "compute"}, log)
	})
}
