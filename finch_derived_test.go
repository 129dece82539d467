package finch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Run("is lazy", func(t *testing.T) {
		log := []string{}

		count := NewSource(1)
		double := MustDerive([]AnyChannel{count}, func(vals []any) int {
			log = append(log, "doubling")
			return vals[0].(int) * 2
		})

		assert.Empty(t, log)

		count.Write(10)
		assert.Empty(t, log)

		assert.Equal(t, 20, double.Read())
		assert.Equal(t, []string{"doubling"}, log)
	})

	t.Run("caches until dirtied", func(t *testing.T) {
		log := []string{}

		count := NewSource(1)
		double := MustDerive([]AnyChannel{count}, func(vals []any) int {
			log = append(log, "doubling")
			return vals[0].(int) * 2
		})
		plustwo := MustDerive([]AnyChannel{double}, func(vals []any) int {
			log = append(log, "adding")
			return vals[0].(int) + 2
		})

		assert.Equal(t, 4, plustwo.Read())
		assert.Equal(t, 4, plustwo.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, []string{"doubling", "adding"}, log)

		count.Write(10)
		assert.Equal(t, 22, plustwo.Read())
		assert.Equal(t, []string{"doubling", "adding", "doubling", "adding"}, log)
	})

	t.Run("nested lazy chain", func(t *testing.T) {
		times := NewSource(1)
		text := NewSource("cat")

		tt := MustDerive([]AnyChannel{text, times}, func(vals []any) string {
			return strings.Repeat(vals[0].(string), vals[1].(int))
		})
		times2 := MustDerive([]AnyChannel{times, times}, func(vals []any) int {
			return vals[0].(int) * vals[1].(int)
		})
		ttt := MustDerive([]AnyChannel{tt, times2}, func(vals []any) string {
			return strings.Repeat(vals[0].(string), vals[1].(int))
		})

		assert.Equal(t, "cat", ttt.Read())

		times.Write(2)
		text.Write("dog")
		assert.Equal(t, "dogdogdogdogdogdogdogdog", ttt.Read())
	})

	t.Run("no incoming channels", func(t *testing.T) {
		d, err := Derive([]AnyChannel{}, func(vals []any) int { return 0 })
		assert.Nil(t, d)
		assert.ErrorIs(t, err, ErrNoIncomingChannels)

		assert.Panics(t, func() {
			MustDerive([]AnyChannel{}, func(vals []any) int { return 0 })
		})
	})

	t.Run("stays dirty when compute panics", func(t *testing.T) {
		count := NewSource(1)

		fail := true
		double := MustDerive([]AnyChannel{count}, func(vals []any) int {
			if fail {
				panic("boom")
			}
			return vals[0].(int) * 2
		})

		assert.PanicsWithValue(t, "boom", func() { double.Read() })

		fail = false
		assert.Equal(t, 2, double.Read())
	})

	t.Run("chooses patch path for finite dirty sets", func(t *testing.T) {
		log := []string{}

		list := NewSequence([]int{1, 2, 3})
		negated := MustDerive([]AnyChannel{list}, func(vals []any) []any {
			log = append(log, "compute")

			items := vals[0].([]any)
			out := make([]any, len(items))
			for i, v := range items {
				out[i] = -v.(int)
			}
			return out
		},
			WithConnectors(Identity(list)),
			WithComputeAt(func(vals []any, cache []any, key Key) []any {
				log = append(log, fmt.Sprintf("patch %d", key))

				i := key.(int)
				cache[i] = -vals[0].([]any)[i].(int)
				return cache
			}))

		assert.Equal(t, []any{-1, -2, -3}, negated.Read())
		assert.Equal(t, []string{"compute"}, log)

		list.SetItem(0, 7)
		assert.Equal(t, []any{-7, -2, -3}, negated.Read())
		assert.Equal(t, []string{"compute", "patch 0"}, log)

		// replacing the whole list falls back to the full recompute
		list.Write([]int{4, 5})
		assert.Equal(t, []any{-4, -5}, negated.Read())
		assert.Equal(t, []string{"compute", "patch 0", "compute"}, log)
	})
}
