package hintmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_Generation(t *testing.T) {
	t.Run("a slot generation keeps growing past 32 bits", func(t *testing.T) {
		m := NewOrdered[int, int]()
		old, _ := m.Insert(1, 1)

		// pretend the slot has been released 2^32-1 times already
		m.nodes.slots[old.idx].gen = math.MaxUint32
		old.gen = math.MaxUint32

		_, _, err := m.Remove(old)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint32)+1, m.nodes.slots[old.idx].gen)

		fresh, _ := m.Insert(2, 2)
		assert.Equal(t, old.idx, fresh.idx)
		assert.NotEqual(t, old, fresh)
		assert.False(t, m.Has(old))
		assert.False(t, m.Has(Position{idx: old.idx, gen: 1}))
		assert.True(t, m.Has(fresh))
	})
}
