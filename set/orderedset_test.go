package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/hintmap/set"
)

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("baz"))

		assert.Equal(t, []string{"123", "bar", "foo"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("123"))

		assert.Equal(t, []string{"bar", "baz", "foo"}, s.Items())
		assert.False(t, s.Has("123"))
		assert.True(t, s.Has("foo"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove existing item from the end", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("foo"))

		assert.False(t, s.Has("foo"))
		assert.Equal(t, []string{"123", "bar", "baz"}, s.Items())
	})

	t.Run("remove the item inserted last then insert again", func(t *testing.T) {
		s := set.NewOrdered[int]()
		s.Insert(1)
		s.Insert(5)

		assert.True(t, s.Remove(5))
		assert.True(t, s.Insert(3))
		assert.Equal(t, []int{1, 3}, s.Items())
	})
}

func TestOrderedSet_Insert(t *testing.T) {
	t.Run("duplicates are ignored", func(t *testing.T) {
		s := set.NewOrdered[int]()

		assert.True(t, s.Insert(7))
		assert.True(t, s.Insert(2))
		assert.False(t, s.Insert(7))
		assert.False(t, s.Insert(2))

		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []int{2, 7}, s.Items())
	})

	t.Run("descending input ends up ascending", func(t *testing.T) {
		s := set.NewOrdered[int]()
		for i := 100; i > 0; i-- {
			s.Insert(i)
		}

		items := s.Items()
		require.Len(t, items, 100)
		for i, item := range items {
			assert.Equal(t, i+1, item)
		}
	})
}

func TestOrderedSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewOrdered[int]()
		s1.Insert(9)

		s2 := set.NewOrdered[int]()
		s2.Insert(3)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.True(t, s1.Has(3))
		assert.True(t, s1.Has(9))
		assert.False(t, s1.Has(1))

		assert.Equal(t, []int{3, 9}, s1.Items())
	})

	t.Run("inserting a subset changes nothing", func(t *testing.T) {
		s1 := set.NewOrdered[int]()
		s1.InsertSlice([]int{1, 2, 3})

		s2 := set.NewOrdered[int]()
		s2.InsertSlice([]int{2, 3})

		assert.False(t, s1.InsertSet(s2))
		assert.Equal(t, []int{1, 2, 3}, s1.Items())
	})
}

func TestOrderedSet_InsertSlice(t *testing.T) {
	t.Run("set and slice with single elements", func(t *testing.T) {
		s1 := set.NewOrdered[int]()
		s1.Insert(9)

		assert.True(t, s1.InsertSlice([]int{3}))
		assert.Equal(t, 2, s1.Len())
		assert.True(t, s1.Has(3))
		assert.True(t, s1.Has(9))
		assert.False(t, s1.Has(1))

		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}

func TestOrderedSet_MinMax(t *testing.T) {
	s := set.NewOrdered[int]()

	_, ok := s.Min()
	assert.False(t, ok)

	s.InsertSlice([]int{4, 8, 1, 6})

	lowest, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 1, lowest)

	highest, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, 8, highest)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok = s.Max()
	assert.False(t, ok)
}
