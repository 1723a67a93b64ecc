package set_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/hintmap/set"
)

func TestSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		var s set.Set[string] = set.NewOrdered[string]()
		s.InsertSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Remove("baz"))

		assert.Equal(t, []string{"123", "bar", "foo"}, s.Items())
	})

	t.Run("remove missing item", func(t *testing.T) {
		var s set.Set[string] = set.NewOrdered[string]()
		s.InsertSlice([]string{"foo", "bar"})

		assert.False(t, s.Remove("baz"))
		assert.Equal(t, 2, s.Len())
	})
}

func TestSet_CustomComparator(t *testing.T) {
	t.Run("case insensitive items are equivalent", func(t *testing.T) {
		s := set.NewOrderedSet[string](func(a, b string) bool {
			return strings.ToLower(a) < strings.ToLower(b)
		})

		assert.True(t, s.Insert("Foo"))
		assert.False(t, s.Insert("foo"))
		assert.True(t, s.Insert("bar"))
		assert.False(t, s.Insert("BAR"))

		assert.Equal(t, []string{"bar", "Foo"}, s.Items())
		assert.True(t, s.Has("FOO"))
	})
}
