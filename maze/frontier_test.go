package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(f *frontier) []int {
	var out []int
	for {
		idx, ok := f.Pop()
		if !ok {
			return out
		}
		out = append(out, idx)
	}
}

func TestFrontier(t *testing.T) {
	t.Run("pops in LIFO order", func(t *testing.T) {
		f := newFrontier(8)
		f.Push(1)
		f.Push(4)
		f.Push(7)
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, []int{7, 4, 1}, drain(f))
		assert.Equal(t, 0, f.Len())
	})

	t.Run("pushing a present index is a no-op", func(t *testing.T) {
		f := newFrontier(8)
		f.Push(2)
		f.Push(3)
		f.Push(2)
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, []int{3, 2}, drain(f))
	})

	t.Run("removes from the middle, top and bottom", func(t *testing.T) {
		f := newFrontier(8)
		for _, idx := range []int{0, 1, 2, 3, 4} {
			f.Push(idx)
		}
		f.Remove(2)
		f.Remove(4)
		f.Remove(0)
		f.Remove(6) // absent
		assert.False(t, f.Contains(2))
		assert.True(t, f.Contains(3))
		assert.Equal(t, []int{3, 1}, drain(f))
	})

	t.Run("move to top keeps the other entries in place", func(t *testing.T) {
		f := newFrontier(8)
		for _, idx := range []int{5, 6, 7} {
			f.Push(idx)
		}
		f.MoveToTop(5)
		f.MoveToTop(5)
		assert.Equal(t, []int{5, 7, 6}, drain(f))
	})

	t.Run("pop on empty stack", func(t *testing.T) {
		f := newFrontier(1)
		_, ok := f.Pop()
		assert.False(t, ok)
	})
}
