package maze

const none = -1

// frontier is a LIFO stack of cell indices that also supports O(1)
// membership tests and removal by value. Entries are linked through
// per-cell prev/next slots, so each cell is present at most once.
type frontier struct {
	next   []int
	prev   []int
	member []bool
	top    int
	size   int
}

func newFrontier(capacity int) *frontier {
	f := &frontier{
		next:   make([]int, capacity),
		prev:   make([]int, capacity),
		member: make([]bool, capacity),
		top:    none,
	}
	return f
}

// Len returns the number of stacked cells.
func (f *frontier) Len() int {
	return f.size
}

// Contains reports whether the cell index is on the stack.
func (f *frontier) Contains(idx int) bool {
	return f.member[idx]
}

// Push puts idx on top of the stack. Pushing a present index is a no-op.
func (f *frontier) Push(idx int) {
	if f.member[idx] {
		return
	}
	f.member[idx] = true
	f.prev[idx] = none
	f.next[idx] = f.top
	if f.top != none {
		f.prev[f.top] = idx
	}
	f.top = idx
	f.size++
}

// Pop removes and returns the top index; ok is false on an empty stack.
func (f *frontier) Pop() (idx int, ok bool) {
	if f.top == none {
		return none, false
	}
	idx = f.top
	f.Remove(idx)
	return idx, true
}

// Remove unlinks idx wherever it sits in the stack.
func (f *frontier) Remove(idx int) {
	if !f.member[idx] {
		return
	}
	p, n := f.prev[idx], f.next[idx]
	if p != none {
		f.next[p] = n
	} else {
		f.top = n
	}
	if n != none {
		f.prev[n] = p
	}
	f.member[idx] = false
	f.prev[idx], f.next[idx] = none, none
	f.size--
}

// MoveToTop removes any prior occurrence of idx and pushes it again.
func (f *frontier) MoveToTop(idx int) {
	f.Remove(idx)
	f.Push(idx)
}
