package search

// frontier is the explicit worklist of unexpanded states.
// It pops the most recently pushed state; any order yields the same best,
// and LIFO keeps the live set small.
type frontier[S any] struct {
	items []S
}

func (f *frontier[S]) push(s S) { f.items = append(f.items, s) }

func (f *frontier[S]) pop() S {
	last := len(f.items) - 1
	s := f.items[last]
	f.items = f.items[:last]

	return s
}

func (f *frontier[S]) len() int { return len(f.items) }
