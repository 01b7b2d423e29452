package network

// Indexer maps valve names to dense ids in first-seen order.
// The zero value is ready to use. Not safe for concurrent mutation.
type Indexer struct {
	ids   map[string]int
	names []string
}

// Map returns the id for name, assigning the next free id on first sight.
func (x *Indexer) Map(name string) int {
	if id, ok := x.ids[name]; ok {
		return id
	}
	if x.ids == nil {
		x.ids = make(map[string]int)
	}
	id := len(x.names)
	x.ids[name] = id
	x.names = append(x.names, name)

	return id
}

// Lookup returns the id for name without assigning one.
func (x *Indexer) Lookup(name string) (int, bool) {
	id, ok := x.ids[name]

	return id, ok
}

// Name returns the name that was assigned id.
func (x *Indexer) Name(id int) (string, bool) {
	if id < 0 || id >= len(x.names) {
		return "", false
	}

	return x.names[id], true
}

// Len returns the number of ids handed out so far.
func (x *Indexer) Len() int { return len(x.names) }
