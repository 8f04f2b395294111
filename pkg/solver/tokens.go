package solver

// registry interns tokens, assigning each distinct value a dense
// non-negative id on first sighting. Ids are never reassigned or freed, so
// solution sets can be represented as bit-vectors indexed by id.
type registry[T comparable] struct {
	ids    map[T]int
	tokens []T // id -> token, the reverse mapping
}

func newRegistry[T comparable]() *registry[T] {
	return &registry[T]{ids: make(map[T]int)}
}

// id returns the id for t, allocating the next sequential id if t has not
// been seen before.
func (r *registry[T]) id(t T) int {
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := len(r.tokens)
	r.ids[t] = id
	r.tokens = append(r.tokens, t)
	return id
}

// token returns the token value for a previously allocated id.
func (r *registry[T]) token(id int) T { return r.tokens[id] }

// size returns the number of distinct tokens seen so far.
func (r *registry[T]) size() int { return len(r.tokens) }
