package solver

import "testing"

func TestRegistryAssignsDenseIDs(t *testing.T) {
	r := newRegistry[string]()

	if got := r.id("a"); got != 0 {
		t.Errorf("first id = %d, want 0", got)
	}
	if got := r.id("b"); got != 1 {
		t.Errorf("second id = %d, want 1", got)
	}
	if got := r.id("a"); got != 0 {
		t.Errorf("repeated id = %d, want 0", got)
	}
	if got := r.size(); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}
}

func TestRegistryReverseMapping(t *testing.T) {
	r := newRegistry[int]()
	values := []int{42, -1, 0, 42}
	for _, v := range values {
		r.id(v)
	}

	for _, v := range []int{42, -1, 0} {
		if got := r.token(r.id(v)); got != v {
			t.Errorf("token(id(%d)) = %d, want %d", v, got, v)
		}
	}
}
