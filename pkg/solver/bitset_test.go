package solver

import (
	"reflect"
	"testing"
)

func TestBitsetSetHas(t *testing.T) {
	var b bitset

	if b.has(0) || b.has(200) {
		t.Error("empty bitset should contain nothing")
	}
	if !b.set(3) {
		t.Error("set(3) should report a new bit")
	}
	if b.set(3) {
		t.Error("set(3) twice should report no change")
	}
	if !b.set(130) {
		t.Error("set(130) should grow and report a new bit")
	}

	for _, id := range []int{3, 130} {
		if !b.has(id) {
			t.Errorf("has(%d) = false, want true", id)
		}
	}
	if b.has(64) {
		t.Error("has(64) = true, want false")
	}
}

func TestBitsetUnionDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		wantDiff []int
	}{
		{"Disjoint", []int{1, 2}, []int{3}, []int{1, 2}},
		{"Overlap", []int{1, 2, 70}, []int{2}, []int{1, 70}},
		{"Subset", []int{1}, []int{0, 1, 2}, []int{}},
		{"EmptyLeft", []int{}, []int{5}, []int{}},
		{"EmptyRight", []int{5, 64}, []int{}, []int{5, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a, b bitset
			for _, id := range tt.a {
				a.set(id)
			}
			for _, id := range tt.b {
				b.set(id)
			}

			if got := a.diff(b).ids(); !reflect.DeepEqual(got, tt.wantDiff) {
				t.Errorf("diff ids = %v, want %v", got, tt.wantDiff)
			}

			a.unionWith(b)
			union := map[int]bool{}
			for _, id := range append(tt.a, tt.b...) {
				union[id] = true
			}
			if got := a.count(); got != len(union) {
				t.Errorf("count after union = %d, want %d", got, len(union))
			}
			for id := range union {
				if !a.has(id) {
					t.Errorf("union missing bit %d", id)
				}
			}
		})
	}
}

func TestBitsetIDsOrdered(t *testing.T) {
	var b bitset
	for _, id := range []int{130, 0, 65, 7} {
		b.set(id)
	}
	want := []int{0, 7, 65, 130}
	if got := b.ids(); !reflect.DeepEqual(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}
	if b.empty() {
		t.Error("empty() = true for populated set")
	}
	if !(bitset{}).empty() {
		t.Error("empty() = false for zero value")
	}
}
