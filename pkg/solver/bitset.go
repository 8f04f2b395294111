package solver

import "math/bits"

const wordBits = 64

// bitset is a dense growable bit-vector indexed by token id.
// The zero value is an empty set. Capacity grows on demand to match the
// highest id ever inserted; bits are never cleared once set.
type bitset []uint64

// set marks id as present and reports whether it was newly added.
func (b *bitset) set(id int) bool {
	w, m := id/wordBits, uint64(1)<<(id%wordBits)
	for len(*b) <= w {
		*b = append(*b, 0)
	}
	if (*b)[w]&m != 0 {
		return false
	}
	(*b)[w] |= m
	return true
}

// has reports whether id is present.
func (b bitset) has(id int) bool {
	w := id / wordBits
	return w < len(b) && b[w]&(uint64(1)<<(id%wordBits)) != 0
}

// unionWith adds every bit of other to b.
func (b *bitset) unionWith(other bitset) {
	for len(*b) < len(other) {
		*b = append(*b, 0)
	}
	for i, w := range other {
		(*b)[i] |= w
	}
}

// diff returns the bits present in b but absent from other.
func (b bitset) diff(other bitset) bitset {
	var out bitset
	for i, w := range b {
		if i < len(other) {
			w &^= other[i]
		}
		if w != 0 {
			for len(out) <= i {
				out = append(out, 0)
			}
			out[i] = w
		}
	}
	return out
}

// empty reports whether no bit is set.
func (b bitset) empty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// count returns the number of set bits.
func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// ids returns the set bit positions in ascending order.
func (b bitset) ids() []int {
	out := make([]int, 0, b.count())
	for i, w := range b {
		for w != 0 {
			out = append(out, i*wordBits+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
	return out
}
