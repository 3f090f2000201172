package ordset

import "sort"

// IntSet is a sorted, duplicate-free sequence of ints.
//
// Contract:
//   - Iteration order is always ascending.
//   - Insert/Contains/Remove are O(log n) for the search plus O(n) for the
//     slice shift on mutation.
//   - The zero value is an empty, ready-to-use set.
//
// Complexity: see individual methods.
type IntSet struct {
	data []int
}

// NewIntSet builds an IntSet from the given values, sorting and
// de-duplicating them once up front.
// Complexity: O(n log n).
func NewIntSet(values ...int) *IntSet {
	s := &IntSet{data: append([]int(nil), values...)}
	sort.Ints(s.data)
	s.data = dedupSorted(s.data)

	return s
}

// dedupSorted compacts consecutive duplicates out of an already-sorted slice.
func dedupSorted(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// search returns the index at which v is, or should be, inserted to keep
// s.data sorted, plus whether v is already present at that index.
func (s *IntSet) search(v int) (idx int, found bool) {
	idx = sort.SearchInts(s.data, v)
	found = idx < len(s.data) && s.data[idx] == v

	return idx, found
}

// Insert adds v to the set. Returns true if v was not already present.
// Complexity: O(log n) search, O(n) worst-case shift.
func (s *IntSet) Insert(v int) bool {
	idx, found := s.search(v)
	if found {
		return false
	}

	s.data = append(s.data, 0)
	copy(s.data[idx+1:], s.data[idx:])
	s.data[idx] = v

	return true
}

// InsertAll inserts every value in values, ignoring duplicates.
// Complexity: O(k log n) for k values against a set of size n.
func (s *IntSet) InsertAll(values []int) {
	for _, v := range values {
		s.Insert(v)
	}
}

// Contains reports whether v is a member of the set.
// Complexity: O(log n).
func (s *IntSet) Contains(v int) bool {
	_, found := s.search(v)

	return found
}

// Remove deletes v from the set. Returns true if v was present.
// Complexity: O(log n) search, O(n) worst-case shift.
func (s *IntSet) Remove(v int) bool {
	idx, found := s.search(v)
	if !found {
		return false
	}
	s.data = append(s.data[:idx], s.data[idx+1:]...)

	return true
}

// Len returns the number of elements currently in the set.
// Complexity: O(1).
func (s *IntSet) Len() int {
	return len(s.data)
}

// Values returns the sorted contents as a fresh slice; mutating the result
// does not affect the set.
// Complexity: O(n).
func (s *IntSet) Values() []int {
	return append([]int(nil), s.data...)
}

// PopLast removes and returns the largest element in the set.
// Used by HierarchyBuilder, which pops work items in no particular order
// but must do so deterministically across identical runs.
// Complexity: O(1) (amortized; shrinks the backing slice in place).
func (s *IntSet) PopLast() (int, bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	n := len(s.data) - 1
	v := s.data[n]
	s.data = s.data[:n]

	return v, true
}

// Clear empties the set without releasing its backing array, so the next
// round of inserts can reuse the capacity.
// Complexity: O(1).
func (s *IntSet) Clear() {
	s.data = s.data[:0]
}
