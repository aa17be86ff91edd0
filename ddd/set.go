package ddd

import "golang.org/x/exp/slices"

// Set holds distinct value objects, compared with Equal.
// The zero value is ready to use. A Set is not safe for concurrent writes.
type Set[T ValueObject] struct {
	buckets map[uint64][]T
	values  []T
}

// NewSet returns a set holding the distinct values of vs.
func NewSet[T ValueObject](vs ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v, returning false if an equal value is already present.
func (s *Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]T)
	}
	h := Hash(v)
	s.buckets[h] = append(s.buckets[h], v)
	s.values = append(s.values, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	bucket := s.buckets[Hash(v)]
	return slices.IndexFunc(bucket, func(e T) bool { return Equal(e, v) }) >= 0
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

// Values returns the values in insertion order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.values)
}
