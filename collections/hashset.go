// Package collections holds containers keyed by a value's own Hash and Equal,
// so wrapper types can be deduplicated without being comparable.
package collections

import (
	"iter"
	"sync"
)

// Hashable is implemented by values that carry their own equality and hash,
// such as liketype wrappers. Equal values must produce equal hashes.
type Hashable interface {
	Hash() uint64
	Equal(other any) bool
}

// HashSet is a set keyed by Hash and resolved by Equal.
type HashSet[T Hashable] struct {
	buckets map[uint64][]T
	size    int
	mu      sync.RWMutex
}

// NewHashSet creates a new empty set.
func NewHashSet[T Hashable]() *HashSet[T] {
	return &HashSet[T]{buckets: make(map[uint64][]T)}
}

// HashSetFrom creates a set from a slice.
func HashSetFrom[T Hashable](items []T) *HashSet[T] {
	s := NewHashSet[T]()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add adds an item to the set. It reports whether the item was not already present.
func (s *HashSet[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := item.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(item) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], item)
	s.size++
	return true
}

// Remove removes an item from the set.
func (s *HashSet[T]) Remove(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := item.Hash()
	bucket := s.buckets[h]
	for i, existing := range bucket {
		if existing.Equal(item) {
			bucket = append(bucket[:i:i], bucket[i+1:]...)
			s.size--
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.buckets, h)
	} else {
		s.buckets[h] = bucket
	}
}

// Contains checks if item is in the set.
func (s *HashSet[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.buckets[item.Hash()] {
		if existing.Equal(item) {
			return true
		}
	}
	return false
}

// Size returns the number of items.
func (s *HashSet[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// IsEmpty returns true if set is empty.
func (s *HashSet[T]) IsEmpty() bool {
	return s.Size() == 0
}

// ToSlice returns items as a slice in no particular order.
func (s *HashSet[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]T, 0, s.size)
	for _, bucket := range s.buckets {
		result = append(result, bucket...)
	}
	return result
}

// All iterates a snapshot of the set in no particular order.
func (s *HashSet[T]) All() iter.Seq[T] {
	items := s.ToSlice()
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Distinct yields the first occurrence of every value in items, keeping
// their order.
func Distinct[T Hashable](items iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := NewHashSet[T]()
		for item := range items {
			if seen.Add(item) && !yield(item) {
				return
			}
		}
	}
}
