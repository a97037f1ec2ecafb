// Package flagset implements a fixed-size bit set keyed by small enums.
package flagset

import "math/bits"

// Set is a value-type set over any enum whose underlying type is uint8.
// The zero value is the empty set.
type Set[T ~uint8] struct {
	words [4]uint64
}

// Of returns a set containing flags.
func Of[T ~uint8](flags ...T) Set[T] {
	var s Set[T]
	s.Set(flags...)
	return s
}

// Set adds flags to s.
func (s *Set[T]) Set(flags ...T) {
	for _, f := range flags {
		s.words[f>>6] |= 1 << (f & 63)
	}
}

// Reset removes flags from s.
func (s *Set[T]) Reset(flags ...T) {
	for _, f := range flags {
		s.words[f>>6] &^= 1 << (f & 63)
	}
}

// Clear empties s.
func (s *Set[T]) Clear() {
	s.words = [4]uint64{}
}

// Has reports whether f is in s.
func (s Set[T]) Has(f T) bool {
	return s.words[f>>6]&(1<<(f&63)) != 0
}

// HasAny reports whether at least one of flags is in s.
func (s Set[T]) HasAny(flags ...T) bool {
	for _, f := range flags {
		if s.Has(f) {
			return true
		}
	}
	return false
}

// HasAll reports whether every flag is in s.
func (s Set[T]) HasAll(flags ...T) bool {
	for _, f := range flags {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// HasNone reports whether none of flags is in s.
func (s Set[T]) HasNone(flags ...T) bool {
	return !s.HasAny(flags...)
}

// Union adds every member of other to s.
func (s *Set[T]) Union(other Set[T]) {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
}

// Intersects reports whether s and other share a member.
func (s Set[T]) Intersects(other Set[T]) bool {
	for i := range s.words {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether s has no members.
func (s Set[T]) Empty() bool {
	return s.words == [4]uint64{}
}

// Equal reports whether s and other hold the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.words == other.words
}

// Elements returns the members in ascending order.
func (s Set[T]) Elements() []T {
	out := make([]T, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, T(i*64+b))
			w &^= 1 << b
		}
	}
	return out
}
