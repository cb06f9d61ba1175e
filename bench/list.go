package bench

import (
	"errors"
	"iter"
	"slices"
)

// DefaultCapacity is the initial capacity of a measurement list.
const DefaultCapacity = 16

// ErrListFull is returned when a list cannot grow to hold another element.
var ErrListFull = errors.New("measurement list is full")

// List is an append-only ordered collection whose capacity doubles when full.
// A positive max bounds the capacity; growth is clamped to max and pushing
// past it fails.
type List[T any] struct {
	items []T
	max   int
}

// NewList creates a list with the given initial capacity (DefaultCapacity
// when capacity <= 0) and an optional upper bound (0 = unlimited).
func NewList[T any](capacity, max int) (*List[T], error) {
	if max < 0 {
		return nil, errors.New("list bound must not be negative")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if max > 0 && capacity > max {
		capacity = max
	}
	return &List[T]{items: make([]T, 0, capacity), max: max}, nil
}

// Push appends v, doubling the capacity first if the list is full.
func (l *List[T]) Push(v T) error {
	if len(l.items) == cap(l.items) {
		if err := l.grow(); err != nil {
			return err
		}
	}
	l.items = append(l.items, v)
	return nil
}

func (l *List[T]) grow() error {
	n := cap(l.items) * 2
	if n == 0 {
		n = DefaultCapacity
	}
	if l.max > 0 && n > l.max {
		n = l.max
	}
	if n <= len(l.items) {
		return ErrListFull
	}

	items := make([]T, len(l.items), n)
	copy(items, l.items)
	l.items = items
	return nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the current capacity.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// All iterates the elements in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Sorted returns a copy of the elements ordered by cmp. Equal elements keep
// their insertion order and the list itself is not reordered.
func (l *List[T]) Sorted(cmp func(a, b T) int) []T {
	view := slices.Clone(l.items)
	slices.SortStableFunc(view, cmp)
	return view
}

// Reset drops every element and releases the backing storage.
func (l *List[T]) Reset() {
	clear(l.items)
	l.items = nil
}
