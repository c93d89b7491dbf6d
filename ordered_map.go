package treap

import "golang.org/x/exp/constraints"

// OrderedMap is the set of operations an ordered associative container
// offers. Treap is its only implementation.
type OrderedMap[K constraints.Ordered, V any] interface {
	// Set inserts key or, if it is already present, replaces its value.
	// It returns the replaced value and whether a replacement happened.
	Set(key K, value V) (V, bool)

	// Get returns the value for key, or an error matching ErrKeyNotFound.
	Get(key K) (V, error)

	// Delete removes key, or returns an error matching ErrKeyNotFound.
	Delete(key K) (V, error)

	// Contains reports whether key is present.
	Contains(key K) bool

	// Len returns the number of keys.
	Len() int

	// Ascend and Descend return fresh iterators in key order.
	Ascend() *Iterator[K, V]
	Descend() *Iterator[K, V]
}

var _ OrderedMap[int, string] = (*Treap[int, string])(nil)
