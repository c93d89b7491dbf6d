package treap

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Delete when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrCorrupt is returned by Verify when the tree violates the search
	// tree or heap ordering, or its size bookkeeping is off.
	ErrCorrupt = errors.New("treap is corrupt")
)
