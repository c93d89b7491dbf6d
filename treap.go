// Package treap implements an in-memory ordered map as a treap: a binary
// search tree on keys that is simultaneously a max-heap on random node
// priorities. The random priorities keep the expected height logarithmic
// without any rebalancing step; every mutation is a split followed by merges.
//
// A Treap is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
//
// See https://en.wikipedia.org/wiki/Treap.
package treap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Treap is an ordered map from K to V.
// The zero value is an empty Treap ready to use; it draws priorities from a
// time-seeded generator created on the first insertion.
type Treap[K constraints.Ordered, V any] struct {
	root    *node[K, V]
	length  int
	source  PrioritySource
	metrics metrics
}

// New returns an empty Treap configured by opts.
func New[K constraints.Ordered, V any](opts ...Option) *Treap[K, V] {
	cfg := newConfig(opts...)
	return &Treap[K, V]{source: cfg.source}
}

// Set associates value with key. If key was already present its value is
// overwritten in place and the previous value is returned with true; the
// shape of the tree does not change and no priority is drawn.
func (t *Treap[K, V]) Set(key K, value V) (V, bool) {
	if x := t.find(key); x != nil {
		old := x.val
		x.val = value
		t.metrics.incUpdate()
		t.afterMutate()
		return old, true
	}

	t.insert(newNode(key, value, t.drawPriority()))
	t.metrics.incInsert()
	t.afterMutate()
	var zero V
	return zero, false
}

// Get returns the value stored under key. If key is absent the error
// matches ErrKeyNotFound.
func (t *Treap[K, V]) Get(key K) (V, error) {
	if x := t.find(key); x != nil {
		return x.val, nil
	}
	t.metrics.incMiss()
	var zero V
	return zero, keyNotFound(key)
}

// Delete removes key and returns the value it held. If key is absent the
// error matches ErrKeyNotFound and the treap is left untouched.
func (t *Treap[K, V]) Delete(key K) (V, error) {
	slot := t.locate(key)
	if *slot == nil {
		t.metrics.incMiss()
		log.Tracef("delete: key %v not present", key)
		var zero V
		return zero, keyNotFound(key)
	}

	x := t.remove(slot)
	t.metrics.incDelete()
	t.afterMutate()
	return x.val, nil
}

// Contains reports whether key is present.
func (t *Treap[K, V]) Contains(key K) bool {
	if t.find(key) != nil {
		return true
	}
	t.metrics.incMiss()
	return false
}

// Len returns the number of keys in the treap.
func (t *Treap[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Min returns the smallest key and its value. ok is false if the treap is
// empty.
func (t *Treap[K, V]) Min() (key K, value V, ok bool) {
	if x := t.min(); x != nil {
		return x.key, x.val, true
	}
	return key, value, false
}

// Max returns the largest key and its value. ok is false if the treap is
// empty.
func (t *Treap[K, V]) Max() (key K, value V, ok bool) {
	if x := t.max(); x != nil {
		return x.key, x.val, true
	}
	return key, value, false
}

// Clear removes every key. The priority source and the counters reported by
// Stats are kept.
func (t *Treap[K, V]) Clear() {
	log.Debugf("clearing treap holding %d keys", t.length)
	t.root = nil
	t.length = 0
}

func keyNotFound[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

func (t *Treap[K, V]) afterMutate() {
	if afterMutateHook != nil {
		afterMutateHook(t)
	}
}
