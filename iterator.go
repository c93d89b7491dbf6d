package treap

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks a Treap in key order, ascending or descending, holding
// only the path it still has to visit. It starts positioned before the
// first element and can be used once; ask the Treap for a new one to walk
// again. Mutating the Treap while an iterator is in use leaves that
// iterator's results undefined.
type Iterator[K constraints.Ordered, V any] struct {
	t       *Treap[K, V]
	desc    bool
	started bool
	stack   []*node[K, V]
	current *node[K, V]
}

// Ascend returns an iterator over the treap in increasing key order.
func (t *Treap[K, V]) Ascend() *Iterator[K, V] {
	return &Iterator[K, V]{t: t}
}

// Descend returns an iterator over the treap in decreasing key order.
func (t *Treap[K, V]) Descend() *Iterator[K, V] {
	return &Iterator[K, V]{t: t, desc: true}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && it.current != nil
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if !it.Valid() {
		return zero
	}
	return it.current.key
}

// Value returns the value at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if !it.Valid() {
		return zero
	}
	return it.current.val
}

// Next advances the iterator and reports whether it points at an element.
// The first call moves to the first element in the iterator's direction.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.t == nil {
		return false
	}
	if !it.started {
		it.started = true
		it.pushSpine(it.t.root)
	}
	return it.advance()
}

// SeekGE positions an ascending iterator at the first key greater than or
// equal to key and reports whether one exists. Subsequent Next calls
// continue upward from there. It always fails on a descending iterator.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.t == nil || it.desc {
		it.invalidate()
		return false
	}
	it.reset()
	for x := it.t.root; x != nil; {
		if cmp.Less(x.key, key) {
			x = x.right
		} else {
			it.stack = append(it.stack, x)
			x = x.left
		}
	}
	return it.advance()
}

// SeekLE positions a descending iterator at the first key less than or equal
// to key and reports whether one exists. Subsequent Next calls continue
// downward from there. It always fails on an ascending iterator.
func (it *Iterator[K, V]) SeekLE(key K) bool {
	if it == nil || it.t == nil || !it.desc {
		it.invalidate()
		return false
	}
	it.reset()
	for x := it.t.root; x != nil; {
		if cmp.Less(key, x.key) {
			x = x.left
		} else {
			it.stack = append(it.stack, x)
			x = x.right
		}
	}
	return it.advance()
}

// advance pops the next node and queues the subtree that follows it.
func (it *Iterator[K, V]) advance() bool {
	if len(it.stack) == 0 {
		it.invalidate()
		return false
	}
	x := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.desc {
		it.pushSpine(x.left)
	} else {
		it.pushSpine(x.right)
	}
	it.current = x
	return true
}

// pushSpine stacks x and its chain of children towards the first element in
// the iterator's direction.
func (it *Iterator[K, V]) pushSpine(x *node[K, V]) {
	for x != nil {
		it.stack = append(it.stack, x)
		if it.desc {
			x = x.right
		} else {
			x = x.left
		}
	}
}

func (it *Iterator[K, V]) reset() {
	it.started = true
	it.stack = it.stack[:0]
	it.current = nil
}

func (it *Iterator[K, V]) invalidate() {
	if it == nil {
		return
	}
	it.started = true
	it.current = nil
	it.stack = nil
}

// All returns an iterator over the key/value pairs in increasing key order.
func (t *Treap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Ascend()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the key/value pairs in decreasing key
// order.
func (t *Treap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Descend()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in increasing order.
func (t *Treap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := t.Ascend()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Scan returns an iterator over the pairs whose keys k satisfy
// lo <= k <= hi, in increasing key order.
func (t *Treap[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if cmp.Less(hi, lo) {
			return
		}
		it := t.Ascend()
		for ok := it.SeekGE(lo); ok && !cmp.Less(hi, it.Key()); ok = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
