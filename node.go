package treap

// node holds a key/value pair and owns its two subtrees.
type node[K, V any] struct {
	key K
	val V
	// priority orders nodes as a max-heap. It is drawn once and never changes.
	priority float64
	left     *node[K, V]
	right    *node[K, V]
}

func newNode[K, V any](key K, val V, priority float64) *node[K, V] {
	return &node[K, V]{
		key:      key,
		val:      val,
		priority: priority,
	}
}
