package treap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// split partitions the tree rooted at n into the nodes with keys < key and
// the nodes with keys >= key. Only keys are compared; every node keeps its
// priority and ends up under a subset of its former descendants, so both
// results stay heap ordered.
//
// The split walks a single root-to-leaf path and keeps one open slot per
// side: the place where the next node sent to that side must be hung.
func split[K constraints.Ordered, V any](n *node[K, V], key K) (left, right *node[K, V]) {
	lslot, rslot := &left, &right
	for n != nil {
		if cmp.Less(n.key, key) {
			// n and its left subtree are entirely < key. Whatever is
			// < key in n.right becomes n's new right child.
			*lslot = n
			lslot = &n.right
			n = n.right
		} else {
			*rslot = n
			rslot = &n.left
			n = n.left
		}
	}
	*lslot, *rslot = nil, nil
	return left, right
}

// merge joins two trees where every key in left is less than every key in
// right. The root with the strictly higher priority wins; on a tie right
// wins. The loser is merged into the winner's inner child.
func merge[K constraints.Ordered, V any](left, right *node[K, V]) *node[K, V] {
	var root *node[K, V]
	slot := &root
	for left != nil && right != nil {
		if left.priority > right.priority {
			*slot = left
			slot = &left.right
			left = left.right
		} else {
			*slot = right
			slot = &right.left
			right = right.left
		}
	}
	if left != nil {
		*slot = left
	} else {
		*slot = right
	}
	return root
}

// insert links x, whose key must be absent from the tree, by splitting at
// x.key and merging the three parts back in key order.
func (t *Treap[K, V]) insert(x *node[K, V]) {
	left, right := split(t.root, x.key)
	t.root = merge(merge(left, x), right)
	t.metrics.incSplit()
	t.metrics.incMerge(2)
	t.length++
}

// remove folds the node held in *slot out of the tree. slot must hold a
// non-nil node; callers confirm the key exists before anything is changed.
func (t *Treap[K, V]) remove(slot **node[K, V]) *node[K, V] {
	x := *slot
	*slot = merge(x.left, x.right)
	t.metrics.incMerge(1)
	x.left, x.right = nil, nil
	t.length--
	return x
}

func (t *Treap[K, V]) drawPriority() float64 {
	if t.source == nil {
		t.source = newTimeSource()
	}
	t.metrics.incDraw()
	return t.source.Priority()
}
