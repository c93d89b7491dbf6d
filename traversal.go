package treap

import "cmp"

// locate returns the slot that holds key, or the nil slot where key would be
// hung as a leaf. Priorities are ignored. Keys are ordered by cmp.Compare,
// so a NaN key sorts before every other float and equals itself.
func (t *Treap[K, V]) locate(key K) **node[K, V] {
	pos := &t.root
	for x := *pos; x != nil; x = *pos {
		c := cmp.Compare(key, x.key)
		if c == 0 {
			break
		}
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

func (t *Treap[K, V]) find(key K) *node[K, V] {
	x := t.root
	for x != nil {
		switch c := cmp.Compare(key, x.key); {
		case c == 0:
			return x
		case c < 0:
			x = x.left
		default:
			x = x.right
		}
	}
	return nil
}

func (t *Treap[K, V]) min() *node[K, V] {
	x := t.root
	for x != nil && x.left != nil {
		x = x.left
	}
	return x
}

func (t *Treap[K, V]) max() *node[K, V] {
	x := t.root
	for x != nil && x.right != nil {
		x = x.right
	}
	return x
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// An empty treap has depth 0.
func (t *Treap[K, V]) Depth() int {
	if t == nil || t.root == nil {
		return 0
	}
	type frame struct {
		n     *node[K, V]
		depth int
	}
	deepest := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		deepest = max(deepest, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return deepest
}
