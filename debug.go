package treap

import (
	"bytes"
	"cmp"
	"fmt"
)

// Verify walks the whole tree and checks that keys are in search tree order
// (which also makes them unique), that every node's priority is at least
// that of its children, and that Len matches the number of reachable nodes.
// The first violation found is returned wrapped in ErrCorrupt.
func (t *Treap[K, V]) Verify() error {
	err := t.verify()
	if err != nil {
		log.Debugf("verify: %v", err)
	}
	return err
}

func (t *Treap[K, V]) verify() error {
	// Each frame carries the open interval its subtree must fall in.
	type frame struct {
		n      *node[K, V]
		lo, hi *K
	}
	count := 0
	stack := []frame{}
	if t.root != nil {
		stack = append(stack, frame{n: t.root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n
		count++

		if f.lo != nil && !cmp.Less(*f.lo, n.key) {
			return fmt.Errorf("%w: key %v not greater than ancestor key %v", ErrCorrupt, n.key, *f.lo)
		}
		if f.hi != nil && !cmp.Less(n.key, *f.hi) {
			return fmt.Errorf("%w: key %v not less than ancestor key %v", ErrCorrupt, n.key, *f.hi)
		}
		if n.priority < 0 || n.priority >= 1 {
			return fmt.Errorf("%w: key %v has priority %v outside [0, 1)", ErrCorrupt, n.key, n.priority)
		}
		for _, c := range [2]*node[K, V]{n.left, n.right} {
			if c != nil && c.priority > n.priority {
				return fmt.Errorf("%w: child %v outranks parent %v", ErrCorrupt, c.key, n.key)
			}
		}

		key := &n.key
		if n.left != nil {
			stack = append(stack, frame{n: n.left, lo: f.lo, hi: key})
		}
		if n.right != nil {
			stack = append(stack, frame{n: n.right, lo: key, hi: f.hi})
		}
	}
	if count != t.length {
		return fmt.Errorf("%w: %d reachable nodes but length is %d", ErrCorrupt, count, t.length)
	}
	return nil
}

// Dump renders the tree in pre-order as (key:value left right), with nil
// for empty subtrees. It is meant for test failure messages.
func (t *Treap[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[K, V])
	walk = func(x *node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v ", x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}
