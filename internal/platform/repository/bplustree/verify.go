package bplustree

import (
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("bplustree: corrupt tree")

// Verify walks the whole tree and checks the structural invariants: key
// order and bounds, fan-out, parent links, uniform leaf depth and the leaf
// chain. Minimum occupancy is only checked while nothing has been deleted.
func (t *Tree[V]) Verify() error {
	if t.root == none {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys", ErrCorrupt, t.size)
		}
		return nil
	}
	if p := t.node(t.root).parent; p != none {
		return fmt.Errorf("%w: root has parent %d", ErrCorrupt, p)
	}

	v := verifier[V]{tree: t, leafDepth: -1}
	if err := v.walk(t.root, 0, nil, nil); err != nil {
		return err
	}
	return v.checkChain()
}

type verifier[V any] struct {
	tree      *Tree[V]
	leafDepth int
	leaves    []nodeID
}

func (v *verifier[V]) walk(id nodeID, depth int, lo, hi *string) error {
	t := v.tree
	n := t.node(id)

	if len(n.keys) > t.order-1 {
		return fmt.Errorf("%w: node %d has %d keys, order %d", ErrCorrupt, id, len(n.keys), t.order)
	}
	// (order-1)/2 y no ceil(order/2): el split interno deja una sola clave a la derecha con order 4
	if id != t.root && t.deletes == 0 && len(n.keys) < (t.order-1)/2 {
		return fmt.Errorf("%w: node %d underflows with %d keys", ErrCorrupt, id, len(n.keys))
	}
	for i, key := range n.keys {
		if i > 0 && n.keys[i-1] >= key {
			return fmt.Errorf("%w: node %d keys out of order at %d", ErrCorrupt, id, i)
		}
		if lo != nil && key < *lo {
			return fmt.Errorf("%w: node %d key %q below bound %q", ErrCorrupt, id, key, *lo)
		}
		if hi != nil && key >= *hi {
			return fmt.Errorf("%w: node %d key %q not below bound %q", ErrCorrupt, id, key, *hi)
		}
	}

	if n.leaf {
		if len(n.values) != len(n.keys) {
			return fmt.Errorf("%w: leaf %d has %d keys and %d values", ErrCorrupt, id, len(n.keys), len(n.values))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaf %d at depth %d, expected %d", ErrCorrupt, id, depth, v.leafDepth)
		}
		v.leaves = append(v.leaves, id)
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: node %d has %d keys and %d children", ErrCorrupt, id, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		if p := t.node(child).parent; p != id {
			return fmt.Errorf("%w: child %d of %d points to parent %d", ErrCorrupt, child, id, p)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier[V]) checkChain() error {
	t := v.tree
	count := 0
	var last *string
	id := v.leaves[0]
	for i, want := range v.leaves {
		if id != want {
			return fmt.Errorf("%w: leaf chain reaches %d at position %d, expected %d", ErrCorrupt, id, i, want)
		}
		n := t.node(id)
		for k := range n.keys {
			if last != nil && n.keys[k] <= *last {
				return fmt.Errorf("%w: leaf chain not increasing at %q", ErrCorrupt, n.keys[k])
			}
			last = &n.keys[k]
			count++
		}
		id = n.next
	}
	if id != none {
		return fmt.Errorf("%w: leaf chain continues past last leaf to %d", ErrCorrupt, id)
	}
	if count != t.size {
		return fmt.Errorf("%w: leaf chain holds %d keys, tree reports %d", ErrCorrupt, count, t.size)
	}
	return nil
}
