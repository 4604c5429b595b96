// Package bplustree is an in-memory B+Tree mapping string keys to values.
//
// Nodes live in an arena and refer to each other by index: children, the
// parent back link and the leaf chain are all arena indices. Leaves are
// linked left to right so a full ordered scan never revisits internal nodes.
//
// Deleting a key only removes it from its leaf. Nodes are never merged or
// redistributed, so after deletions leaves may fall below half occupancy
// (or become empty) while searches and scans stay correct.
package bplustree

import (
	"slices"
	"sort"
)

const (
	DefaultOrder = 4
	MinOrder     = 3
)

// Tree is not safe for concurrent use.
type Tree[V any] struct {
	order   int
	nodes   []*node[V]
	root    nodeID
	size    int
	deletes int
}

// New creates an empty tree. A node splits when it reaches order keys.
// Orders below MinOrder are raised to MinOrder.
func New[V any](order int) *Tree[V] {
	if order < MinOrder {
		order = MinOrder
	}
	return &Tree[V]{
		order: order,
		root:  none,
	}
}

func (t *Tree[V]) Order() int {
	return t.order
}

// Len returns the number of live keys.
func (t *Tree[V]) Len() int {
	return t.size
}

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree[V]) Height() int {
	h := 0
	for id := t.root; id != none; {
		h++
		n := t.node(id)
		if n.leaf {
			break
		}
		id = n.children[0]
	}
	return h
}

// childIndex returns the child to follow for key: the one right before the
// first separator strictly greater than key.
func childIndex(keys []string, key string) int {
	return sort.Search(len(keys), func(i int) bool { return keys[i] > key })
}

func (t *Tree[V]) findLeaf(key string) nodeID {
	id := t.root
	for {
		n := t.node(id)
		if n.leaf {
			return id
		}
		id = n.children[childIndex(n.keys, key)]
	}
}

func (t *Tree[V]) Search(key string) (V, bool) {
	var zero V
	if t.root == none {
		return zero, false
	}
	leaf := t.node(t.findLeaf(key))
	if i, found := slices.BinarySearch(leaf.keys, key); found {
		return leaf.values[i], true
	}
	return zero, false
}

// Insert places key in sorted position in its leaf, splitting bottom up when
// a node overflows. Inserting an existing key replaces its value.
func (t *Tree[V]) Insert(key string, value V) {
	if t.root == none {
		t.root = t.alloc(true)
	}

	leafID := t.findLeaf(key)
	leaf := t.node(leafID)
	i, found := slices.BinarySearch(leaf.keys, key)
	if found {
		leaf.values[i] = value
		return
	}

	leaf.keys = slices.Insert(leaf.keys, i, key)
	leaf.values = slices.Insert(leaf.values, i, value)
	t.size++

	if len(leaf.keys) >= t.order {
		t.splitLeaf(leafID)
	}
}

// splitLeaf moves the upper half of the leaf into a new right sibling and
// copies the sibling's first key up as separator.
func (t *Tree[V]) splitLeaf(id nodeID) {
	rightID := t.alloc(true)
	leaf, right := t.node(id), t.node(rightID)

	mid := len(leaf.keys) / 2
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)
	clear(leaf.values[mid:])
	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]

	right.next = leaf.next
	leaf.next = rightID
	right.parent = leaf.parent

	t.insertIntoParent(id, right.keys[0], rightID)
}

// splitInternal promotes the middle key; it is moved, not copied.
func (t *Tree[V]) splitInternal(id nodeID) {
	rightID := t.alloc(false)
	n, right := t.node(id), t.node(rightID)

	mid := len(n.keys) / 2
	promoted := n.keys[mid]
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)
	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	for _, child := range right.children {
		t.node(child).parent = rightID
	}
	right.parent = n.parent

	t.insertIntoParent(id, promoted, rightID)
}

func (t *Tree[V]) insertIntoParent(leftID nodeID, separator string, rightID nodeID) {
	left, right := t.node(leftID), t.node(rightID)

	if left.parent == none {
		rootID := t.alloc(false)
		root := t.node(rootID)
		root.keys = append(root.keys, separator)
		root.children = append(root.children, leftID, rightID)
		left.parent = rootID
		right.parent = rootID
		t.root = rootID
		return
	}

	parentID := left.parent
	parent := t.node(parentID)
	i := slices.Index(parent.children, leftID)
	parent.keys = slices.Insert(parent.keys, i, separator)
	parent.children = slices.Insert(parent.children, i+1, rightID)
	right.parent = parentID

	if len(parent.keys) >= t.order {
		t.splitInternal(parentID)
	}
}

// Delete removes key from its leaf. No merge, no redistribution, separators
// in internal nodes are left untouched.
func (t *Tree[V]) Delete(key string) bool {
	if t.root == none {
		return false
	}
	leaf := t.node(t.findLeaf(key))
	i, found := slices.BinarySearch(leaf.keys, key)
	if !found {
		return false
	}
	leaf.keys = slices.Delete(leaf.keys, i, i+1)
	leaf.values = slices.Delete(leaf.values, i, i+1)
	t.size--
	t.deletes++
	return true
}

// Traverse calls visit for every key in ascending order by walking the leaf
// chain. Returning false from visit stops the walk. The tree must not be
// modified from visit.
func (t *Tree[V]) Traverse(visit func(key string, value V) bool) {
	if t.root == none {
		return
	}
	id := t.root
	for !t.node(id).leaf {
		id = t.node(id).children[0]
	}
	for ; id != none; id = t.node(id).next {
		n := t.node(id)
		for i, key := range n.keys {
			if !visit(key, n.values[i]) {
				return
			}
		}
	}
}

// Teardown releases every node, children before parents. Values are dropped
// from the tree but otherwise left to their owner.
func (t *Tree[V]) Teardown() {
	if t.root != none {
		t.release(t.root)
	}
	t.nodes = nil
	t.root = none
	t.size = 0
	t.deletes = 0
}

func (t *Tree[V]) release(id nodeID) {
	n := t.node(id)
	for _, child := range n.children {
		t.release(child)
	}
	clear(n.values)
	n.keys, n.values, n.children = nil, nil, nil
	t.nodes[id] = nil
}
