package bplustree

type nodeID int

const none nodeID = -1

// node is one page of the tree. Leaves hold values; internal nodes hold
// len(keys)+1 children. parent and next are plain arena indices and never
// own anything.
type node[V any] struct {
	leaf     bool
	keys     []string
	values   []V
	children []nodeID
	parent   nodeID
	next     nodeID
}

func (t *Tree[V]) alloc(leaf bool) nodeID {
	n := &node[V]{
		leaf:   leaf,
		keys:   make([]string, 0, t.order),
		parent: none,
		next:   none,
	}
	if leaf {
		n.values = make([]V, 0, t.order)
	} else {
		n.children = make([]nodeID, 0, t.order+1)
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

func (t *Tree[V]) node(id nodeID) *node[V] {
	return t.nodes[id]
}
