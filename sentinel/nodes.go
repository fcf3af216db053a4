package sentinel

// Node is a tree node carrying a payload of type P.
//
// Link fields are managed by Tree. A node which is not linked into a tree has
// all links set to nil.
type Node[P any] struct {
	parent *Node[P]
	left   *Node[P]
	right  *Node[P]
	// Payload is the key, or key/value pair, carried by the node. The header
	// node of a tree never carries a meaningful payload.
	Payload P
}

// Detached reports whether n is currently not linked into any tree.
func (n *Node[P]) Detached() bool {
	return n.parent == nil && n.left == nil && n.right == nil
}

func (n *Node[P]) unlink() {
	n.parent, n.left, n.right = nil, nil, nil
}
