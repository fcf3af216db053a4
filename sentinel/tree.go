package sentinel

// Tree is a sentinel-terminated binary search tree.
//
// The header node doubles as the end position. Its parent link holds the root,
// its left link the leftmost node and its right link the rightmost node. For an
// empty tree all three are the header itself.
type Tree[P any] struct {
	header *Node[P]
	count  int
}

// New creates an empty tree with a fresh header.
func New[P any]() *Tree[P] {
	t := &Tree[P]{header: &Node[P]{}}
	t.reset()
	return t
}

func (t *Tree[P]) reset() {
	h := t.header
	h.parent, h.left, h.right = h, h, h
	t.count = 0
}

// isReal reports whether a link designates a payload node.
func (t *Tree[P]) isReal(n *Node[P]) bool {
	return n != nil && n != t.header
}

// Len returns the number of payload nodes in the tree.
func (t *Tree[P]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no payload nodes.
func (t *Tree[P]) IsEmpty() bool {
	return t == nil || t.count == 0
}

// End returns the header node, which serves as the end position.
func (t *Tree[P]) End() *Node[P] {
	return t.header
}

// IsSentinel is true exactly for the header node of t.
func (t *Tree[P]) IsSentinel(n *Node[P]) bool {
	return n == t.header
}

// Root returns the root node, or the header if the tree is empty.
func (t *Tree[P]) Root() *Node[P] {
	return t.header.parent
}

// Leftmost returns the node with the minimum key, or the header if the tree is empty.
func (t *Tree[P]) Leftmost() *Node[P] {
	return t.header.left
}

// Rightmost returns the node with the maximum key, or the header if the tree is empty.
func (t *Tree[P]) Rightmost() *Node[P] {
	return t.header.right
}

// Left returns the left child of n, or nil if n has none.
func (t *Tree[P]) Left(n *Node[P]) *Node[P] {
	if t.isReal(n.left) {
		return n.left
	}
	return nil
}

// Right returns the right child of n, or nil if n has none.
func (t *Tree[P]) Right(n *Node[P]) *Node[P] {
	if t.isReal(n.right) {
		return n.right
	}
	return nil
}

// Parent returns the parent of n, or nil if n is the root.
func (t *Tree[P]) Parent(n *Node[P]) *Node[P] {
	if t.isReal(n.parent) {
		return n.parent
	}
	return nil
}

// Attach links a detached node n as a child of parent. If left is true, n
// becomes the left child, otherwise the right child.
//
// For an empty tree parent is ignored and n becomes the root and both extremes.
// Otherwise the designated child slot of parent must be empty.
func (t *Tree[P]) Attach(n, parent *Node[P], left bool) {
	assert(n != nil && n != t.header, "Attach called with nil or header node")
	assert(n.Detached(), "Attach called with a node still linked into a tree")
	h := t.header
	if t.count == 0 {
		n.parent, n.left, n.right = h, h, h
		h.parent, h.left, h.right = n, n, n
		t.count = 1
		return
	}
	assert(t.isReal(parent), "Attach needs a payload node as parent in a non-empty tree")
	n.parent = parent
	if left {
		assert(!t.isReal(parent.left), "Attach: left slot of parent is occupied")
		if h.left == parent {
			n.left = h
			h.left = n
		}
		parent.left = n
	} else {
		assert(!t.isReal(parent.right), "Attach: right slot of parent is occupied")
		if h.right == parent {
			n.right = h
			h.right = n
		}
		parent.right = n
	}
	t.count++
}

// Next returns the in-order successor of n. The successor of the rightmost node
// is the header, and the successor of the header is the leftmost node.
func (t *Tree[P]) Next(n *Node[P]) *Node[P] {
	if n == t.header {
		return t.header.left
	}
	if t.isReal(n.right) {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.header && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// Prev returns the in-order predecessor of n. The predecessor of the leftmost
// node is the header, and the predecessor of the header is the rightmost node.
func (t *Tree[P]) Prev(n *Node[P]) *Node[P] {
	if n == t.header {
		return t.header.right
	}
	if t.isReal(n.left) {
		return t.maxNode(n.left)
	}
	p := n.parent
	for p != t.header && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// minNode returns the node in n's subtree with the smallest key.
// n must be a payload node.
func (t *Tree[P]) minNode(n *Node[P]) *Node[P] {
	for t.isReal(n.left) {
		n = n.left
	}
	return n
}

// maxNode returns the node in n's subtree with the largest key.
// n must be a payload node.
func (t *Tree[P]) maxNode(n *Node[P]) *Node[P] {
	for t.isReal(n.right) {
		n = n.right
	}
	return n
}

// Height returns the number of nodes on the longest root-to-leaf path, where 0
// means an empty tree.
func (t *Tree[P]) Height() int {
	if t == nil || t.count == 0 {
		return 0
	}
	type level struct {
		n     *Node[P]
		depth int
	}
	height := 0
	stack := []level{{t.header.parent, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, top.depth)
		if c := t.Left(top.n); c != nil {
			stack = append(stack, level{c, top.depth + 1})
		}
		if c := t.Right(top.n); c != nil {
			stack = append(stack, level{c, top.depth + 1})
		}
	}
	return height
}
