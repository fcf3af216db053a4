package sentinel

// Remove unlinks node n from the tree. Afterwards n is detached and may be
// released by its owner.
//
// Remove never moves payloads between nodes. If n has two children, n first
// trades link roles with its in-order predecessor, which thereby takes over n's
// position in the tree; then n is removed from the predecessor's former
// position, where it has at most one child.
func (t *Tree[P]) Remove(n *Node[P]) {
	assert(n != nil && n != t.header, "Remove called with nil or header node")
	assert(!n.Detached(), "Remove called with a detached node")
	if t.isReal(n.left) && t.isReal(n.right) {
		pred := t.maxNode(n.left)
		tracer().Debugf("sentinel: remove of inner node, swapping with predecessor")
		t.swapLinks(n, pred)
		t.Remove(n)
		return
	}
	var child *Node[P]
	switch {
	case t.isReal(n.left):
		child = n.left
	case t.isReal(n.right):
		child = n.right
	}
	if child == nil {
		t.removeLeaf(n)
	} else {
		t.splice(n, child)
	}
	n.unlink()
	t.count--
}

// removeLeaf detaches a node without children from its parent.
func (t *Tree[P]) removeLeaf(n *Node[P]) {
	h := t.header
	p := n.parent
	if p == h { // n is the only node; count is maintained by Remove
		h.parent, h.left, h.right = h, h, h
		return
	}
	// A leftmost leaf is always a left child and its successor is its parent,
	// symmetric for rightmost.
	if p.left == n {
		if h.left == n {
			p.left = h
			h.left = p
		} else {
			p.left = nil
		}
	} else {
		if h.right == n {
			p.right = h
			h.right = p
		} else {
			p.right = nil
		}
	}
}

// splice replaces n by its only child.
func (t *Tree[P]) splice(n, child *Node[P]) {
	h := t.header
	p := n.parent
	child.parent = p
	t.replaceChild(p, n, child)
	if h.left == n { // n had no left child, so child is its right child
		m := t.minNode(child)
		m.left = h
		h.left = m
	}
	if h.right == n {
		m := t.maxNode(child)
		m.right = h
		h.right = m
	}
}

// replaceChild makes p link to newChild where it linked to old before.
// p may be the header, in which case newChild becomes the root.
func (t *Tree[P]) replaceChild(p, old, newChild *Node[P]) {
	switch {
	case p == t.header:
		t.header.parent = newChild
	case p.left == old:
		p.left = newChild
	default:
		p.right = newChild
	}
}

// swapLinks exchanges the structural positions of n and pred, where pred is the
// in-order predecessor of n and n has two children. pred is the rightmost node
// of n's left subtree, therefore it has no right child and is never the
// rightmost node of the tree; it may, however, be the leftmost.
func (t *Tree[P]) swapLinks(n, pred *Node[P]) {
	assert(pred != n, "swapLinks called with identical nodes")
	assert(!t.isReal(pred.right), "swapLinks: predecessor has a right child")
	np, nl, nr := n.parent, n.left, n.right
	pp, pl := pred.parent, pred.left
	t.replaceChild(np, n, pred)
	pred.parent = np
	pred.right = nr
	nr.parent = pred
	if pp == n { // pred is n's left child
		pred.left = n
		n.parent = pred
	} else {
		pred.left = nl
		nl.parent = pred
		pp.right = n
		n.parent = pp
	}
	n.left = pl
	n.right = nil
	if t.isReal(pl) {
		pl.parent = n
	}
	if t.header.left == pred {
		t.header.left = n
	}
}
