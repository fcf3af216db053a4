package sentinel

// ForEach walks payload nodes in-order.
//
// Iteration stops early if callback returns false. The callback must not
// modify the tree structure.
func (t *Tree[P]) ForEach(fn func(n *Node[P]) bool) {
	if t == nil || fn == nil {
		return
	}
	for n := t.Leftmost(); n != t.header; n = t.Next(n) {
		if !fn(n) {
			return
		}
	}
}

// Drain unlinks every payload node in post-order and hands it to fn, which
// may release it. Afterwards the tree is empty.
//
// Drain takes O(n) steps regardless of the shape of the tree and uses neither
// recursion nor an auxiliary stack: nodes are cut off the tree on the way up,
// so a node whose child links are both gone is a leaf and can be released.
func (t *Tree[P]) Drain(fn func(n *Node[P])) {
	if t == nil || t.count == 0 {
		return
	}
	drained := 0
	n := t.header.parent
	for n != t.header {
		if c := t.Left(n); c != nil {
			n = c
			continue
		}
		if c := t.Right(n); c != nil {
			n = c
			continue
		}
		p := n.parent
		if p != t.header {
			if p.left == n {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		n.unlink()
		drained++
		if fn != nil {
			fn(n)
		}
		n = p
	}
	tracer().Debugf("sentinel: drained %d nodes", drained)
	assert(drained == t.count, "Drain: node count mismatch")
	t.reset()
}
