package sentinel

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and walks the whole tree. It is meant
// for tests and debugging.
func (t *Tree[P]) Check() error {
	if t == nil || t.header == nil {
		return ErrNilTree
	}
	h := t.header
	if t.count == 0 {
		if h.parent != h || h.left != h || h.right != h {
			return fmt.Errorf("%w: empty tree must have a self-referential header", ErrInvariant)
		}
		return nil
	}
	root := h.parent
	if !t.isReal(root) {
		return fmt.Errorf("%w: non-empty tree (count=%d) has no root", ErrInvariant, t.count)
	}
	if root.parent != h {
		return fmt.Errorf("%w: root's parent is not the header", ErrInvariant)
	}
	leftmost, rightmost := root, root
	for t.isReal(leftmost.left) {
		leftmost = leftmost.left
	}
	for t.isReal(rightmost.right) {
		rightmost = rightmost.right
	}
	if h.left != leftmost {
		return fmt.Errorf("%w: cached leftmost is stale", ErrInvariant)
	}
	if h.right != rightmost {
		return fmt.Errorf("%w: cached rightmost is stale", ErrInvariant)
	}
	if leftmost.left != h {
		return fmt.Errorf("%w: leftmost node does not link back to header", ErrInvariant)
	}
	if rightmost.right != h {
		return fmt.Errorf("%w: rightmost node does not link back to header", ErrInvariant)
	}
	nodes, err := t.checkLinks(root, leftmost, rightmost)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariant, nodes, t.count)
	}
	return nil
}

// checkLinks verifies parent back-links and header links for every node
// reachable from root and returns the number of nodes seen.
func (t *Tree[P]) checkLinks(root, leftmost, rightmost *Node[P]) (int, error) {
	nodes := 0
	stack := []*Node[P]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++
		if nodes > t.count {
			return nodes, fmt.Errorf("%w: more nodes reachable than counted (%d)", ErrInvariant, t.count)
		}
		if n.left == t.header && n != leftmost {
			return nodes, fmt.Errorf("%w: inner node links left to header", ErrInvariant)
		}
		if n.right == t.header && n != rightmost {
			return nodes, fmt.Errorf("%w: inner node links right to header", ErrInvariant)
		}
		if c := t.Left(n); c != nil {
			if c.parent != n {
				return nodes, fmt.Errorf("%w: broken parent link of left child", ErrInvariant)
			}
			stack = append(stack, c)
		}
		if c := t.Right(n); c != nil {
			if c.parent != n {
				return nodes, fmt.Errorf("%w: broken parent link of right child", ErrInvariant)
			}
			stack = append(stack, c)
		}
	}
	return nodes, nil
}
