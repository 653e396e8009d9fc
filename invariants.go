package skog

import "fmt"

// Check validates the structural invariants of a forest.
//
// Walking from Begin to End has to visit the entry edge of every node exactly
// once, followed by the entry and exit edges of its descendants, followed by
// its own exit edge; every step has to be reversible; and a trustworthy
// cached size has to match the number of nodes. Check is intended for tests
// and debugging, it is O(n) in time and space.
func (f *Forest[T]) Check() error {
	if f == nil {
		return fmt.Errorf("%w: nil forest", ErrIllegalArguments)
	}
	sentinel := f.sentinel()
	if sentinel.valid {
		return fmt.Errorf("%w: sentinel carries a value", ErrInconsistent)
	}
	seen := make(map[*node[T]]bool)
	var open []*node[T]
	end := f.rawEnd()
	c := f.rawRoot()
	for !c.equal(end) {
		n := c.next()
		if n.node == nil {
			return fmt.Errorf("%w: dangling link after %v", ErrInconsistent, c)
		}
		if n.node != sentinel && !n.node.valid {
			return fmt.Errorf("%w: released node %v still linked", ErrInconsistent, n)
		}
		if back := n.prev(); !back.equal(c) {
			return fmt.Errorf("%w: step %v -> %v is not reversible (back to %v)",
				ErrInconsistent, c, n, back)
		}
		c = n
		if c.equal(end) {
			break
		}
		if c.node == sentinel {
			return fmt.Errorf("%w: walk re-entered root", ErrInconsistent)
		}
		if c.edge == Entry {
			if seen[c.node] {
				return fmt.Errorf("%w: node %v entered twice", ErrInconsistent, c)
			}
			seen[c.node] = true
			open = append(open, c.node)
			continue
		}
		if len(open) == 0 || open[len(open)-1] != c.node {
			return fmt.Errorf("%w: exit edge %v does not close the innermost node",
				ErrInconsistent, c)
		}
		open = open[:len(open)-1]
	}
	if len(open) != 0 {
		return fmt.Errorf("%w: %d nodes not closed at end", ErrInconsistent, len(open))
	}
	if f.size != 0 && f.size != len(seen) {
		return fmt.Errorf("%w: cached size %d, counted %d", ErrInconsistent, f.size, len(seen))
	}
	return nil
}
