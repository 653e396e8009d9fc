package skog

import "fmt"

// rawCursor is the unchecked kernel of all cursors. It knows nothing about
// forests, ownership or invalidation; callers have to guarantee that the
// node is linked into a well-formed ring.
type rawCursor[T any] struct {
	node *node[T]
	edge Edge
}

func (c rawCursor[T]) equal(y rawCursor[T]) bool {
	return c.node == y.node && c.edge == y.edge
}

func (c rawCursor[T]) equalNode(y rawCursor[T]) bool {
	return c.node == y.node
}

func (c *rawCursor[T]) pivot() {
	c.edge = c.edge.Pivot()
}

func (c rawCursor[T]) entryOf() rawCursor[T] {
	return rawCursor[T]{node: c.node, edge: Entry}
}

func (c rawCursor[T]) exitOf() rawCursor[T] {
	return rawCursor[T]{node: c.node, edge: Exit}
}

func (c rawCursor[T]) hasChildren() bool {
	return !c.equalNode(c.entryOf().next())
}

// moveNext advances to the following edge.
//
// From an entry edge we either descend into the first child or, if the
// entry link loops back to the node itself, flip to the node's exit edge.
// From an exit edge we land on the entry edge of the next sibling (its
// entry-prior link points back to us) or on the exit edge of the parent.
func (c *rawCursor[T]) moveNext() {
	n := c.node.link(c.edge, next)
	if c.edge == Entry {
		c.edge = edgeOf(n != c.node)
	} else {
		c.edge = edgeOf(n.link(Entry, prior) == c.node)
	}
	c.node = n
}

// movePrev is the mirror image of moveNext.
func (c *rawCursor[T]) movePrev() {
	p := c.node.link(c.edge, prior)
	if c.edge == Entry {
		c.edge = edgeOf(p.link(Exit, next) != c.node)
	} else {
		c.edge = edgeOf(p == c.node)
	}
	c.node = p
}

// moveNextChild skips the subtree below an entry edge.
func (c *rawCursor[T]) moveNextChild() {
	c.pivot()
	c.moveNext()
}

// movePrevChild steps back over the subtree ending before an entry edge.
func (c *rawCursor[T]) movePrevChild() {
	c.movePrev()
	c.pivot()
}

func (c rawCursor[T]) next() rawCursor[T] {
	c.moveNext()
	return c
}

func (c rawCursor[T]) prev() rawCursor[T] {
	c.movePrev()
	return c
}

// setNext makes y the successor of x within the edge families of x and y.
func setNext[T any](x, y rawCursor[T]) {
	x.node.setLink(x.edge, next, y.node)
	y.node.setLink(y.edge, prior, x.node)
}

// insert links a new node immediately before c and returns the entry edge of
// the new node. c itself stays valid and unmoved.
func (c rawCursor[T]) insert(value T) rawCursor[T] {
	n := newNode(value)
	result := rawCursor[T]{node: n, edge: Entry}
	setNext(c.prev(), result)
	setNext(result.next(), c)
	return result
}

// erase unlinks and releases the node under c. Children of the node are
// promoted to its former position. The returned cursor is the position
// following the erased edge.
func (c rawCursor[T]) erase() rawCursor[T] {
	// After the first setNext the ring is broken and edges can no longer be
	// classified when navigating from the affected node, so all neighbours
	// are gathered up front.
	entryPrior := c.entryOf().prev()
	entryNext := c.entryOf().next()
	exitPrior := c.exitOf().prev()
	exitNext := c.exitOf().next()

	if c.hasChildren() {
		setNext(entryPrior, entryNext)
		setNext(exitPrior, exitNext)
	} else {
		setNext(entryPrior, exitNext)
	}
	c.node.release()

	if c.edge == Entry {
		return entryPrior.next()
	}
	return exitNext
}

// eraseRange erases all nodes within [c, last) in post-order, i.e.
// children are erased before their parent. Exit edges of nodes whose entry
// edge is not part of the range are skipped. Returns last and the number of
// erased nodes.
func (c rawCursor[T]) eraseRange(last rawCursor[T]) (rawCursor[T], int) {
	depth, count := 0, 0
	position := c
	for !position.equal(last) {
		if position.edge == Entry {
			depth++
			position.moveNext()
			continue
		}
		if depth > 0 {
			position = position.erase()
			count++
		} else {
			position.moveNext()
		}
		depth = max(0, depth-1)
	}
	return last, count
}

// splice moves [first, last) to the position immediately before c and
// returns the new position of first. No node is copied or re-allocated.
// The range must not contain c.
func (c rawCursor[T]) splice(first, last rawCursor[T]) rawCursor[T] {
	if first.equal(last) || first.equal(c) {
		return c
	}
	back := last.prev()
	setNext(first.prev(), last)
	setNext(c.prev(), first)
	setNext(back, c)
	return first
}

func (c rawCursor[T]) String() string {
	if c.edge == Entry {
		return fmt.Sprintf("-->%p", c.node)
	}
	return fmt.Sprintf("%p-->", c.node)
}
