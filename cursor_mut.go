package skog

import "fmt"

// CursorMut is a position within a forest which allows structural edits.
//
// At most one mutable cursor of a forest is valid at any time. Acquiring a
// new mutable cursor or a read cursor for the forest invalidates it, as does
// clearing the forest or splicing it into another one.
type CursorMut[T any] struct {
	forest *Forest[T]
	raw    rawCursor[T]
	gen    uint32
	token  uint64
}

// Err returns ErrInvalidCursor if c may no longer be used, nil otherwise.
func (c *CursorMut[T]) Err() error {
	if c == nil || c.forest == nil || c.raw.node == nil {
		return ErrInvalidCursor
	}
	if c.token != c.forest.writer || c.gen != c.raw.node.gen {
		return ErrInvalidCursor
	}
	return nil
}

// Size returns the number of nodes of the forest c belongs to.
func (c *CursorMut[T]) Size() int {
	return c.forest.Size()
}

// Empty reports whether the forest c belongs to has no nodes.
func (c *CursorMut[T]) Empty() bool {
	return c.forest.Empty()
}

// Edge returns the edge c is positioned on.
func (c *CursorMut[T]) Edge() Edge {
	return c.raw.edge
}

// Current returns a pointer to the value of the node c is positioned on,
// allowing the value to be modified in place. It returns false at the root
// and end positions and for invalid cursors.
func (c *CursorMut[T]) Current() (*T, bool) {
	if c.Err() != nil || c.forest.isSentinel(c.raw) {
		return nil, false
	}
	return &c.raw.node.value, true
}

// HasChildren reports whether the node under c has child nodes.
func (c *CursorMut[T]) HasChildren() bool {
	if c.Err() != nil {
		return false
	}
	return c.raw.hasChildren()
}

// IsRoot reports whether c is positioned at the root position.
func (c *CursorMut[T]) IsRoot() bool {
	return c.forest.isSentinel(c.raw) && c.raw.edge == Entry
}

// IsEnd reports whether c is positioned at the end position.
func (c *CursorMut[T]) IsEnd() bool {
	return c.forest.isSentinel(c.raw) && c.raw.edge == Exit
}

// ToEntry moves c to the entry edge of its node. Inserting at an entry edge
// places new nodes before the node, as preceding siblings.
func (c *CursorMut[T]) ToEntry() {
	c.raw = c.raw.entryOf()
}

// ToExit moves c to the exit edge of its node. Inserting at an exit edge
// appends new nodes as last children of the node.
func (c *CursorMut[T]) ToExit() {
	c.raw = c.raw.exitOf()
}

// Next advances c to the following edge.
func (c *CursorMut[T]) Next() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsEnd() {
		return ErrCursorExhausted
	}
	c.moveTo(c.raw.next())
	return nil
}

// Prev moves c to the preceding edge.
func (c *CursorMut[T]) Prev() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsRoot() {
		return ErrCursorExhausted
	}
	c.moveTo(c.raw.prev())
	return nil
}

// NextChild skips the subtree of the node under c, see Cursor.NextChild.
func (c *CursorMut[T]) NextChild() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.forest.isSentinel(c.raw) {
		return ErrCursorExhausted
	}
	r := c.raw.entryOf()
	r.moveNextChild()
	c.moveTo(r)
	return nil
}

// PrevChild steps back to the entry edge of the previous sibling, see
// Cursor.PrevChild.
func (c *CursorMut[T]) PrevChild() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsRoot() {
		return ErrCursorExhausted
	}
	r := c.raw
	r.movePrevChild()
	c.moveTo(r.entryOf())
	return nil
}

func (c *CursorMut[T]) moveTo(r rawCursor[T]) {
	c.raw = r
	c.gen = r.node.gen
}

// Insert creates a new node holding value immediately before the position of
// c. c is not moved: after inserting at an exit edge, subsequent inserts
// append further children after the new node.
func (c *CursorMut[T]) Insert(value T) error {
	_, err := c.insert(value)
	return err
}

// InsertAndMove inserts value like Insert and moves c to the entry edge of
// the new node.
func (c *CursorMut[T]) InsertAndMove(value T) error {
	r, err := c.insert(value)
	if err == nil {
		c.moveTo(r)
	}
	return err
}

func (c *CursorMut[T]) insert(value T) (rawCursor[T], error) {
	if err := c.Err(); err != nil {
		return c.raw, err
	}
	if c.IsRoot() {
		return c.raw, fmt.Errorf("%w: cannot insert at root", ErrIllegalPosition)
	}
	f := c.forest
	if f.sizeValid() {
		f.size++
	}
	r := c.raw.insert(value)
	tracer().Debugf("forest: inserted node %v before %v", r, c.raw)
	return r, nil
}

// Splice moves all nodes of other to the position immediately before c,
// preserving their order and nesting. No nodes are copied. c is not moved.
//
// Afterwards other is empty and all of its cursors are invalid. Splicing a
// forest into itself results in ErrSelfSplice.
func (c *CursorMut[T]) Splice(other *Forest[T]) error {
	_, err := c.splice(other)
	return err
}

// SpliceAndMove splices like Splice and moves c to the first spliced
// position. If other is empty, c is not moved.
func (c *CursorMut[T]) SpliceAndMove(other *Forest[T]) error {
	r, err := c.splice(other)
	if err == nil {
		c.moveTo(r)
	}
	return err
}

func (c *CursorMut[T]) splice(other *Forest[T]) (rawCursor[T], error) {
	if err := c.Err(); err != nil {
		return c.raw, err
	}
	if other == nil {
		return c.raw, fmt.Errorf("%w: splice of nil forest", ErrIllegalArguments)
	}
	if other == c.forest {
		return c.raw, ErrSelfSplice
	}
	if c.IsRoot() {
		return c.raw, fmt.Errorf("%w: cannot splice at root", ErrIllegalPosition)
	}
	f := c.forest
	if f.sizeValid() && other.sizeValid() {
		f.size += other.Size()
	} else {
		f.size = 0
	}
	r := c.raw.splice(other.rawBegin(), other.rawEnd())
	other.size = 0
	other.invalidate()
	tracer().Debugf("forest: spliced forest before %v", c.raw)
	return r, nil
}

// Remove erases the node under c. Child nodes of the erased node take its
// place, keeping their order, one level up. c moves to the position
// following the erased edge: the next entry within the same family if c was
// on the entry edge, otherwise the edge following the erased exit edge.
//
// Other cursors positioned on the erased node become invalid.
func (c *CursorMut[T]) Remove() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.forest.isSentinel(c.raw) {
		return fmt.Errorf("%w: cannot remove sentinel", ErrIllegalPosition)
	}
	f := c.forest
	if f.sizeValid() {
		f.size--
	}
	tracer().Debugf("forest: remove node at %v", c.raw)
	c.moveTo(c.raw.erase())
	return nil
}

// RemoveSubtree erases the node under c together with all of its
// descendants. Nodes are erased children first. c moves to the position
// following the exit edge of the erased node. Returns the number of erased
// nodes.
func (c *CursorMut[T]) RemoveSubtree() (int, error) {
	if err := c.Err(); err != nil {
		return 0, err
	}
	if c.forest.isSentinel(c.raw) {
		return 0, fmt.Errorf("%w: cannot remove sentinel", ErrIllegalPosition)
	}
	f := c.forest
	valid := f.sizeValid()
	first := c.raw.entryOf()
	last, n := first.eraseRange(c.raw.exitOf().next())
	if valid {
		f.size -= n
	}
	tracer().Debugf("forest: removed subtree of %d nodes", n)
	c.moveTo(last)
	return n, nil
}

func (c *CursorMut[T]) String() string {
	return c.raw.String()
}
