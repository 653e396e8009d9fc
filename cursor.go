package skog

// Cursor is a read-only position within a forest: a node together with one
// of its edges.
//
// Cursors are values and may be copied freely. A cursor stays valid until a
// mutable cursor is acquired for its forest, the forest is cleared or spliced
// into another forest, or the node it is positioned on is removed.
type Cursor[T any] struct {
	forest  *Forest[T]
	raw     rawCursor[T]
	gen     uint32
	version uint64
}

// Err returns ErrInvalidCursor if c may no longer be used, nil otherwise.
func (c Cursor[T]) Err() error {
	if c.forest == nil || c.raw.node == nil {
		return ErrInvalidCursor
	}
	if c.version != c.forest.version || c.gen != c.raw.node.gen {
		return ErrInvalidCursor
	}
	return nil
}

// Edge returns the edge c is positioned on.
func (c Cursor[T]) Edge() Edge {
	return c.raw.edge
}

// Equal reports whether c and other are positioned on the same edge of the
// same node.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.raw.equal(other.raw)
}

// Current returns the value of the node c is positioned on. It returns false
// at the root and end positions, as they carry no value, and for invalid
// cursors.
func (c Cursor[T]) Current() (T, bool) {
	var zero T
	if c.Err() != nil || c.forest.isSentinel(c.raw) {
		return zero, false
	}
	return c.raw.node.value, true
}

// HasChildren reports whether the node under c has child nodes. At the root
// and end positions, HasChildren reports whether the forest is non-empty.
func (c Cursor[T]) HasChildren() bool {
	if c.Err() != nil {
		return false
	}
	return c.raw.hasChildren()
}

// IsRoot reports whether c is positioned at the root position.
func (c Cursor[T]) IsRoot() bool {
	return c.forest != nil && c.forest.isSentinel(c.raw) && c.raw.edge == Entry
}

// IsEnd reports whether c is positioned at the end position.
func (c Cursor[T]) IsEnd() bool {
	return c.forest != nil && c.forest.isSentinel(c.raw) && c.raw.edge == Exit
}

// ToEntry moves c to the entry edge of its node.
func (c *Cursor[T]) ToEntry() {
	c.raw = c.raw.entryOf()
}

// ToExit moves c to the exit edge of its node.
func (c *Cursor[T]) ToExit() {
	c.raw = c.raw.exitOf()
}

// Next advances c to the following edge. Advancing from End results in
// ErrCursorExhausted.
func (c *Cursor[T]) Next() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsEnd() {
		return ErrCursorExhausted
	}
	c.raw.moveNext()
	c.gen = c.raw.node.gen
	return nil
}

// Prev moves c to the preceding edge. Moving back from Root results in
// ErrCursorExhausted.
func (c *Cursor[T]) Prev() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsRoot() {
		return ErrCursorExhausted
	}
	c.raw.movePrev()
	c.gen = c.raw.node.gen
	return nil
}

// NextChild skips the subtree of the node under c: c moves to the entry edge
// of the next sibling or, for a last child, to the exit edge of the parent.
func (c *Cursor[T]) NextChild() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.forest.isSentinel(c.raw) {
		return ErrCursorExhausted
	}
	c.raw = c.raw.entryOf()
	c.raw.moveNextChild()
	c.gen = c.raw.node.gen
	return nil
}

// PrevChild moves c from an entry edge to the entry edge of the previous
// sibling or, for a first child, to the entry edge of the parent. From an
// exit edge, c moves to the entry edge of the last child or, for a leaf, to
// the entry edge of the node itself.
func (c *Cursor[T]) PrevChild() error {
	if err := c.Err(); err != nil {
		return err
	}
	if c.IsRoot() {
		return ErrCursorExhausted
	}
	c.raw.movePrevChild()
	c.raw = c.raw.entryOf()
	c.gen = c.raw.node.gen
	return nil
}

func (c Cursor[T]) String() string {
	return c.raw.String()
}
