package skog

import "iter"

// EdgeCursor is a read cursor which stops on one kind of edge only. An entry
// edge cursor walks a forest in pre-order, an exit edge cursor walks it in
// post-order.
type EdgeCursor[T any] struct {
	edge   Edge
	start  Cursor[T]
	cursor Cursor[T]
}

// NewEdgeCursor creates an edge cursor for edge, positioned on the first
// position at or after c which is on edge. If there is none, the edge cursor
// is positioned at End. The root position is never part of an edge walk.
//
// If c is invalid, ErrInvalidCursor is returned.
func NewEdgeCursor[T any](edge Edge, c Cursor[T]) (EdgeCursor[T], error) {
	ec := EdgeCursor[T]{edge: edge, cursor: c}
	if err := c.Err(); err != nil {
		return ec, err
	}
	if ec.cursor.IsRoot() {
		if err := ec.cursor.Next(); err != nil {
			return ec, err
		}
	}
	if err := ec.findEdge(); err != nil {
		return ec, err
	}
	ec.start = ec.cursor
	return ec, nil
}

// Edge returns the kind of edge ec stops on.
func (ec EdgeCursor[T]) Edge() Edge {
	return ec.edge
}

// Cursor returns the underlying read cursor.
func (ec EdgeCursor[T]) Cursor() Cursor[T] {
	return ec.cursor
}

// Current returns the value of the node ec is positioned on, or false at End.
func (ec EdgeCursor[T]) Current() (T, bool) {
	return ec.cursor.Current()
}

// Next advances ec to the next position on its edge, or to End.
func (ec *EdgeCursor[T]) Next() error {
	if err := ec.cursor.Next(); err != nil {
		return err
	}
	return ec.findEdge()
}

// Prev moves ec back to the previous position on its edge. If there is none,
// ec is left at Root and ErrCursorExhausted is returned.
func (ec *EdgeCursor[T]) Prev() error {
	for {
		if err := ec.cursor.Prev(); err != nil {
			return err
		}
		if ec.cursor.IsRoot() {
			return ErrCursorExhausted
		}
		if ec.cursor.Edge() == ec.edge {
			return nil
		}
	}
}

// findEdge moves forward until the cursor is on the wanted edge or at End.
func (ec *EdgeCursor[T]) findEdge() error {
	for ec.cursor.Edge() != ec.edge && !ec.cursor.IsEnd() {
		if err := ec.cursor.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Range returns an iterator over the values on the edge of ec, starting at
// the position ec was created at. Each call of the iterator starts over.
// Iteration stops early if the forest is edited while iterating.
func (ec EdgeCursor[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := ec.start
		for {
			v, ok := c.Current()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
			if c.Next() != nil {
				return
			}
			for c.Edge() != ec.edge && !c.IsEnd() {
				if c.Next() != nil {
					return
				}
			}
		}
	}
}

// Entries returns an iterator over all values of f in pre-order.
func (f *Forest[T]) Entries() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ec, err := NewEdgeCursor(Entry, f.Begin()); err == nil {
			ec.Range()(yield)
		}
	}
}

// Exits returns an iterator over all values of f in post-order.
func (f *Forest[T]) Exits() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ec, err := NewEdgeCursor(Exit, f.Begin()); err == nil {
			ec.Range()(yield)
		}
	}
}

// All returns an iterator over every position of f from Begin to End,
// yielding the edge and the value of each position. Every value is yielded
// twice, once for its entry edge and once for its exit edge.
func (f *Forest[T]) All() iter.Seq2[Edge, T] {
	return func(yield func(Edge, T) bool) {
		for c := f.Begin(); !c.IsEnd(); {
			v, ok := c.Current()
			if !ok || !yield(c.Edge(), v) {
				return
			}
			if c.Next() != nil {
				return
			}
		}
	}
}
