package skog

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Forest is an ordered collection of multi-way trees.
//
// A forest created by
//
//	Forest[T]{}
//
// is a valid object and behaves like an empty forest. Use New to get a
// pointer to a fresh one.
//
// A forest owns all of its nodes. Nodes enter a forest by insertion and leave
// it by removal, by Clear, or by being spliced into another forest.
type Forest[T any] struct {
	tail *node[T] // sentinel; root is its entry edge, end is its exit edge
	size int      // cached size, trustworthy if non-zero or forest is empty
	// version is bumped whenever read cursors have to be invalidated.
	version uint64
	// writer is the token of the one mutable cursor currently allowed.
	writer uint64
}

// New creates an empty forest.
func New[T any]() *Forest[T] {
	f := &Forest[T]{}
	f.sentinel()
	return f
}

func (f *Forest[T]) sentinel() *node[T] {
	if f.tail == nil {
		f.tail = newSentinel[T]()
	}
	return f.tail
}

// Size returns the number of nodes in the forest.
//
// Usually this is O(1). Splicing forests with stale sizes leaves the cached
// size untrustworthy, in which case Size counts all nodes and caches the
// result.
func (f *Forest[T]) Size() int {
	if !f.sizeValid() {
		f.size = f.count()
		tracer().Debugf("forest: re-counted size = %d", f.size)
	}
	return f.size
}

func (f *Forest[T]) sizeValid() bool {
	return f.size != 0 || f.Empty()
}

func (f *Forest[T]) count() int {
	n := 0
	end := f.rawEnd()
	for c := f.rawBegin(); !c.equal(end); c.moveNext() {
		if c.edge == Entry {
			n++
		}
	}
	return n
}

// Empty reports whether the forest has no nodes.
func (f *Forest[T]) Empty() bool {
	return f.rawBegin().equal(f.rawEnd())
}

// Clear removes all nodes from the forest. All cursors of the forest are
// invalidated.
func (f *Forest[T]) Clear() {
	_, n := f.rawBegin().eraseRange(f.rawEnd())
	tracer().Debugf("forest: cleared %d nodes", n)
	f.size = 0
	f.invalidate()
}

// invalidate revokes every cursor of f, read-only and mutable.
func (f *Forest[T]) invalidate() {
	f.version++
	f.writer++
}

// --- Cursor access ---------------------------------------------------------

// Root returns a read cursor on the root position, which is located before
// Begin. The root position carries no value.
//
// Acquiring a read cursor invalidates the mutable cursor of f, if any.
func (f *Forest[T]) Root() Cursor[T] {
	return f.reader(f.rawRoot())
}

// Begin returns a read cursor on the first position of f, i.e. the entry edge
// of the first top-level node. For an empty forest, Begin equals End.
func (f *Forest[T]) Begin() Cursor[T] {
	return f.reader(f.rawBegin())
}

// End returns a read cursor on the position past the last node of f.
func (f *Forest[T]) End() Cursor[T] {
	return f.reader(f.rawEnd())
}

// RootMut returns a mutable cursor on the root position.
//
// Acquiring a mutable cursor invalidates all other cursors of f.
func (f *Forest[T]) RootMut() *CursorMut[T] {
	return f.writerAt(f.rawRoot())
}

// BeginMut returns a mutable cursor on the first position of f.
func (f *Forest[T]) BeginMut() *CursorMut[T] {
	return f.writerAt(f.rawBegin())
}

// EndMut returns a mutable cursor on the position past the last node of f.
// Inserting at EndMut appends top-level nodes.
func (f *Forest[T]) EndMut() *CursorMut[T] {
	return f.writerAt(f.rawEnd())
}

func (f *Forest[T]) reader(c rawCursor[T]) Cursor[T] {
	f.writer++
	return Cursor[T]{
		forest:  f,
		raw:     c,
		gen:     c.node.gen,
		version: f.version,
	}
}

func (f *Forest[T]) writerAt(c rawCursor[T]) *CursorMut[T] {
	f.invalidate()
	return &CursorMut[T]{
		forest: f,
		raw:    c,
		gen:    c.node.gen,
		token:  f.writer,
	}
}

func (f *Forest[T]) rawRoot() rawCursor[T] {
	return rawCursor[T]{node: f.sentinel(), edge: Entry}
}

func (f *Forest[T]) rawBegin() rawCursor[T] {
	return f.rawRoot().next()
}

func (f *Forest[T]) rawEnd() rawCursor[T] {
	return rawCursor[T]{node: f.sentinel(), edge: Exit}
}

func (f *Forest[T]) isSentinel(c rawCursor[T]) bool {
	return c.node == f.tail
}
