/*
Package skog implements a forest, an ordered collection of multi-way trees,
held in one doubly-linked structure.

Forests

Every node of a forest has two visitable positions, an entry edge and an exit
edge. Descending into a node passes its entry edge, ascending out of it passes
its exit edge. Walking a forest from Begin to End therefore visits

	enter A, enter B, exit B, enter C, enter D, exit D, exit C, exit A

for a tree A(B, C(D)), i.e., pre-order and post-order at the same time,
without recursion and without an explicit stack.

The topology is encoded in four links per node, two for the entry edge and
two for the exit edge. A leaf's entry edge links to its own exit edge; an
inner node's entry edge links to the entry edge of its first child, and its
exit edge is linked from the exit edge of its last child. Each forest owns
one payload-less sentinel node, which acts as the root (its entry edge)
and as the end marker (its exit edge).

Cursors

Positions are addressed by cursors, i.e. (node, edge) pairs. A Cursor is
read-only, a CursorMut may insert, remove and splice. All structural edits
are O(1), with the exception of erasing whole subtrees:

	Operation       |  Cost
	----------------+-------
	Insert          |  O(1)
	Remove          |  O(1)
	RemoveSubtree   |  O(k)
	Splice          |  O(1)
	Clear           |  O(n)
	Size            |  O(1), O(n) if the cached size is stale

A forest allows either one mutable cursor or any number of read cursors at
a time. Acquiring a mutable cursor invalidates all read cursors of the
forest, acquiring a read cursor invalidates the mutable cursor. Operating
on an invalidated cursor, or on a cursor positioned on a node which has
since been removed, results in ErrInvalidCursor.

Forests are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package skog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ForestError is an error type for the skog module
type ForestError string

func (e ForestError) Error() string {
	return string(e)
}

// ErrInvalidCursor is flagged whenever a cursor is used after it has been
// invalidated, either by acquiring a conflicting cursor, by clearing or
// splicing away its forest, or by removing the node it is positioned on.
const ErrInvalidCursor = ForestError("invalid cursor")

// ErrCursorExhausted is flagged when moving a cursor past End or before Root.
const ErrCursorExhausted = ForestError("cursor exhausted")

// ErrIllegalPosition is flagged for edits at positions which do not accept
// them, e.g. inserting at the root position or removing the sentinel.
const ErrIllegalPosition = ForestError("illegal position for edit")

// ErrSelfSplice signals an attempt to splice a forest into itself.
const ErrSelfSplice = ForestError("cannot splice a forest into itself")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ForestError("illegal arguments")

// ErrInconsistent is reported by Check for a forest with broken links.
const ErrInconsistent = ForestError("inconsistent forest structure")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
