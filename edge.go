package skog

// Edge selects one of the two positions of a node.
type Edge uint8

const (
	// Exit is the edge passed when ascending out of a node (post-order).
	Exit Edge = iota
	// Entry is the edge passed when descending into a node (pre-order).
	Entry
)

func edgeOf(entry bool) Edge {
	if entry {
		return Entry
	}
	return Exit
}

// Pivot returns the opposite edge.
func (e Edge) Pivot() Edge {
	if e == Entry {
		return Exit
	}
	return Entry
}

// IsEntry is true for the entry edge.
func (e Edge) IsEntry() bool { return e == Entry }

// IsExit is true for the exit edge.
func (e Edge) IsExit() bool { return e == Exit }

func (e Edge) String() string {
	switch e {
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	}
	return "<unknown edge>"
}
