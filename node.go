package skog

// link selects the direction of a node link.
type link uint8

const (
	prior link = iota
	next
)

// node is the storage unit of a forest. Links are kept in two families,
// indexed by edge: the entry family links the entry edges of nodes while
// descending, the exit family while ascending.
//
// For a leaf, links[Entry][next] points to the leaf itself. For a node with
// children, links[Entry][next] points to the first child and
// links[Exit][prior] points to the last child.
type node[T any] struct {
	links [2][2]*node[T] // [edge][prior|next]
	value T
	// valid is false for the sentinel and for released nodes.
	valid bool
	// gen is incremented on release and lets cursors detect removed nodes.
	gen uint32
}

func newNode[T any](value T) *node[T] {
	n := &node[T]{value: value, valid: true}
	n.init()
	return n
}

func newSentinel[T any]() *node[T] {
	n := &node[T]{}
	n.init()
	return n
}

// init links n to itself in both families, i.e. makes it a ring of one.
func (n *node[T]) init() {
	n.links = [2][2]*node[T]{{n, n}, {n, n}}
}

func (n *node[T]) link(e Edge, l link) *node[T] {
	return n.links[e][l]
}

func (n *node[T]) setLink(e Edge, l link, to *node[T]) {
	n.links[e][l] = to
}

// release drops the payload and the links of an erased node.
func (n *node[T]) release() {
	assert(n.valid, "release of sentinel or already released node")
	var zero T
	n.value = zero
	n.links = [2][2]*node[T]{}
	n.valid = false
	n.gen++
	if releaseHook != nil {
		releaseHook(n)
	}
}

// releaseHook is set by tests to observe node releases.
var releaseHook func(any)
