package skog

import "testing"

func TestClearReleasesEveryNodeOnce(t *testing.T) {
	released := make(map[any]int)
	releaseHook = func(n any) { released[n]++ }
	defer func() { releaseHook = nil }()
	//
	f := buildABCD(t)
	cur := f.EndMut()
	must(t, cur.Splice(leaves(t, "x", "y", "z")))
	nodes := make(map[*node[string]]bool)
	end := f.rawEnd()
	for c := f.rawBegin(); !c.equal(end); c.moveNext() {
		nodes[c.node] = true
	}
	f.Clear()
	if len(released) != len(nodes) || len(nodes) != 7 {
		t.Fatalf("expected 7 released nodes, have %d of %d", len(released), len(nodes))
	}
	for n := range nodes {
		if released[n] != 1 {
			t.Errorf("node released %d times", released[n])
		}
		if n.valid || n.value != "" || n.links[Entry][next] != nil {
			t.Errorf("expected released node to drop value and links")
		}
		if n.gen != 1 {
			t.Errorf("expected generation 1, is %d", n.gen)
		}
	}
}

func TestEdgePivot(t *testing.T) {
	if Entry.Pivot() != Exit || Exit.Pivot() != Entry {
		t.Errorf("pivot does not flip edges")
	}
	if Entry.String() != "entry" || Exit.String() != "exit" {
		t.Errorf("unexpected edge names")
	}
}

func TestRawInsertKeepsRing(t *testing.T) {
	s := newSentinel[int]()
	end := rawCursor[int]{node: s, edge: Exit}
	a := end.insert(1)
	if !a.next().equal(a.exitOf()) {
		t.Errorf("expected new node to be a leaf")
	}
	if !a.exitOf().next().equal(end) {
		t.Errorf("expected exit of new node to lead to end")
	}
	if !end.prev().equal(a.exitOf()) {
		t.Errorf("expected end to be preceded by exit of new node")
	}
	b := a.exitOf().insert(2) // child of a
	if !a.hasChildren() || !a.next().equal(b) {
		t.Errorf("expected b to be first child of a")
	}
	if !b.exitOf().next().equal(a.exitOf()) {
		t.Errorf("expected exit of b to lead to exit of a")
	}
}

func TestRawSpliceNoop(t *testing.T) {
	s := newSentinel[int]()
	end := rawCursor[int]{node: s, edge: Exit}
	a := end.insert(1)
	if r := end.splice(a, a); !r.equal(end) {
		t.Errorf("expected empty range splice to return destination")
	}
	if r := a.splice(a, end); !r.equal(a) {
		t.Errorf("expected splice onto range start to return destination")
	}
}
