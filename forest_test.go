package skog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// buildABCD creates the forest A(B, C(D)).
func buildABCD(t *testing.T) *Forest[string] {
	t.Helper()
	f := New[string]()
	cur := f.EndMut()
	must(t, cur.InsertAndMove("A"))
	cur.ToExit()
	must(t, cur.Insert("B"))
	must(t, cur.InsertAndMove("C"))
	cur.ToExit()
	must(t, cur.Insert("D"))
	return f
}

// leaves creates a forest of top-level leaf nodes.
func leaves(t *testing.T, values ...string) *Forest[string] {
	t.Helper()
	f := New[string]()
	cur := f.EndMut()
	for _, v := range values {
		must(t, cur.Insert(v))
	}
	return f
}

func walk[T any](f *Forest[T]) []string {
	var out []string
	for e, v := range f.All() {
		out = append(out, fmt.Sprintf("%s %v", e, v))
	}
	return out
}

func tags(f *Forest[string]) string {
	var b strings.Builder
	for e, v := range f.All() {
		if e == Entry {
			b.WriteString("<" + v + ">")
		} else {
			b.WriteString("</" + v + ">")
		}
	}
	return b.String()
}

func TestEmptyForest(t *testing.T) {
	f := New[int]()
	if !f.Empty() || f.Size() != 0 {
		t.Fatalf("expected new forest to be empty, size=%d", f.Size())
	}
	if !f.Begin().Equal(f.End()) {
		t.Errorf("expected begin == end for empty forest")
	}
	if f.Root().Equal(f.End()) {
		t.Errorf("expected root != end")
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestZeroForest(t *testing.T) {
	var f Forest[int]
	if !f.Empty() || f.Size() != 0 {
		t.Fatalf("expected zero forest to be empty")
	}
	cur := f.EndMut()
	must(t, cur.Insert(7))
	if f.Size() != 1 {
		t.Errorf("expected size 1, have %d", f.Size())
	}
	if v, ok := f.Begin().Current(); !ok || v != 7 {
		t.Errorf("expected begin to hold 7, have %v/%v", v, ok)
	}
}

func TestBuildABCD(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := buildABCD(t)
	expected := []string{
		"entry A", "entry B", "exit B", "entry C",
		"entry D", "exit D", "exit C", "exit A",
	}
	got := walk(f)
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected walk:\n%v\nexpected\n%v", got, expected)
	}
	if f.Size() != 4 {
		t.Errorf("expected size 4, have %d", f.Size())
	}
	if s := tags(f); s != "<A><B></B><C><D></D></C></A>" {
		t.Errorf("unexpected tags %q", s)
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestWalkBackwards(t *testing.T) {
	f := buildABCD(t)
	forward := walk(f)
	var backward []string
	c := f.End()
	for {
		err := c.Prev()
		if err == ErrCursorExhausted {
			t.Fatalf("walked past root")
		}
		must(t, err)
		if c.IsRoot() {
			break
		}
		v, _ := c.Current()
		backward = append(backward, fmt.Sprintf("%s %v", c.Edge(), v))
	}
	if len(backward) != len(forward) {
		t.Fatalf("expected %d positions backwards, have %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Errorf("position %d: forward %q, backward %q", i, forward[i], backward[len(backward)-1-i])
		}
	}
	if err := c.Prev(); err != ErrCursorExhausted {
		t.Errorf("expected moving before root to be exhausted, have %v", err)
	}
}

func TestNextAtEndIsExhausted(t *testing.T) {
	f := buildABCD(t)
	c := f.End()
	if err := c.Next(); err != ErrCursorExhausted {
		t.Errorf("expected ErrCursorExhausted, have %v", err)
	}
	if !c.IsEnd() {
		t.Errorf("expected cursor to stay at end")
	}
}

func TestBigForest(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	parent := func(name string, children ...string) *Forest[string] {
		f := New[string]()
		cur := f.EndMut()
		must(t, cur.InsertAndMove(name))
		cur.ToExit()
		for _, ch := range children {
			must(t, cur.Insert(ch))
		}
		return f
	}
	c := parent("C", "F", "G", "H")
	d := parent("D", "I", "J", "K")
	e := parent("E")
	b := parent("B")
	cur := b.EndMut()
	must(t, cur.Prev()) // exit edge of B
	must(t, cur.Splice(c))
	must(t, cur.Splice(d))
	must(t, cur.Splice(e))
	a := parent("A")
	cur = a.EndMut()
	must(t, cur.Prev())
	must(t, cur.Splice(b))
	//
	if a.Size() != 11 {
		t.Errorf("expected size 11, have %d", a.Size())
	}
	for _, spliced := range []*Forest[string]{b, c, d, e} {
		if !spliced.Empty() || spliced.Size() != 0 {
			t.Errorf("expected spliced forest to be empty")
		}
	}
	expected := "ABCFFGGHHCDIIJJKKDEEBA"
	var got strings.Builder
	pos := a.Begin()
	for !pos.IsEnd() {
		v, ok := pos.Current()
		if !ok {
			t.Fatalf("no value at %v", pos)
		}
		got.WriteString(v)
		must(t, pos.Next())
	}
	if got.String() != expected {
		t.Errorf("expected walk %s, have %s", expected, got.String())
	}
	if !pos.Equal(a.End()) {
		t.Errorf("expected cursor at end")
	}
	if err := a.Check(); err != nil {
		t.Error(err)
	}
	a.Clear()
	if !a.Empty() || a.Size() != 0 {
		t.Errorf("expected cleared forest to be empty")
	}
}

func TestSpliceSiblingsUnderLeaf(t *testing.T) {
	f := New[string]()
	cur := f.EndMut()
	must(t, cur.InsertAndMove("B"))
	cur.ToExit()
	before := f.Size()
	g := leaves(t, "F", "G", "H")
	if g.Size() != 3 {
		t.Fatalf("expected source size 3, have %d", g.Size())
	}
	must(t, cur.Splice(g))
	if f.Size() != before+3 {
		t.Errorf("expected size %d, have %d", before+3, f.Size())
	}
	if g.Size() != 0 || !g.Empty() {
		t.Errorf("expected source forest to be empty after splice")
	}
	if s := tags(f); s != "<B><F></F><G></G><H></H></B>" {
		t.Errorf("unexpected tags %q", s)
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestSpliceBetweenSiblings(t *testing.T) {
	f := leaves(t, "X", "Y")
	cur := f.BeginMut()
	must(t, cur.Next()) // exit X
	must(t, cur.Next()) // entry Y
	g := buildABCD(t)
	must(t, cur.SpliceAndMove(g))
	if v, ok := cur.Current(); !ok || *v != "A" {
		t.Errorf("expected cursor on A after SpliceAndMove")
	}
	if s := tags(f); s != "<X></X><A><B></B><C><D></D></C></A><Y></Y>" {
		t.Errorf("unexpected tags %q", s)
	}
	if f.Size() != 6 {
		t.Errorf("expected size 6, have %d", f.Size())
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestSpliceEmptyForest(t *testing.T) {
	f := buildABCD(t)
	cur := f.EndMut()
	must(t, cur.SpliceAndMove(New[string]()))
	if !cur.IsEnd() {
		t.Errorf("expected cursor not to move for empty splice")
	}
	if f.Size() != 4 {
		t.Errorf("expected size 4, have %d", f.Size())
	}
}

func TestSpliceErrors(t *testing.T) {
	f := buildABCD(t)
	cur := f.EndMut()
	if err := cur.Splice(f); err != ErrSelfSplice {
		t.Errorf("expected ErrSelfSplice, have %v", err)
	}
	if err := cur.Splice(nil); !errorIs(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, have %v", err)
	}
	root := f.RootMut()
	if err := root.Splice(leaves(t, "x")); !errorIs(err, ErrIllegalPosition) {
		t.Errorf("expected ErrIllegalPosition, have %v", err)
	}
}

func TestSpliceWithStaleSize(t *testing.T) {
	f := buildABCD(t)
	g := leaves(t, "x", "y")
	g.size = 0 // force stale cache
	cur := f.EndMut()
	must(t, cur.Splice(g))
	if f.size != 0 {
		t.Errorf("expected cached size to be invalidated, is %d", f.size)
	}
	if f.Size() != 6 {
		t.Errorf("expected recounted size 6, have %d", f.Size())
	}
	if f.size != 6 {
		t.Errorf("expected recounted size to be cached")
	}
}

func TestClear(t *testing.T) {
	f := buildABCD(t)
	r := f.Begin()
	f.Clear()
	if !f.Empty() || f.Size() != 0 {
		t.Errorf("expected cleared forest to be empty")
	}
	if r.Err() != ErrInvalidCursor {
		t.Errorf("expected cursor to be invalidated by Clear")
	}
	// a cleared forest is reusable
	cur := f.EndMut()
	must(t, cur.Insert("Z"))
	if s := tags(f); s != "<Z></Z>" {
		t.Errorf("unexpected tags %q", s)
	}
}
