/*
Package html creates forests from HTML documents and fragments.

Element nodes become forest nodes, nested the way they are nested in the
parse tree. Document nodes are transparent, i.e. their children become
top-level nodes of the forest.

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ElementForest creates a forest of tag names for an HTML node and all its
// descendents. Text, comment and doctype nodes are dropped.
func ElementForest(n *html.Node) (*skog.Forest[string], error) {
	if n == nil {
		return nil, skog.ErrIllegalArguments
	}
	return collect(n, elementName)
}

// NodeForest creates a forest of element and text nodes for an HTML node
// and all its descendents. Text nodes consisting of white space only are
// dropped. Text nodes are always leaves.
func NodeForest(n *html.Node) (*skog.Forest[*html.Node], error) {
	if n == nil {
		return nil, skog.ErrIllegalArguments
	}
	return collect(n, elementOrText)
}

// FromHTML parses an HTML fragment, as it would appear within a <body>
// element, and creates a forest of its element tag names.
func FromHTML(input io.Reader) (*skog.Forest[string], error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	f := skog.New[string]()
	cur := f.EndMut()
	for _, n := range nodes {
		sub, err := collect(n, elementName)
		if err != nil {
			return nil, err
		}
		if err = cur.Splice(sub); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("html: fragment forest has %d elements", f.Size())
	return f, nil
}

func elementName(n *html.Node) (string, bool) {
	return n.Data, n.Type == html.ElementNode
}

func elementOrText(n *html.Node) (*html.Node, bool) {
	switch n.Type {
	case html.ElementNode:
		return n, true
	case html.TextNode:
		return n, strings.TrimSpace(n.Data) != ""
	}
	return nil, false
}

// collect builds the forest for n: a node for n if value accepts it, with the
// forests of n's children spliced in as its children. Document nodes only
// contribute their children.
func collect[T any](n *html.Node, value func(*html.Node) (T, bool)) (*skog.Forest[T], error) {
	f := skog.New[T]()
	cur := f.EndMut()
	if v, ok := value(n); ok {
		if err := cur.InsertAndMove(v); err != nil {
			return nil, err
		}
		cur.ToExit()
	} else if n.Type != html.DocumentNode {
		return f, nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sub, err := collect(c, value)
		if err != nil {
			return nil, err
		}
		if err = cur.Splice(sub); err != nil {
			return nil, err
		}
	}
	return f, nil
}
