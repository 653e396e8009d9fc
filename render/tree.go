package render

import (
	"github.com/npillmayer/skog"
	"github.com/xlab/treeprint"
)

// TreeString renders f as an indented tree with box-drawing characters,
// the way the tree(1) command does:
//
//	.
//	└── A
//	    ├── B
//	    └── C
//	        └── D
//
// Colors and Compact are ignored.
func TreeString[T any](f *skog.Forest[T], label func(T) string, config *Config) string {
	config = config.normalized()
	label = labelFunc(label, config)
	tree := treeprint.New()
	branches := []treeprint.Tree{tree}
	c := f.Begin()
	for !c.IsEnd() {
		v, _ := c.Current()
		top := branches[len(branches)-1]
		switch {
		case c.Edge() == skog.Entry && c.HasChildren():
			branches = append(branches, top.AddBranch(label(v)))
		case c.Edge() == skog.Entry:
			top.AddNode(label(v))
		case c.HasChildren():
			branches = branches[:len(branches)-1]
		}
		if err := c.Next(); err != nil {
			tracer().Errorf("render: tree walk: %v", err)
			break
		}
	}
	return tree.String()
}
