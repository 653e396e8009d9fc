package skog

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Forest2Dot outputs the structure of a forest in Graphviz DOT format
// (for debugging purposes). label formats node values; if it is nil,
// values are printed with %v.
//
// Top-level nodes are drawn as children of an anonymous root, which
// stands for the sentinel.
func Forest2Dot[T any](f *Forest[T], w io.Writer, label func(T) string) {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	rootID := ids.alloc(f.sentinel())
	nodelist := fmt.Sprintf("\"%d\" %s;\n", rootID, rootNode())
	edgelist := ""
	parents := []int{rootID}
	end := f.rawEnd()
	for c := f.rawBegin(); !c.equal(end); c.moveNext() {
		if c.edge == Exit {
			parents = parents[:len(parents)-1]
			continue
		}
		ID := ids.alloc(c.node)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, dotEscaper.Replace(label(c.node.value)),
			nodeDotStyles(c.hasChildren()))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", parents[len(parents)-1], ID)
		parents = append(parents, ID)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// dotEscaper makes a label safe for a quoted DOT string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func rootNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(inner bool) string {
	s := ",style=filled"
	if inner {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	} else {
		s += ",shape=box"
	}
	return s
}
