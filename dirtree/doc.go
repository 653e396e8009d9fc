/*
Package dirtree builds forests of directory names from a file system.

Every directory becomes a node, its sub-directories become its children.
Files and hidden directories (names starting with '.') are skipped.

	f, err := dirtree.Build("/usr/local")

Builders may publish a Visit event for every directory they enter. This is
useful for giving progress feedback while walking large trees:

	b := dirtree.NewBuilder(ctx)
	ch, _ := b.Subscribe(ctx, 64)
	go report(ch)
	f, err := b.Build(path)
	b.Close()

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dirtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
