/*
Package render outputs forests as nested tags or as indented trees.

WriteTags walks a forest from begin to end and writes an opening tag for every
entry edge and a closing tag for every exit edge:

	<A>
		<B>
		</B>
		<C>
			<D>
			</D>
		</C>
	</A>

With Config.Compact set, the same forest renders as

	<A><B></B><C><D></D></C></A>

Console output may be colorized and long labels may be truncated to a display
width, respecting grapheme clusters and East Asian wide characters.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
