package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/skog"
)

// WriteTags outputs f as nested tags to w. label formats node values; if it
// is nil, values are formatted with %v. A nil config is replaced by defaults.
func WriteTags[T any](w io.Writer, f *skog.Forest[T], label func(T) string, config *Config) error {
	if w == nil || f == nil {
		return skog.ErrIllegalArguments
	}
	config = config.normalized()
	label = labelFunc(label, config)
	ew := &errWriter{w: w}
	depth := 0
	for edge, v := range f.All() {
		name := label(v)
		if edge == skog.Entry {
			ew.tag(config, depth, config.Palette.Open, "<"+name+">")
			depth++
			continue
		}
		depth--
		ew.tag(config, depth, config.Palette.Close, "</"+name+">")
	}
	if config.Compact && depth == 0 && !f.Empty() {
		ew.write("\n")
	}
	if ew.err != nil {
		tracer().Errorf("render: %v", ew.err)
	}
	return ew.err
}

// Print outputs f as nested tags to stdout, configured for the terminal.
func Print[T any](f *skog.Forest[T], label func(T) string) error {
	return WriteTags(os.Stdout, f, label, ConfigFromTerminal())
}

func labelFunc[T any](label func(T) string, config *Config) func(T) string {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	if config.MaxLabelWidth <= 0 {
		return label
	}
	return func(v T) string {
		return Truncate(label(v), config.MaxLabelWidth, config.Context)
	}
}

// errWriter remembers the first write error and drops all further output.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) tag(config *Config, depth int, c *color.Color, tag string) {
	if config.Color && c != nil {
		forced := *c // do not touch the caller's palette
		forced.EnableColor()
		tag = forced.Sprint(tag)
	}
	if config.Compact {
		ew.write(tag)
		return
	}
	ew.write(strings.Repeat(config.Indent, max(0, depth)) + tag + "\n")
}
