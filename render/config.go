package render

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	Indent        string         // indentation per level, defaults to a tab
	Compact       bool           // output everything on a single line
	Color         bool           // colorize tags
	MaxLabelWidth int            // truncate labels to this display width; 0 means no limit
	Context       *uax11.Context // context for display widths, defaults to uax11.LatinContext
	Palette       *Palette       // colors for tags, defaults to DefaultPalette
}

// Palette holds the colors for opening and closing tags.
type Palette struct {
	Open, Close *color.Color
}

// DefaultPalette is used if Config.Palette is nil.
var DefaultPalette = Palette{
	Open:  color.New(color.FgBlue),
	Close: color.New(color.FgRed),
}

func (config *Config) normalized() *Config {
	var c Config
	if config != nil {
		c = *config
	}
	if c.Indent == "" {
		c.Indent = "\t"
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Palette == nil {
		c.Palette = &DefaultPalette
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it enables colors and
// limits labels to half of the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			config.MaxLabelWidth = w / 2
		}
	}
	tracer().P("render", "console").Infof("color=%v, max label width=%d", config.Color, config.MaxLabelWidth)
	return config
}

var setupGraphemes sync.Once

// Truncate shortens s to at most width display positions, measured in
// ‘en’s, ending it with an ellipsis if anything has been cut. Grapheme
// clusters are never split. A width ≤ 0 leaves s unchanged.
func Truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 || s == "" {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	var out []byte
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if w+gw+1 > width { // reserve one position for the ellipsis
			break
		}
		out = append(out, g...)
		w += gw
	}
	return string(out) + "…"
}
