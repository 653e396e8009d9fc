/*
Skogdirs prints the directory structure below a path as a forest.

Usage:

	skogdirs [--tree | --dot | --compact] [--color] [--max-width N] [--verbose] [dir]

Without a directory argument the current working directory is used. Hidden
directories and plain files are skipped.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/skog"
	"github.com/npillmayer/skog/dirtree"
	"github.com/npillmayer/skog/render"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:      "skogdirs",
		Usage:     "print a directory structure as a forest",
		ArgsUsage: "[dir]",
		Version:   versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tree",
				Usage: "draw an indented tree instead of tags",
			},
			&cli.BoolFlag{
				Name:  "dot",
				Usage: "output Graphviz DOT format",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "output all tags on a single line",
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "colorize tags, even if stdout is not a terminal",
				EnvVars: []string{"SKOG_COLOR"},
			},
			&cli.IntFlag{
				Name:  "max-width",
				Usage: "truncate directory names to this display width",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "report every directory visited to stderr",
			},
		},
		Action: runDirs,
	}
	return app.Run(args)
}

func runDirs(cctx *cli.Context) error {
	dir := "."
	if cctx.Args().Len() > 1 {
		return fmt.Errorf("expected at most one directory argument")
	} else if cctx.Args().Len() == 1 {
		dir = cctx.Args().First()
	}
	ctx, cancel := context.WithCancel(cctx.Context)
	defer cancel()

	builder := dirtree.NewBuilder(ctx)
	var wg sync.WaitGroup
	if cctx.Bool("verbose") {
		visits, ok := builder.Subscribe(ctx, 16)
		if !ok {
			return fmt.Errorf("cannot subscribe to directory visits")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			reportVisits(os.Stderr, visits)
		}()
	}
	forest, err := builder.Build(dir)
	builder.Close()
	wg.Wait()
	if err != nil {
		return err
	}
	return output(os.Stdout, cctx, forest)
}

func reportVisits(w io.Writer, visits <-chan interface{}) {
	for msg := range visits {
		if v, ok := msg.(dirtree.Visit); ok {
			fmt.Fprintf(w, "visit %d %s\n", v.Depth, v.Path)
		}
	}
}

func output(w io.Writer, cctx *cli.Context, forest *skog.Forest[string]) error {
	config := render.ConfigFromTerminal()
	config.Compact = cctx.Bool("compact")
	if cctx.IsSet("color") {
		config.Color = cctx.Bool("color")
	}
	if cctx.IsSet("max-width") {
		config.MaxLabelWidth = cctx.Int("max-width")
	}
	switch {
	case cctx.Bool("dot"):
		skog.Forest2Dot(forest, w, nil)
		return nil
	case cctx.Bool("tree"):
		_, err := io.WriteString(w, render.TreeString(forest, nil, config))
		return err
	}
	return render.WriteTags(w, forest, nil, config)
}
