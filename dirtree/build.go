package dirtree

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/skog"
)

// Visit is published by a Builder for every directory which becomes a node.
type Visit struct {
	Path  string // slash-separated path relative to the root of the build
	Name  string // node value
	Depth int    // 0 for the root directory
}

// Builder builds directory forests and broadcasts a Visit event for every
// directory it adds.
type Builder struct {
	cast *caster.Caster // broadcaster for visit events
}

// NewBuilder creates a builder. Publishing stops when ctx is done or the
// builder is closed.
func NewBuilder(ctx context.Context) *Builder {
	return &Builder{cast: caster.New(ctx)}
}

// Subscribe returns a channel receiving Visit events. capacity is the
// channel's buffer size; a slow subscriber with a full buffer will stall the
// build. The channel is closed when the builder is closed.
func (b *Builder) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return b.cast.Sub(ctx, capacity)
}

// Close stops publishing and closes all subscriber channels.
func (b *Builder) Close() {
	b.cast.Close()
}

// Build creates a forest for the directory at dirpath. The root node is
// named after the last element of the absolute path.
func Build(dirpath string) (*skog.Forest[string], error) {
	return (&Builder{}).Build(dirpath)
}

// BuildFS creates a forest for directory root of fsys. The root node is
// called name.
func BuildFS(fsys fs.FS, root, name string) (*skog.Forest[string], error) {
	return (&Builder{}).BuildFS(fsys, root, name)
}

// Build creates a forest for the directory at dirpath, publishing visits.
func (b *Builder) Build(dirpath string) (*skog.Forest[string], error) {
	abs, err := filepath.Abs(dirpath)
	if err != nil {
		return nil, fmt.Errorf("dirtree: %w", err)
	}
	return b.BuildFS(os.DirFS(abs), ".", filepath.Base(abs))
}

// BuildFS creates a forest for directory root of fsys, publishing visits.
func (b *Builder) BuildFS(fsys fs.FS, root, name string) (*skog.Forest[string], error) {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		tracer().Errorf("dirtree: %v", err)
		return nil, fmt.Errorf("dirtree: %w", err)
	}
	f, err := b.build(fsys, root, name, info, nil, 0)
	if err != nil {
		tracer().Errorf("dirtree: %v", err)
		return nil, err
	}
	tracer().Infof("dirtree: built forest of %d directories for %s", f.Size(), name)
	return f, nil
}

// build recursively creates the forest for one directory entry: a single
// node for a directory, with the forests of its entries spliced in as
// children, and an empty forest for anything else. Symbolic links to
// directories are followed, unless they lead back to one of the ancestors.
func (b *Builder) build(fsys fs.FS, dir, name string, info fs.FileInfo, ancestors []fs.FileInfo,
	depth int) (*skog.Forest[string], error) {
	//
	f := skog.New[string]()
	if !info.IsDir() || strings.HasPrefix(name, ".") {
		return f, nil
	}
	if onPath(info, ancestors) {
		tracer().Infof("dirtree: not following link cycle at %s", dir)
		return f, nil
	}
	ancestors = append(ancestors, info)
	cur := f.EndMut()
	if err := cur.InsertAndMove(name); err != nil {
		return nil, err
	}
	cur.ToExit() // children are appended before the exit edge
	b.publish(Visit{Path: dir, Name: name, Depth: depth})
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("dirtree: %w", err)
	}
	for _, entry := range entries {
		p := path.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("dirtree: %w", err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			if info, err = fs.Stat(fsys, p); err != nil {
				tracer().Infof("dirtree: skipping dangling link %s", p)
				continue
			}
		}
		sub, err := b.build(fsys, p, entry.Name(), info, ancestors, depth+1)
		if err != nil {
			return nil, err
		}
		if err = cur.Splice(sub); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// onPath reports whether info denotes the same directory as one of the
// ancestors. This only works for file systems backed by the OS.
func onPath(info fs.FileInfo, ancestors []fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}

func (b *Builder) publish(v Visit) {
	if b.cast == nil {
		return
	}
	b.cast.Pub(v)
}
