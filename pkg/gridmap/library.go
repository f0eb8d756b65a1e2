// pkg/gridmap/library.go
package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePath is returned when two paths share a name.
	ErrDuplicatePath = errors.New("duplicate path name")
	// ErrDuplicateEntry is returned when two paths share an entry point.
	ErrDuplicateEntry = errors.New("duplicate entry point")
	// ErrNoPaths is returned for a library without paths.
	ErrNoPaths = errors.New("path library is empty")
)

// Library is the immutable set of paths for one map. Every entry point is
// bound to exactly one path.
type Library struct {
	grid    Grid
	paths   []*Path
	byName  map[string]*Path
	byEntry map[string]*Path
}

// NewLibrary builds a library from already validated paths.
func NewLibrary(grid Grid, paths ...*Path) (*Library, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	lib := &Library{
		grid:    grid,
		byName:  make(map[string]*Path, len(paths)),
		byEntry: make(map[string]*Path, len(paths)),
	}
	for _, p := range paths {
		if _, dup := lib.byName[p.Name()]; dup {
			return nil, fmt.Errorf("%q: %w", p.Name(), ErrDuplicatePath)
		}
		if _, dup := lib.byEntry[p.Entry()]; dup {
			return nil, fmt.Errorf("%q: %w", p.Entry(), ErrDuplicateEntry)
		}
		lib.byName[p.Name()] = p
		lib.byEntry[p.Entry()] = p
		lib.paths = append(lib.paths, p)
	}
	return lib, nil
}

// Grid returns the grid the paths were validated against.
func (l *Library) Grid() Grid { return l.grid }

// Paths returns the paths in declaration order.
func (l *Library) Paths() []*Path {
	out := make([]*Path, len(l.paths))
	copy(out, l.paths)
	return out
}

// Entries returns entry point names in declaration order.
func (l *Library) Entries() []string {
	out := make([]string, len(l.paths))
	for i, p := range l.paths {
		out[i] = p.Entry()
	}
	return out
}

// ByEntry returns the path bound to the entry point.
func (l *Library) ByEntry(entry string) (*Path, bool) {
	p, ok := l.byEntry[entry]
	return p, ok
}

// ByName returns the path with the given name.
func (l *Library) ByName(name string) (*Path, bool) {
	p, ok := l.byName[name]
	return p, ok
}

// OnPath reports whether any path polyline passes through c.
func (l *Library) OnPath(c Point) bool {
	for _, p := range l.paths {
		if p.Covers(c) {
			return true
		}
	}
	return false
}
