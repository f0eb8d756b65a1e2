package gridmap

import (
	"errors"
	"testing"
)

var testGrid = Grid{Width: 10, Height: 10}

func TestNewPathValidation(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []Point
		wantErr   error
	}{
		{"empty", nil, ErrEmptyPath},
		{"outside", []Point{{0, 0}, {10, 0}}, ErrOutOfGrid},
		{"negative", []Point{{-1, 2}}, ErrOutOfGrid},
		{"single point", []Point{{3, 3}}, nil},
		{"valid", []Point{{0, 5}, {9, 5}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPath(testGrid, "p", "e", tt.waypoints)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPathIsImmutable(t *testing.T) {
	src := []Point{{0, 0}, {0, 5}}
	p, err := NewPath(testGrid, "p", "e", src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = Point{9, 9}
	if p.Start() != (Point{0, 0}) {
		t.Errorf("path changed after source mutation: %v", p.Start())
	}

	wps := p.Waypoints()
	wps[1] = Point{7, 7}
	if p.End() != (Point{0, 5}) {
		t.Errorf("path changed after copy mutation: %v", p.End())
	}
}

func TestPathCells(t *testing.T) {
	p, err := NewPath(testGrid, "p", "e", []Point{{0, 2}, {3, 2}, {3, 0}})
	if err != nil {
		t.Fatal(err)
	}

	want := []Point{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {3, 1}, {3, 0}}
	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if !p.Covers(Point{2, 2}) {
		t.Error("segment interior cell not covered")
	}
	if p.Covers(Point{2, 1}) {
		t.Error("cell off the polyline reported as covered")
	}
}

func TestLibrary(t *testing.T) {
	a, _ := NewPath(testGrid, "a", "west", []Point{{0, 1}, {9, 1}})
	b, _ := NewPath(testGrid, "b", "north", []Point{{5, 0}, {5, 9}})
	dupEntry, _ := NewPath(testGrid, "c", "west", []Point{{0, 8}, {9, 8}})

	lib, err := NewLibrary(testGrid, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got := lib.Entries(); len(got) != 2 || got[0] != "west" || got[1] != "north" {
		t.Errorf("unexpected entries %v", got)
	}
	if p, ok := lib.ByEntry("north"); !ok || p.Name() != "b" {
		t.Errorf("ByEntry(north) = %v, %v", p, ok)
	}
	if !lib.OnPath(Point{5, 5}) || !lib.OnPath(Point{3, 1}) {
		t.Error("expected path cells to be reported")
	}
	if lib.OnPath(Point{2, 2}) {
		t.Error("free cell reported as path")
	}

	if _, err := NewLibrary(testGrid, a, dupEntry); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("expected ErrDuplicateEntry, got %v", err)
	}
	if _, err := NewLibrary(testGrid, a, a); !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("expected ErrDuplicatePath, got %v", err)
	}
	if _, err := NewLibrary(testGrid); !errors.Is(err, ErrNoPaths) {
		t.Errorf("expected ErrNoPaths, got %v", err)
	}
}
