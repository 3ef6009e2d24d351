package model

import (
	"slices"
	"testing"
)

func sortCells(cells []Cell) []Cell {
	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return sorted
}

func TestPlaceOutOfBounds(t *testing.T) {
	p := Pattern{Name: "ell", Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}}}
	marker := Cell{3, 3}
	tests := []struct {
		name string
		x, y int
		want []Cell
	}{
		{"inside", 1, 0, []Cell{{1, 0}, {2, 0}, {3, 0}, {1, 1}, {1, 2}}},
		{"past right edge", 3, 0, []Cell{{3, 0}, {3, 1}, {3, 2}}},
		{"past bottom edge", 0, 3, []Cell{{0, 3}, {1, 3}, {2, 3}}},
		{"negative offset", -1, 0, []Cell{{0, 0}, {1, 0}}},
		{"above the board", 0, -2, []Cell{{0, 0}}},
		{"fully outside", 10, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4, 4)
			g.Set(marker.X, marker.Y, true)
			g.PlacePattern(p, tt.x, tt.y)

			want := sortCells(append(slices.Clone(tt.want), marker))
			if got := liveSet(g); !slices.Equal(got, want) {
				t.Errorf("live cells %v, want %v", got, want)
			}
		})
	}
}

func TestPlaceDoesNotWrapRows(t *testing.T) {
	cells := make([]bool, 4*4)
	Place(cells, 4, Pattern{Cells: []Cell{{5, 0}}}, 0, 0)
	if slices.Contains(cells, true) {
		t.Error("cell beyond the right edge spilled into the next row")
	}
}

func TestPatternSize(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"block", 3, 3},
		{"blinker", 2, 3},
		{"glider", 3, 3},
		{"pulsar", 13, 13},
		{"gosper_glider_gun", 36, 8},
	}
	for _, tt := range tests {
		p, ok := LookupPattern(tt.name)
		if !ok {
			t.Fatalf("pattern %q missing", tt.name)
		}
		if w, h := p.Size(); w != tt.width || h != tt.height {
			t.Errorf("%s size = %dx%d, want %dx%d", tt.name, w, h, tt.width, tt.height)
		}
	}
}

func TestLibrary(t *testing.T) {
	lib := Library()
	if len(lib) != 14 {
		t.Fatalf("library holds %d patterns, want 14", len(lib))
	}
	if w, h := BoundingBox(lib); w != 36 || h != 13 {
		t.Errorf("BoundingBox(library) = %dx%d, want 36x13", w, h)
	}
	if _, ok := LookupPattern("no-such-pattern"); ok {
		t.Error("LookupPattern found an unknown name")
	}
}

func TestTile(t *testing.T) {
	a := Pattern{Name: "a", Cells: []Cell{{0, 0}}}
	b := Pattern{Name: "b", Cells: []Cell{{1, 1}}}
	// common tile is 2x2, so a 5x4 board has 3 tiles per row (the last cut short) and 2 rows
	g := NewGrid(5, 4)
	g.TilePatterns([]Pattern{a, b})

	want := []Cell{
		{0, 0}, {3, 1}, {4, 0}, // row 0: a, b, a
		{1, 3}, {2, 2}, // row 1: b, a, b (cut off)
	}
	if got := liveSet(g); !slices.Equal(got, sortCells(want)) {
		t.Errorf("tiled %v, want %v", got, sortCells(want))
	}
}

func TestTileLibraryFillsBoard(t *testing.T) {
	g := NewGrid(80, 60)
	g.TilePatterns(Library())
	if g.CountLivingCells() == 0 {
		t.Fatal("tiling the library left the board empty")
	}
	// first tile holds the block at its offsets
	for _, c := range []Cell{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		if !g.Get(c.X, c.Y) {
			t.Errorf("block cell %v missing from the first tile", c)
		}
	}
	// second tile starts at x=36 with the blinker
	for _, c := range []Cell{{37, 0}, {37, 1}, {37, 2}} {
		if !g.Get(c.X, c.Y) {
			t.Errorf("blinker cell %v missing from the second tile", c)
		}
	}
}

func TestTileNoPatterns(t *testing.T) {
	g := NewGrid(5, 5)
	g.TilePatterns(nil)
	g.TilePatterns([]Pattern{{Name: "empty"}})
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("empty tiling created %d cells", n)
	}
}

func TestPatternFromCoordinates(t *testing.T) {
	p, err := PatternFromCoordinates("diag", [][]int{{0, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("PatternFromCoordinates: %v", err)
	}
	if !slices.Equal(p.Cells, []Cell{{0, 0}, {1, 1}}) {
		t.Errorf("cells = %v", p.Cells)
	}
	if _, err := PatternFromCoordinates("bad", [][]int{{1}}); err == nil {
		t.Error("accepted a coordinate with one value")
	}
}

func TestPatternSet(t *testing.T) {
	s := NewPatternSet()
	if len(s.All()) != len(Library()) {
		t.Fatalf("set holds %d patterns", len(s.All()))
	}
	s.Add(Pattern{Name: "dot", Cells: []Cell{{0, 0}}})
	s.Add(Pattern{Name: "block", Cells: []Cell{{0, 0}}})

	all := s.All()
	if all[0].Name != "block" || len(all[0].Cells) != 1 {
		t.Errorf("replacing block moved or kept it: %+v", all[0])
	}
	if all[len(all)-1].Name != "dot" {
		t.Errorf("new pattern not appended: %s", all[len(all)-1].Name)
	}
	if _, ok := s.Lookup("dot"); !ok {
		t.Error("Lookup(dot) failed")
	}
	if names := s.Names(); !slices.IsSorted(names) || len(names) != 15 {
		t.Errorf("Names() = %v", names)
	}
}
