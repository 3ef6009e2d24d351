package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Cell is a live cell offset relative to a pattern's origin
type Cell struct {
	X, Y int
}

// Pattern is a named set of live cell offsets
type Pattern struct {
	Name  string
	Cells []Cell
}

// Size returns the pattern's bounding box measured from its origin
func (p Pattern) Size() (width, height int) {
	for _, c := range p.Cells {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	return
}

// PatternFromCoordinates builds a pattern from [x, y] pairs
func PatternFromCoordinates(name string, coords [][]int) (Pattern, error) {
	p := Pattern{Name: name, Cells: make([]Cell, 0, len(coords))}
	for i, c := range coords {
		if len(c) != 2 {
			return Pattern{}, errors.Errorf("[PatternFromCoordinates] %s: coordinate %d has %d values, want 2", name, i, len(c))
		}
		p.Cells = append(p.Cells, Cell{X: c[0], Y: c[1]})
	}
	return p, nil
}

// Place marks the cells of p alive with the pattern's origin moved to (offsetX, offsetY).
// Cells landing off the board are skipped, never wrapped. This is stricter than
// checking only the flat index y*width+x: a cell past the right edge is dropped
// instead of spilling into the start of the next row.
func Place(cells []bool, width int, p Pattern, offsetX, offsetY int) {
	for _, c := range p.Cells {
		x, y := offsetX+c.X, offsetY+c.Y
		if x < 0 || x >= width || y < 0 {
			continue
		}
		if idx := y*width + x; idx < len(cells) {
			cells[idx] = true
		}
	}
}

// BoundingBox returns the largest width and height over all patterns
func BoundingBox(patterns []Pattern) (width, height int) {
	for _, p := range patterns {
		w, h := p.Size()
		width = max(width, w)
		height = max(height, h)
	}
	return
}

// Tile covers the board with tiles the size of the patterns' common bounding box
// and places patterns[i % len(patterns)] in tile i, tiles counted row by row.
// Tiles along the right and bottom edges may be cut short.
func Tile(cells []bool, width, height int, patterns []Pattern) {
	if len(patterns) == 0 || width <= 0 || height <= 0 {
		return
	}
	tileW, tileH := BoundingBox(patterns)
	if tileW == 0 || tileH == 0 {
		return
	}

	var (
		tilesX = (width + tileW - 1) / tileW
		tilesY = (height + tileH - 1) / tileH
	)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			p := patterns[(ty*tilesX+tx)%len(patterns)]
			Place(cells, width, p, tx*tileW, ty*tileH)
		}
	}
}

// PlacePattern stamps p onto the grid at (x, y)
func (g *Grid) PlacePattern(p Pattern, x, y int) {
	Place(g.cells, g.width, p, x, y)
}

// TilePatterns covers the whole grid with patterns
func (g *Grid) TilePatterns(patterns []Pattern) {
	Tile(g.cells, g.width, g.height, patterns)
}

// PatternSet is a lookup of patterns by name that remembers insertion order
type PatternSet struct {
	order  []string
	byName map[string]Pattern
}

// NewPatternSet returns a set holding the built-in library
func NewPatternSet() *PatternSet {
	s := &PatternSet{byName: map[string]Pattern{}}
	for _, p := range Library() {
		s.Add(p)
	}
	return s
}

// Add inserts p, replacing any pattern with the same name in place
func (s *PatternSet) Add(p Pattern) {
	if _, ok := s.byName[p.Name]; !ok {
		s.order = append(s.order, p.Name)
	}
	s.byName[p.Name] = p
}

// Lookup finds a pattern by name
func (s *PatternSet) Lookup(name string) (Pattern, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// All returns the patterns in insertion order
func (s *PatternSet) All() []Pattern {
	all := make([]Pattern, 0, len(s.order))
	for _, name := range s.order {
		all = append(all, s.byName[name])
	}
	return all
}

// Names returns the sorted pattern names
func (s *PatternSet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	sort.Strings(names)
	return names
}
