package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/sheikhrachel/go-gol-raster/rules"
)

// historySize is how many recent generation hashes a grid keeps for cycle detection
const historySize = 5

// Grid is the toroidal life board.
//
// Cells are stored row-major: the cell (x, y) lives at index y*width + x.
// The framebuffer and the BMP encoder use the same order.
type Grid struct {
	width   int
	height  int
	cells   []bool
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Cells exposes the row-major cell slice
func (g *Grid) Cells() []bool {
	return g.cells
}

// Index returns the slice position of (x, y)
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Clear clears all cells
func (g *Grid) Clear() {
	clear(g.cells)
	g.history = nil
}

// Randomize replaces every cell, each one alive with probability density
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	g.history = nil
}

// InjectRandomLife sets count random cells alive to break stagnation
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand) {
	if len(g.cells) == 0 {
		return
	}
	for i := 0; i < count; i++ {
		g.Set(rng.Intn(g.width), rng.Intn(g.height), true)
	}
}

// Set sets a cell to alive (true) or dead (false); coordinates off the board are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[g.Index(x, y)] = alive
	}
}

// Get returns the state of a cell, false off the board
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// CountNeighbors counts the live cells of the Moore neighborhood of (x, y) on the torus
func (g *Grid) CountNeighbors(x, y int) int {
	return CountNeighbors(g.cells, g.width, g.height, x, y)
}

// CountNeighbors counts the live Moore neighbors of (x, y), wrapping both axes
func CountNeighbors(cells []bool, width, height, x, y int) int {
	count := 0
	for _, o := range rules.MooreOffsets {
		nx := rules.Wrap(x+o.DX, width)
		ny := rules.Wrap(y+o.DY, height)
		if cells[ny*width+nx] {
			count++
		}
	}
	return count
}

// Step computes the next generation of cells into a newly allocated slice.
// cells is left untouched.
func Step(cells []bool, width, height int) []bool {
	next := make([]bool, width*height)
	step(cells, next, width, height)
	return next
}

// step writes the generation following cur into next
func step(cur, next []bool, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			next[idx] = rules.ApplyConwayRules(CountNeighbors(cur, width, height, x, y), cur[idx])
		}
	}
}

// NextGeneration returns a new grid one generation ahead of g.
// The next cells come from pool when one is given; g itself is never written.
// The hash history carries over so stagnation can be tracked across generations.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := &Grid{
		width:   g.width,
		height:  g.height,
		history: append([]string(nil), g.history...),
	}
	if pool != nil {
		next.cells = pool.Get(g.width * g.height)
		step(g.cells, next.cells, g.width, g.height)
	} else {
		next.cells = Step(g.cells, g.width, g.height)
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// BoundingBox returns the smallest rectangle holding every live cell; ok is false on an empty board
func (g *Grid) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[g.Index(x, y)] {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return
}

// GetGridHash returns an efficient MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			row[x] = 0
			if g.cells[g.Index(x, y)] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three recorded
// states, which catches still lifes and period-2 and period-3 oscillators.
// It should be called before UpdateHistory for the current generation.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for _, h := range g.history[len(g.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}
