package model

import "sync"

// GridToPool hands a grid's cells back to the pool. The grid must not be used afterwards.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid.cells)
	grid.cells = nil
	grid.history = nil
}

// GridPool recycles cell slices between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]bool)
			},
		},
	}
}

// Get returns a slice of n dead cells
func (p *GridPool) Get(n int) []bool {
	cells := *p.pool.Get().(*[]bool)
	if cap(cells) < n {
		return make([]bool, n)
	}
	cells = cells[:n]
	clear(cells)
	return cells
}

// Put stores cells for reuse
func (p *GridPool) Put(cells []bool) {
	p.pool.Put(&cells)
}
