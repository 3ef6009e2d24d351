package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Offset is a relative cell position
type Offset struct {
	DX, DY int
}

// MooreOffsets lists the 8 cells adjacent to a cell, the cell itself excluded
var MooreOffsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Wrap maps v into [0, size) with floored modulo, so -1 becomes size-1 and size becomes 0
func Wrap(v, size int) int {
	m := v % size
	if m < 0 {
		m += size
	}
	return m
}
