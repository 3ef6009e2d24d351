package model

// Library returns the built-in patterns in tiling order
func Library() []Pattern {
	return []Pattern{
		{"block", []Cell{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
		{"blinker", []Cell{{1, 0}, {1, 1}, {1, 2}}},
		{"glider", []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{"pulsar", []Cell{
			{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
			{0, 2}, {5, 2}, {7, 2}, {12, 2},
			{0, 3}, {5, 3}, {7, 3}, {12, 3},
			{0, 4}, {5, 4}, {7, 4}, {12, 4},
			{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
			{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
			{0, 8}, {5, 8}, {7, 8}, {12, 8},
			{0, 9}, {5, 9}, {7, 9}, {12, 9},
			{0, 10}, {5, 10}, {7, 10}, {12, 10},
			{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
		}},
		{"lwss", []Cell{
			{0, 1}, {3, 1},
			{4, 2},
			{0, 3}, {4, 3},
			{1, 4}, {2, 4}, {3, 4}, {4, 4},
		}},
		{"toad", []Cell{
			{2, 1}, {3, 1}, {4, 1},
			{1, 2}, {2, 2}, {3, 2},
		}},
		{"beacon", []Cell{
			{0, 0}, {1, 0}, {0, 1}, {1, 1},
			{2, 2}, {3, 2}, {2, 3}, {3, 3},
		}},
		{"pentadecathlon", []Cell{
			{2, 1}, {3, 1},
			{1, 2}, {4, 2},
			{2, 3}, {3, 3},
			{2, 5}, {3, 5},
			{1, 6}, {4, 6},
			{2, 7}, {3, 7},
		}},
		{"diehard", []Cell{
			{0, 1}, {1, 1},
			{1, 2},
			{5, 2},
			{6, 0}, {6, 2}, {7, 2},
		}},
		{"acorn", []Cell{
			{1, 0},
			{3, 1},
			{0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2},
		}},
		{"queen_bee_shuttle", []Cell{
			{0, 1}, {1, 1}, {2, 1},
			{2, 2},
			{1, 3},
			{5, 2}, {6, 2}, {7, 2},
			{4, 3}, {4, 4},
		}},
		{"r_pentomino", []Cell{
			{1, 0}, {2, 0},
			{0, 1}, {1, 1},
			{1, 2},
		}},
		{"tumbler", []Cell{
			{1, 0}, {2, 0}, {4, 0}, {5, 0},
			{0, 1}, {1, 1}, {2, 1}, {4, 1}, {5, 1}, {6, 1},
			{0, 2}, {2, 2}, {4, 2}, {6, 2},
			{0, 3}, {1, 3}, {2, 3}, {4, 3}, {5, 3}, {6, 3},
			{1, 4}, {2, 4}, {4, 4}, {5, 4},
		}},
		{"gosper_glider_gun", []Cell{
			{24, 0},
			{22, 1}, {24, 1},
			{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
			{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
			{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
			{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
			{10, 6}, {11, 6}, {16, 6}, {17, 6},
			{11, 7}, {15, 7},
		}},
	}
}

// LookupPattern finds a built-in pattern by name
func LookupPattern(name string) (Pattern, bool) {
	for _, p := range Library() {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
