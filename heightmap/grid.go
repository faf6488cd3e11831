package heightmap

import "strings"

// Grid is a parsed height map. It is immutable once built; accessors that
// return slices hand out copies.
//
// Rows may differ in length when parsed leniently. Width reports the
// widest row.
type Grid struct {
	rows  [][]Node
	width int
	size  int
}

func newGrid(rows [][]Node) *Grid {
	g := &Grid{rows: rows}
	for _, row := range rows {
		if len(row) > g.width {
			g.width = len(row)
		}
		g.size += len(row)
	}

	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the length of the widest row.
func (g *Grid) Width() int { return g.width }

// Len returns the total number of nodes.
func (g *Grid) Len() int { return g.size }

// InBounds reports whether (row,col) addresses a node.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// At returns the node at (row,col), or false when out of bounds.
func (g *Grid) At(row, col int) (Node, bool) {
	if !g.InBounds(row, col) {
		return Node{}, false
	}

	return g.rows[row][col], true
}

// Rows returns a deep copy of the grid, one slice per input line.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]Node {
	out := make([][]Node, len(g.rows))
	for r, row := range g.rows {
		out[r] = make([]Node, len(row))
		copy(out[r], row)
	}

	return out
}

// Transpose returns the grid's columns: column c lists, top to bottom, the
// node at index c of every row long enough to have one. For a rectangular
// grid this is the plain matrix transpose.
// Complexity: O(W×H).
func (g *Grid) Transpose() [][]Node {
	cols := make([][]Node, g.width)
	for c := range cols {
		cols[c] = make([]Node, 0, len(g.rows))
	}
	for _, row := range g.rows {
		for c, n := range row {
			cols[c] = append(cols[c], n)
		}
	}

	return cols
}

// Start returns the start marker. When the text holds several, the last
// one in row-major order wins.
func (g *Grid) Start() (Node, bool) {
	return g.find(Start)
}

// End returns the end marker, with the same tie rule as Start.
func (g *Grid) End() (Node, bool) {
	return g.find(End)
}

func (g *Grid) find(m Marker) (Node, bool) {
	var found Node
	ok := false
	for _, row := range g.rows {
		for _, n := range row {
			if n.Marker() == m {
				found, ok = n, true
			}
		}
	}

	return found, ok
}

// Lowest returns, in row-major order, every node whose Level equals
// MinLevel: the plain 'a' cells and the start marker.
// Complexity: O(W×H).
func (g *Grid) Lowest() []Node {
	var out []Node
	for _, row := range g.rows {
		for _, n := range row {
			if n.Level() == MinLevel {
				out = append(out, n)
			}
		}
	}

	return out
}

// String renders the grid back to text, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size + len(g.rows))
	for r, row := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, n := range row {
			sb.WriteByte(n.Symbol())
		}
	}

	return sb.String()
}
