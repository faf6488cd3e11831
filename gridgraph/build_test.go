package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillpath/gridgraph"
	"github.com/katalvlaran/hillpath/heightmap"
)

const reference = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

// mustBuild parses text leniently and builds its graph.
func mustBuild(t testing.TB, text string) (*heightmap.Grid, *gridgraph.Graph) {
	t.Helper()
	grid, err := heightmap.Parse(text)
	require.NoError(t, err)

	return grid, gridgraph.Build(grid)
}

// at fetches a node that the test knows exists.
func at(t testing.TB, g *heightmap.Grid, r, c int) heightmap.Node {
	t.Helper()
	n, ok := g.At(r, c)
	require.True(t, ok, "no node at (%d,%d)", r, c)

	return n
}

// randomGrid returns an h×w height map using letters 'a'..'a'+spread, with
// a start and an end marker placed at random cells.
func randomGrid(rng *rand.Rand, h, w, spread int) string {
	cells := make([][]byte, h)
	for r := range cells {
		cells[r] = make([]byte, w)
		for c := range cells[r] {
			cells[r][c] = byte('a' + rng.Intn(spread+1))
		}
	}
	cells[rng.Intn(h)][rng.Intn(w)] = 'S'
	for {
		r, c := rng.Intn(h), rng.Intn(w)
		if cells[r][c] != 'S' {
			cells[r][c] = 'E'
			break
		}
	}
	lines := make([]string, h)
	for r := range cells {
		lines[r] = string(cells[r])
	}

	return strings.Join(lines, "\n")
}

//----------------------------------------------------------------------------//
// Edge rule
//----------------------------------------------------------------------------//

func TestClimbable(t *testing.T) {
	n := func(e int) heightmap.Node { return heightmap.Node{Elevation: e} }
	cases := []struct {
		name     string
		from, to heightmap.Node
		want     bool
	}{
		{"Flat", n(3), n(3), true},
		{"UpOne", n(3), n(4), true},
		{"UpTwo", n(3), n(5), false},
		{"DownMany", n(25), n(0), true},
		{"StartToB", n(-1), n(1), true},
		{"YToEnd", n(24), n(26), true},
		{"XToEnd", n(23), n(26), false},
		{"EndToA", n(26), n(0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gridgraph.Climbable(tc.from, tc.to))
		})
	}
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

func TestBuild_Reference(t *testing.T) {
	grid, g := mustBuild(t, reference)

	assert.Equal(t, 40, g.Order())
	for _, n := range g.Nodes() {
		assert.LessOrEqual(t, len(g.Neighbors(n)), 4)
	}

	s, a := at(t, grid, 0, 0), at(t, grid, 0, 1)
	assert.True(t, g.HasEdge(s, a))
	assert.True(t, g.HasEdge(a, s))

	b, q := at(t, grid, 0, 2), at(t, grid, 0, 3)
	assert.False(t, g.HasEdge(b, q), "b→q climbs 15")
	assert.True(t, g.HasEdge(q, b), "q→b descends")

	e, z, x := at(t, grid, 2, 5), at(t, grid, 2, 4), at(t, grid, 1, 5)
	assert.True(t, g.HasEdge(z, e))
	assert.True(t, g.HasEdge(e, z))
	assert.False(t, g.HasEdge(x, e), "x→E climbs 2")
	assert.True(t, g.HasEdge(e, x))

	// diagonal cells are never linked
	assert.False(t, g.HasEdge(s, at(t, grid, 1, 1)))
}

func TestBuild_NoSelfOrDiagonalEdges(t *testing.T) {
	_, g := mustBuild(t, reference)
	for _, from := range g.Nodes() {
		for _, to := range g.Neighbors(from) {
			dr, dc := to.Row-from.Row, to.Col-from.Col
			assert.Equal(t, 1, dr*dr+dc*dc, "%v→%v", from, to)
		}
	}
}

func TestBuild_SizeMatchesAdjacency(t *testing.T) {
	_, g := mustBuild(t, reference)
	total := 0
	for _, nbrs := range g.Adjacency() {
		total += len(nbrs)
	}
	assert.Equal(t, total, g.Size())
}

// TestBuild_Asymmetry checks, on random grids, that a climb of more than
// one unit never yields an edge while the opposite descent always does.
func TestBuild_Asymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 25; i++ {
		grid, g := mustBuild(t, randomGrid(rng, 6, 9, 6))
		for _, a := range g.Nodes() {
			for _, d := range [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
				b, ok := grid.At(a.Row+d[0], a.Col+d[1])
				if !ok {
					continue
				}
				rise := b.Level() - a.Level()
				assert.Equal(t, rise <= 1, g.HasEdge(a, b), "%v→%v", a, b)
				if rise > 1 {
					assert.True(t, g.HasEdge(b, a), "descent %v→%v", b, a)
				}
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	_, g1 := mustBuild(t, reference)
	_, g2 := mustBuild(t, reference)
	if diff := cmp.Diff(g1.Adjacency(), g2.Adjacency()); diff != "" {
		t.Errorf("adjacency differs between builds (-first +second):\n%s", diff)
	}
	assert.Equal(t, g1.Size(), g2.Size())
}

func TestBuild_SingleCell(t *testing.T) {
	grid, g := mustBuild(t, "S")
	assert.Equal(t, 1, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Neighbors(at(t, grid, 0, 0)))
}

func TestBuild_RaggedSkipsGaps(t *testing.T) {
	grid, g := mustBuild(t, "abc\na\nabc")
	top, bottom := at(t, grid, 0, 2), at(t, grid, 2, 2)
	assert.False(t, g.HasEdge(top, bottom), "rows 0 and 2 are not adjacent")
	assert.False(t, g.HasEdge(bottom, top))
	assert.True(t, g.HasEdge(at(t, grid, 0, 0), at(t, grid, 1, 0)))
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestGraph_AbsentNode(t *testing.T) {
	_, g := mustBuild(t, reference)
	ghost := heightmap.Node{Elevation: 3, Row: 99, Col: 99}
	assert.False(t, g.HasNode(ghost))
	assert.Empty(t, g.Neighbors(ghost))

	var nilGraph *gridgraph.Graph
	assert.Empty(t, nilGraph.Neighbors(ghost))
	assert.False(t, nilGraph.HasNode(ghost))
}

func TestGraph_NodesRowMajor(t *testing.T) {
	grid, g := mustBuild(t, "ab\ncd")
	want := []heightmap.Node{at(t, grid, 0, 0), at(t, grid, 0, 1), at(t, grid, 1, 0), at(t, grid, 1, 1)}
	assert.Equal(t, want, g.Nodes())
}

func TestGraph_Reverse(t *testing.T) {
	_, g := mustBuild(t, reference)
	r := g.Reverse()

	assert.Equal(t, g.Order(), r.Order())
	assert.Equal(t, g.Size(), r.Size())
	for _, from := range g.Nodes() {
		for _, to := range g.Neighbors(from) {
			assert.True(t, r.HasEdge(to, from), "reverse misses %v→%v", to, from)
		}
	}
	if diff := cmp.Diff(g.Adjacency(), r.Reverse().Adjacency(), sortedNeighbors()); diff != "" {
		t.Errorf("double reverse differs (-orig +double):\n%s", diff)
	}
}

// sortedNeighbors compares neighbour lists as sets.
func sortedNeighbors() cmp.Option {
	return cmp.Transformer("sorted", func(in []heightmap.Node) map[heightmap.Node]bool {
		out := make(map[heightmap.Node]bool, len(in))
		for _, n := range in {
			out[n] = true
		}
		return out
	})
}
