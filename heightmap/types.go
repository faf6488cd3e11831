package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap parsing.
var (
	// ErrEmptyGrid indicates the input text holds no rows.
	ErrEmptyGrid = errors.New("heightmap: input must have at least one row")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCell indicates a byte that is neither a letter nor a marker.
	ErrInvalidCell = errors.New("heightmap: invalid cell")
	// ErrDuplicateMarker indicates a start or end marker appearing twice.
	ErrDuplicateMarker = errors.New("heightmap: duplicate marker")
)

// Symbols recognised by the parser.
const (
	StartSymbol byte = 'S'
	EndSymbol   byte = 'E'
	lowest      byte = 'a'
	highest     byte = 'z'
)

// Elevation bounds of plain letter cells.
const (
	MinLevel = 0                     // 'a'
	MaxLevel = int(highest - lowest) // 'z'

	startElevation = MinLevel - 1
	endElevation   = MaxLevel + 1
)

// Marker tags a node as the start, the end, or a plain cell.
type Marker int

const (
	// None marks a plain letter cell.
	None Marker = iota
	// Start marks the 'S' cell.
	Start
	// End marks the 'E' cell.
	End
)

// String returns the lowercase marker name.
func (m Marker) String() string {
	switch m {
	case None:
		return "none"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Marker(%d)", int(m))
	}
}

// Node is one grid cell. Nodes are comparable and safe to use as map keys.
//
// Elevation holds the encoded value: 0..25 for 'a'..'z', -1 for the start
// marker and 26 for the end marker.
type Node struct {
	Elevation int
	Row, Col  int
}

// Marker reports which marker, if any, the node carries.
func (n Node) Marker() Marker {
	switch n.Elevation {
	case startElevation:
		return Start
	case endElevation:
		return End
	default:
		return None
	}
}

// Level returns the elevation used for climbing rules: the start counts
// as 'a' and the end counts as 'z'.
func (n Node) Level() int {
	switch n.Marker() {
	case Start:
		return MinLevel
	case End:
		return MaxLevel
	default:
		return n.Elevation
	}
}

// Symbol returns the byte the node was parsed from.
func (n Node) Symbol() byte {
	switch n.Marker() {
	case Start:
		return StartSymbol
	case End:
		return EndSymbol
	default:
		return byte(int(lowest) + n.Elevation)
	}
}

// String formats the node as "c(row,col)".
func (n Node) String() string {
	return fmt.Sprintf("%c(%d,%d)", n.Symbol(), n.Row, n.Col)
}

// Options controls parsing strictness.
type Options struct {
	// Strict rejects unknown bytes, ragged rows and repeated markers.
	Strict bool
}

// Option configures Parse.
type Option func(*Options)

// DefaultOptions returns lenient parsing options.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// WithStrict enables strict validation of the input text.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}
