package heightmap

import (
	"fmt"
	"strings"
)

// Parse converts height map text into a Grid.
//
// Lines are split on '\n'; a trailing '\r' on each line and trailing blank
// lines are ignored. In lenient mode (the default) every byte becomes a
// node, and bytes other than letters and markers keep their ordinal offset
// from 'a' as elevation. WithStrict turns those cases into errors.
//
// Returns ErrEmptyGrid when no rows remain. In strict mode it may also
// return ErrNonRectangular, ErrInvalidCell or ErrDuplicateMarker, wrapped
// with the offending position.
//
// Complexity: O(W×H) time and memory.
func Parse(input string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	p := parser{strict: o.Strict, width: len(lines[0])}
	rows := make([][]Node, len(lines))
	for r, line := range lines {
		row, err := p.row(r, line)
		if err != nil {
			return nil, err
		}
		rows[r] = row
	}

	return newGrid(rows), nil
}

// parser carries the strict-mode state across rows.
type parser struct {
	strict   bool
	width    int
	sawStart bool
	sawEnd   bool
	startAt  [2]int
	endAt    [2]int
}

func (p *parser) row(r int, line string) ([]Node, error) {
	if p.strict && len(line) != p.width {
		return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), p.width)
	}
	row := make([]Node, len(line))
	for c := 0; c < len(line); c++ {
		n, err := p.cell(line[c], r, c)
		if err != nil {
			return nil, err
		}
		row[c] = n
	}

	return row, nil
}

func (p *parser) cell(b byte, r, c int) (Node, error) {
	switch {
	case b == StartSymbol:
		if p.strict && p.sawStart {
			return Node{}, fmt.Errorf("%w: %q at (%d,%d), first at (%d,%d)",
				ErrDuplicateMarker, b, r, c, p.startAt[0], p.startAt[1])
		}
		p.sawStart, p.startAt = true, [2]int{r, c}
		return Node{Elevation: startElevation, Row: r, Col: c}, nil
	case b == EndSymbol:
		if p.strict && p.sawEnd {
			return Node{}, fmt.Errorf("%w: %q at (%d,%d), first at (%d,%d)",
				ErrDuplicateMarker, b, r, c, p.endAt[0], p.endAt[1])
		}
		p.sawEnd, p.endAt = true, [2]int{r, c}
		return Node{Elevation: endElevation, Row: r, Col: c}, nil
	case b >= lowest && b <= highest:
		return Node{Elevation: int(b - lowest), Row: r, Col: c}, nil
	case p.strict:
		return Node{}, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, b, r, c)
	default:
		return Node{Elevation: int(b) - int(lowest), Row: r, Col: c}, nil
	}
}
