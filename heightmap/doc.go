// Package heightmap parses a text height map into a rectangular grid of
// elevation nodes.
//
// What:
//
//   - Each input line becomes one row; each byte becomes one Node.
//   - Letters 'a'..'z' map to elevations 0..25.
//   - 'S' (start) is stored one unit below 'a', 'E' (end) one unit above 'z'.
//     Both markers keep the elevation of the letter they stand for when
//     climbing rules are evaluated (see Node.Level).
//
// Parsing modes:
//
//   - Lenient (default): any other byte is absorbed as its ordinal offset
//     from 'a'. Nothing is rejected except an empty input.
//   - Strict (WithStrict): unknown bytes, ragged rows and repeated markers
//     are reported as errors.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows.
//   - ErrNonRectangular: rows of differing lengths (strict only).
//   - ErrInvalidCell: byte outside 'a'..'z', 'S', 'E' (strict only).
//   - ErrDuplicateMarker: more than one 'S' or 'E' (strict only).
//
// Complexity: Parse, Transpose and Lowest are O(W×H) time and memory.
package heightmap
