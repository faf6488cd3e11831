// Package hillclimb answers both hill-climbing questions for a height map:
// the fewest steps from the marked start to the summit, and the fewest
// steps from any lowest square to the summit.
//
// What:
//
//   - Solve parses the map, builds the step graph once and runs both
//     queries, returning a Result.
//   - PartOne and PartTwo run a single query each. PartTwo does not need a
//     start marker.
//
// Options:
//
//   - WithStrict():        reject malformed maps (see heightmap.WithStrict).
//   - WithFrontier(f):     priority queue used by the searches.
//   - WithReverse():       answer part two with one reverse BFS instead of a
//     search per lowest square.
//   - WithRoute():         also reconstruct one shortest start→summit route.
//   - WithLogger(l):       debug logging of each stage; silent by default.
//   - WithMetrics(r):      Prometheus counters for every search.
//
// Errors:
//
//   - ErrMissingStart, ErrMissingEnd: the map lacks a required marker.
//   - ErrNoPath: the summit cannot be reached.
//   - Parse errors from heightmap, wrapped.
package hillclimb
