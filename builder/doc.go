// Package builder constructs deterministic synthetic contact networks:
// fixtures for tests and benchmarks of the temporal and outbreak packages.
//
// Generators
//
//   - Chain(n, interval): p0–p1–…–p(n-1), meetings spaced interval apart.
//     An interval above the incubation latency lets a trace walk the whole
//     chain; a smaller one cuts it after the first hop.
//   - Star(n, t): a hub p0 meeting every leaf at the same instant t.
//   - RandomSparse(n, m, maxTime): m uniform random contacts over n people
//     with times in [0, maxTime). Deterministic under WithSeed.
//
// Determinism
//
//	Same generator, parameters, and seed produce byte-identical topologies;
//	benchmarks and property tests rely on this.
//
// Options
//
//   - WithIDPrefix(prefix): person IDs are prefix + index (default "p").
//   - WithSeed(seed):       freeze the RNG for stochastic generators.
//
// Errors
//
//   - ErrTooFewPersons   for populations below the generator's minimum.
//   - ErrBadContactCount for a negative contact count.
//   - ErrBadTimeRange    for a non-positive meeting-time range.
package builder
