// Package temporal layers time-window queries on top of the core contact
// graph without adding any state of its own.
//
// What
//
//   - ContactsAtOrAfter(g, person, ts): which of person's contacts did they
//     meet at or after ts (inclusive)? Answered by inspecting only the
//     latest recorded time per pair, valid because records are always
//     sorted ascending.
//   - EarliestContactAtOrAfter(g, a, b, ts): the first recorded meeting of
//     the pair at or after ts, with an ok-bool sentinel when no such
//     meeting exists. Never an error for the empty case.
//
// Why
//
//	These two questions are exactly what forward-in-time propagation needs:
//	"who could p still have infected after becoming contagious" and "when
//	did the qualifying exposure happen". The outbreak package consumes this
//	package as its only view of the graph.
//
// Errors
//
//   - ErrGraphNil for a nil graph pointer.
//   - core.ErrPersonNotFound (wrapped, match with errors.Is) when a named
//     person was never ingested. A known pair with no qualifying contact is
//     not an error.
package temporal
