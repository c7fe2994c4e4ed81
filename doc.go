// Package epitrace is an in-memory library for recording timestamped
// human contacts and computing temporal reachability: who could plausibly
// have been infected, through chains of meetings, once a source person
// becomes contagious.
//
// What it provides:
//
//   - Contact graph: people as vertices, per-pair contact records holding
//     every recorded meeting time, ingested from raw (personA, personB,
//     time) traces with exact-duplicate deduplication
//   - Temporal lookups: who was contacted at or after a timestamp, and the
//     earliest qualifying meeting between two people
//   - Outbreak tracing: a forward-in-time traversal honoring a fixed
//     incubation latency between exposure and onward transmission
//   - Synthetic networks: deterministic chain, star, and random-sparse
//     generators for tests and benchmarks
//
// Everything is organized under four subpackages:
//
//	core/     — contact graph storage: persons, records, ingestion, queries
//	temporal/ — pure time-window queries layered on core
//	outbreak/ — the temporal-constraint traversal producing alert sets
//	builder/  — synthetic contact-network generators
//
// Quick ASCII example:
//
//	    Anna ──10── Borys ──80── Clara ──200── Dmytro
//
//	Anna is contagious at 5. Borys is exposed at 10 and can transmit from
//	70 (incubation latency 60), so his meeting with Clara at 80 counts,
//	and the chain reaches Dmytro at 200. Alert set: {Borys, Clara, Dmytro}.
//
// The library is pure Go with no persistence, wire format, or
// probabilistic modeling; callers supply already-parsed traces and receive
// plain value results.
package epitrace
