// Package core provides the fundamental in-memory contact graph.
//
// What
//
//   - People are vertices, identified by unique string IDs, created lazily
//     the first time they appear in an ingested contact and never deleted.
//   - Each unordered pair of people shares exactly one contact record: the
//     ascending, duplicate-free sequence of every time they met. A second
//     contact between the same pair appends to the existing record rather
//     than creating a parallel edge.
//   - Ingestion (AddTrace / RecordContact / AddPerson) and read-only queries
//     (ContactTimes, Contacts, Persons) are the whole surface; the graph
//     holds no algorithmic logic beyond insertion and lookup.
//
// Why
//
//	Contact-tracing queries (see the temporal and outbreak packages) need a
//	multi-meeting edge model where "did they meet at or after T" and
//	"when did they first meet at or after T" are cheap. Keeping every
//	record sorted at insertion makes the latest contact the last element
//	and qualifying-contact scans a forward walk.
//
// Storage layout
//
//	People and records live in growable arenas addressed by dense integer
//	indices and stable integer handles; adjacency is an index-to-index map
//	per person, entered symmetrically from both endpoints. There are no
//	cyclic object references, and queries return copies, never live views
//	of internal state.
//
// Errors
//
//   - ErrEmptyPersonID  if a person ID is the empty string.
//   - ErrPersonNotFound if a query names a person never ingested. A known
//     pair that simply never met is NOT an error: it yields an empty result.
//
// Concurrency
//
//	One RWMutex guards the graph: mutations take the write lock, queries
//	the read lock. The intended usage is ingest-then-query; use Clone to
//	snapshot a graph that must keep answering while another copy mutates.
package core
