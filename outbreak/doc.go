// Package outbreak provides a temporal-constraint traversal over a
// core.Graph, producing the set of people a contagious source could have
// infected through chains of timestamped contacts.
//
// What
//
//   - Trace(g, source, contagionTime) walks the contact graph forward in
//     time. A contact p→q only propagates if the pair met at or after p's
//     contagious threshold: p's exposure time plus the incubation latency
//     (the source's threshold is contagionTime itself, with no latency).
//   - Returns a Result containing:
//   - Order: people reached, in discovery sequence
//   - ExposedAt: map from person → assigned exposure time
//   - Alerted(): the sorted alert set (source always excluded)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (at discovery, when the exposure time is assigned)
//   - OnDequeue (when a person leaves the frontier)
//   - OnVisit   (at expansion; may abort with an error)
//
// Why
//
//   - Plain reachability over-alerts: a meeting that happened before the
//     carrier became contagious cannot transmit. Threading a per-person
//     threshold through the traversal keeps only plausible chains.
//
// State machine
//
//	Each person is unseen, enqueued (discovered, exposure time assigned,
//	awaiting expansion), or processed (expansion complete). Transitions
//	only move forward, and the enqueued transition happens synchronously
//	at discovery, so no person is ever enqueued twice or assigned two
//	exposure times. A person reached later via a path with an earlier
//	qualifying contact keeps their first-assigned time; this
//	first-discovery-wins policy is part of the contract.
//
// Determinism
//
//	temporal.ContactsAtOrAfter returns candidates sorted by ID and the
//	frontier is FIFO, so discovery order is fully reproducible.
//
// Complexity (V = people, E = contact pairs, k = times per record)
//
//   - Time:   O((V + E)·k) — one enqueue per person, one scan per record
//     per expanded endpoint
//   - Memory: O(V) for frontier, state map, and result
//
// Usage
//
//	res, err := outbreak.Trace(g, "Anna", 100)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, ErrLookup,
//	    // or a wrapped hook error
//	}
//	fmt.Println(res.Alerted())
//
// Options
//
//   - DefaultOptions(): background context, DefaultIncubationLatency (60),
//     no-op hooks.
//   - WithContext(ctx):           set a custom context for cancellation.
//   - WithIncubationLatency(d):   override the exposure→contagious delay (d ≥ 0).
//   - WithOnEnqueue(fn):          hook at discovery.
//   - WithOnDequeue(fn):          hook when leaving the frontier.
//   - WithOnVisit(fn):            hook at expansion; returning error aborts.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if the source person does not exist.
//   - ErrOptionViolation if an invalid Option is supplied (negative latency).
//   - ErrLookup          if a temporal query against the graph fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package outbreak
