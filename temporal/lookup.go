// Package temporal provides pure, read-only time-window queries over a
// core.Graph: who was contacted at or after a timestamp, and when a pair
// first met at or after a timestamp.
package temporal

import (
	"errors"
	"fmt"

	"github.com/ostrello/epitrace/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed to a lookup.
var ErrGraphNil = errors.New("temporal: graph is nil")

// ContactsAtOrAfter returns the subset of person's contacts whose latest
// recorded meeting with person happened at or after ts, sorted by ID.
//
// Because every contact record is kept ascending, comparing only the last
// recorded time is equivalent to asking whether any meeting at or after ts
// occurred; this function relies on that invariant.
//
// Returns ErrGraphNil for a nil graph and core.ErrPersonNotFound (wrapped)
// for an unknown person.
// Complexity: O(d·k) worst case, d = contacts, k = times per record.
func ContactsAtOrAfter(g *core.Graph, person string, ts int64) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	contacts, err := g.Contacts(person)
	if err != nil {
		return nil, fmt.Errorf("temporal: contacts of %q: %w", person, err)
	}

	out := make([]string, 0, len(contacts))
	for _, other := range contacts {
		times, err := g.ContactTimes(person, other)
		if err != nil {
			return nil, fmt.Errorf("temporal: contact times %q-%q: %w", person, other, err)
		}
		// latest meeting is the last element of the sorted record
		if len(times) > 0 && times[len(times)-1] >= ts {
			out = append(out, other)
		}
	}

	return out, nil
}

// EarliestContactAtOrAfter returns the first recorded time a and b met at
// or after ts. The second return value reports whether such a meeting
// exists; (0, false, nil) is the no-qualifying-contact sentinel, not an
// error. A forward scan of the ascending record finds the answer in one
// pass (pairs rarely accumulate many repeated meetings).
//
// Returns ErrGraphNil for a nil graph and core.ErrPersonNotFound (wrapped)
// when either person is unknown.
// Complexity: O(k), k = recorded times for the pair.
func EarliestContactAtOrAfter(g *core.Graph, a, b string, ts int64) (int64, bool, error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	times, err := g.ContactTimes(a, b)
	if err != nil {
		return 0, false, fmt.Errorf("temporal: contact times %q-%q: %w", a, b, err)
	}
	for _, t := range times {
		if t >= ts {
			return t, true, nil
		}
	}

	return 0, false, nil
}
