// Package core defines the central Graph, Trace, and contact-record types,
// and provides thread-safe primitives for recording and querying timestamped
// person-to-person contacts.
//
// All core APIs share one sync.RWMutex: ingestion takes the write lock,
// queries take the read lock, so a fully ingested graph can serve many
// concurrent readers.
//
// This file declares Trace, the Graph arena layout, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyPersonID  - person ID is the empty string.
//	ErrPersonNotFound - requested person does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyPersonID indicates that the provided person ID is empty.
	ErrEmptyPersonID = errors.New("core: person ID is empty")

	// ErrPersonNotFound indicates an operation referenced a person never ingested.
	ErrPersonNotFound = errors.New("core: person not found")
)

// Trace is one raw contact observation: PersonA met PersonB at Time.
// The pair is unordered; Trace{A, B, t} and Trace{B, A, t} describe the
// same contact. Traces are consumed by AddTrace and folded into the
// pair's contact record, not retained as distinct entities.
type Trace struct {
	// PersonA is one endpoint of the contact.
	PersonA string

	// PersonB is the other endpoint.
	PersonB string

	// Time is the integer timestamp of the meeting.
	Time int64
}

// contactRecord stores every recorded meeting between one unordered pair.
//
// a and b are arena indices of the endpoints with a <= b, so the record is
// canonical regardless of the order the pair was reported in. times is kept
// strictly ascending with no duplicates; several query paths rely on being
// able to read the latest contact as the last element.
type contactRecord struct {
	a, b  int
	times []int64
}

// Graph is the in-memory contact graph.
//
// People live in a growable arena (persons) addressed by dense integer
// indices; index maps a person ID back to its slot. Contact records live in
// their own arena (records) addressed by stable integer handles. Adjacency
// is adj[personIdx][neighborIdx] = record handle, entered symmetrically from
// both endpoints so a meeting recorded through either direction is visible
// through the other.
type Graph struct {
	mu sync.RWMutex

	index   map[string]int  // person ID → arena index
	persons []string        // arena index → person ID
	records []contactRecord // record handle → contact record
	adj     []map[int]int   // person index → neighbor index → record handle
}

// NewGraph creates an empty contact graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
