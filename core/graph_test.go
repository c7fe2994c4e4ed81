package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ostrello/epitrace/core"
)

// TestAddPerson verifies idempotent insertion and empty-ID rejection.
func TestAddPerson(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddPerson(""); !errors.Is(err, core.ErrEmptyPersonID) {
		t.Errorf("empty ID: want ErrEmptyPersonID, got %v", err)
	}
	if err := g.AddPerson("Anna"); err != nil {
		t.Fatalf("AddPerson: %v", err)
	}
	// duplicate insert is a no-op
	if err := g.AddPerson("Anna"); err != nil {
		t.Fatalf("duplicate AddPerson: %v", err)
	}
	if !g.HasPerson("Anna") {
		t.Error("HasPerson(Anna) = false; want true")
	}
	if g.HasPerson("Borys") {
		t.Error("HasPerson(Borys) = true; want false")
	}
	if n := g.PersonCount(); n != 1 {
		t.Errorf("PersonCount = %d; want 1", n)
	}
}

// TestRecordContact_SortedUnique checks that a pair's time sequence stays
// ascending and deduplicated across out-of-order and repeated submissions.
func TestRecordContact_SortedUnique(t *testing.T) {
	g := core.NewGraph()
	for _, ts := range []int64{40, 10, 30, 10, 20, 40} {
		if err := g.RecordContact("Anna", "Borys", ts); err != nil {
			t.Fatalf("RecordContact(%d): %v", ts, err)
		}
	}
	times, err := g.ContactTimes("Anna", "Borys")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{10, 20, 30, 40}; !reflect.DeepEqual(times, want) {
		t.Errorf("ContactTimes = %v; want %v", times, want)
	}
}

// TestContactTimes_Symmetry ensures the single shared record is visible
// identically through either endpoint.
func TestContactTimes_Symmetry(t *testing.T) {
	g := core.NewGraph()
	g.RecordContact("Anna", "Borys", 5)
	g.RecordContact("Borys", "Anna", 15) // reversed order, same pair

	ab, _ := g.ContactTimes("Anna", "Borys")
	ba, _ := g.ContactTimes("Borys", "Anna")
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("asymmetric record: a→b %v, b→a %v", ab, ba)
	}
	if want := []int64{5, 15}; !reflect.DeepEqual(ab, want) {
		t.Errorf("ContactTimes = %v; want %v", ab, want)
	}
	// exactly one record exists for the pair
	if n := g.RecordCount(); n != 1 {
		t.Errorf("RecordCount = %d; want 1", n)
	}
}

// TestContactTimes_NotFoundVsNeverMet distinguishes the unknown-person error
// from the empty result of a known pair that never met.
func TestContactTimes_NotFoundVsNeverMet(t *testing.T) {
	g := core.NewGraph()
	g.AddPerson("Anna")
	g.AddPerson("Borys")

	times, err := g.ContactTimes("Anna", "Borys")
	if err != nil {
		t.Fatalf("known never-met pair: unexpected error %v", err)
	}
	if len(times) != 0 {
		t.Errorf("never-met pair: got %v; want empty", times)
	}

	if _, err = g.ContactTimes("Anna", "Ghost"); !errors.Is(err, core.ErrPersonNotFound) {
		t.Errorf("unknown person: want ErrPersonNotFound, got %v", err)
	}
	if _, err = g.Contacts("Ghost"); !errors.Is(err, core.ErrPersonNotFound) {
		t.Errorf("Contacts(unknown): want ErrPersonNotFound, got %v", err)
	}
}

// TestDuplicateTrace verifies the explicit idempotence contract: re-adding
// an identical (a, b, t) triple any number of times changes nothing.
func TestDuplicateTrace(t *testing.T) {
	g := core.NewGraph()
	tr := core.Trace{PersonA: "Anna", PersonB: "Borys", Time: 42}
	for i := 0; i < 5; i++ {
		if err := g.AddTrace(tr); err != nil {
			t.Fatalf("AddTrace #%d: %v", i, err)
		}
	}
	times, _ := g.ContactTimes("Anna", "Borys")
	if want := []int64{42}; !reflect.DeepEqual(times, want) {
		t.Errorf("ContactTimes = %v; want %v", times, want)
	}
}

// TestContacts checks neighbor enumeration: distinct, sorted, never self.
func TestContacts(t *testing.T) {
	g := core.NewGraph()
	g.RecordContact("Anna", "Borys", 1)
	g.RecordContact("Anna", "Clara", 2)
	g.RecordContact("Anna", "Borys", 3) // repeat pair, no new neighbor
	g.RecordContact("Anna", "Anna", 4)  // self-contact, stored but never listed

	got, err := g.Contacts("Anna")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Borys", "Clara"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Contacts(Anna) = %v; want %v", got, want)
	}
	// the other endpoint sees the shared record too
	got, _ = g.Contacts("Borys")
	if want := []string{"Anna"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Contacts(Borys) = %v; want %v", got, want)
	}
}

// TestPersons verifies lazily created people are listed sorted.
func TestPersons(t *testing.T) {
	g := core.NewGraph()
	g.RecordContact("Clara", "Anna", 1)
	g.AddPerson("Borys")
	if got, want := g.Persons(), []string{"Anna", "Borys", "Clara"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Persons = %v; want %v", got, want)
	}
}

// TestClone ensures the copy is deep: mutating the clone leaves the
// original untouched and vice versa.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	g.RecordContact("Anna", "Borys", 10)

	c := g.Clone()
	c.RecordContact("Anna", "Borys", 20)
	c.RecordContact("Borys", "Clara", 30)

	orig, _ := g.ContactTimes("Anna", "Borys")
	if want := []int64{10}; !reflect.DeepEqual(orig, want) {
		t.Errorf("original mutated through clone: %v", orig)
	}
	if g.HasPerson("Clara") {
		t.Error("original gained person through clone")
	}
	cloned, _ := c.ContactTimes("Anna", "Borys")
	if want := []int64{10, 20}; !reflect.DeepEqual(cloned, want) {
		t.Errorf("clone ContactTimes = %v; want %v", cloned, want)
	}
}
