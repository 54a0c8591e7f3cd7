package selection

import (
	"reflect"
	"testing"
)

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	s.Add("hgv_class1")
	s.Add("hgv_class1")
	if s.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", s.Len())
	}
	if !s.Contains("hgv_class1") {
		t.Fatalf("expected membership")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New("teamwork")
	s.Remove("no_such")
	if s.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", s.Len())
	}
	s.Remove("teamwork")
	if s.Len() != 0 || s.Contains("teamwork") {
		t.Fatalf("expected empty set")
	}
}

func TestTogglePairRestoresMembership(t *testing.T) {
	s := New("a", "b")

	// Present: toggle twice should end present.
	s.Toggle("a")
	s.Toggle("a")
	if !s.Contains("a") {
		t.Fatalf("a should be present after toggle pair")
	}

	// Absent: toggle twice should end absent.
	s.Toggle("c")
	s.Toggle("c")
	if s.Contains("c") {
		t.Fatalf("c should be absent after toggle pair")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New()
	s.Add("b")
	s.Add("a")
	s.Add("c")
	s.Remove("a")
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", got)
	}
}

func TestSeedDedupes(t *testing.T) {
	s := New("x", "y", "x")
	if s.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", s.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	original := New("hgv_class1", "teamwork", "cscs_card")

	// Persist as an id sequence, reload, compare membership.
	reloaded := New(original.IDs()...)
	if reloaded.Len() != original.Len() {
		t.Fatalf("round trip changed size: %d != %d", reloaded.Len(), original.Len())
	}
	for _, id := range original.IDs() {
		if !reloaded.Contains(id) {
			t.Fatalf("round trip lost %q", id)
		}
	}
}

func TestMembershipIsACopy(t *testing.T) {
	s := New("a")
	m := s.Membership()
	m["b"] = true
	if s.Contains("b") {
		t.Fatalf("mutating the membership copy must not touch the set")
	}
}
