package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRegistryJoinCreatesSession(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))

	s, err := r.Join("g1", "p1")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if r.Get("g1") != s {
		t.Fatalf("registry does not hold the created session")
	}
	if s.CurrentTurn != "p1" {
		t.Fatalf("sole participant should hold the turn, got %q", s.CurrentTurn)
	}

	if _, err := r.Join("g1", "p2"); err != nil {
		t.Fatalf("second join: %v", err)
	}
	if len(s.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(s.Participants))
	}
}

func TestRegistryRejectsThirdJoin(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))
	if _, err := r.Join("g1", "p1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Join("g1", "p2"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Join("g1", "p3"); !errors.Is(err, ErrSessionFull) {
		t.Fatalf("want ErrSessionFull, got %v", err)
	}
	if len(r.Get("g1").Participants) != 2 {
		t.Fatalf("failed join mutated the session")
	}
}

func TestRegistryRemoveAllowsFreshSession(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))
	s, _ := r.Join("g1", "p1")
	s.Monsters["m"] = &Monster{Type: Vampire, Position: Position{0, 0}, PlayerID: "p1"}

	r.Remove("g1")
	if r.Get("g1") != nil {
		t.Fatalf("session survived removal")
	}

	fresh, err := r.Join("g1", "p9")
	if err != nil {
		t.Fatalf("rejoin after removal: %v", err)
	}
	if len(fresh.Monsters) != 0 {
		t.Fatalf("rejoined session inherited stale monsters")
	}
}

func TestRegistryLeave(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))
	if _, err := r.Join("g1", "p1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Join("g1", "p2"); err != nil {
		t.Fatal(err)
	}

	affected := r.Leave("p1")
	if len(affected) != 1 {
		t.Fatalf("expected one affected session, got %d", len(affected))
	}
	if affected[0].CurrentTurn != "p2" {
		t.Fatalf("turn not recomputed for remaining participant, got %q", affected[0].CurrentTurn)
	}

	if affected := r.Leave("p2"); len(affected) != 0 {
		t.Fatalf("emptied session should not be returned, got %d", len(affected))
	}
	if r.Len() != 0 {
		t.Fatalf("empty session should be destroyed, %d left", r.Len())
	}
}
