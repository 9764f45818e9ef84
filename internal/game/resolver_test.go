package game

import (
	"math/rand"
	"testing"
)

func newTestSession(t *testing.T, players ...string) *Session {
	t.Helper()
	s := NewSession("test", rand.New(rand.NewSource(1)))
	for _, id := range players {
		if err := s.AddParticipant(id); err != nil {
			t.Fatalf("add participant %s: %v", id, err)
		}
	}
	return s
}

func TestResolveSameTypePairBothRemoved(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.Monsters["a"] = &Monster{Type: Ghost, Position: Position{5, 5}, PlayerID: "p1"}
	s.Monsters["b"] = &Monster{Type: Ghost, Position: Position{5, 5}, PlayerID: "p2"}

	s.ResolveInteractions()

	if len(s.Monsters) != 0 {
		t.Fatalf("expected both monsters removed, %d left", len(s.Monsters))
	}
	if s.Removals["p1"] != 1 || s.Removals["p2"] != 1 {
		t.Fatalf("expected one removal each, got p1=%d p2=%d", s.Removals["p1"], s.Removals["p2"])
	}
}

func TestResolveCyclicDominance(t *testing.T) {
	cases := []struct {
		name           string
		first, second  MonsterType
		survivorsOwner string
	}{
		{"vampire beats werewolf", Vampire, Werewolf, "p1"},
		{"werewolf beats ghost", Werewolf, Ghost, "p1"},
		{"ghost beats vampire", Ghost, Vampire, "p1"},
		{"werewolf loses to vampire", Werewolf, Vampire, "p2"},
		{"ghost loses to werewolf", Ghost, Werewolf, "p2"},
		{"vampire loses to ghost", Vampire, Ghost, "p2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, "p1", "p2")
			s.Monsters["a"] = &Monster{Type: tc.first, Position: Position{3, 3}, PlayerID: "p1"}
			s.Monsters["b"] = &Monster{Type: tc.second, Position: Position{3, 3}, PlayerID: "p2"}

			s.ResolveInteractions()

			if len(s.Monsters) != 1 {
				t.Fatalf("expected one survivor, got %d", len(s.Monsters))
			}
			for _, m := range s.Monsters {
				if m.PlayerID != tc.survivorsOwner {
					t.Fatalf("expected survivor owned by %s, got %s", tc.survivorsOwner, m.PlayerID)
				}
			}
			loser := "p1"
			if tc.survivorsOwner == "p1" {
				loser = "p2"
			}
			if s.Removals[loser] != 1 {
				t.Fatalf("expected loser %s to have 1 removal, got %d", loser, s.Removals[loser])
			}
			if s.Removals[tc.survivorsOwner] != 0 {
				t.Fatalf("winner should have no removals, got %d", s.Removals[tc.survivorsOwner])
			}
		})
	}
}

func TestResolveOvercrowdedCellRemovesAll(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.Monsters["a"] = &Monster{Type: Vampire, Position: Position{4, 4}, PlayerID: "p1"}
	s.Monsters["b"] = &Monster{Type: Werewolf, Position: Position{4, 4}, PlayerID: "p1"}
	s.Monsters["c"] = &Monster{Type: Ghost, Position: Position{4, 4}, PlayerID: "p2"}
	s.Monsters["elsewhere"] = &Monster{Type: Ghost, Position: Position{0, 0}, PlayerID: "p2"}

	s.ResolveInteractions()

	if len(s.Monsters) != 1 {
		t.Fatalf("expected only the uncontested monster to survive, got %d", len(s.Monsters))
	}
	if _, ok := s.Monsters["elsewhere"]; !ok {
		t.Fatalf("uncontested monster was removed")
	}
	if s.Removals["p1"] != 2 || s.Removals["p2"] != 1 {
		t.Fatalf("expected removals p1=2 p2=1, got p1=%d p2=%d", s.Removals["p1"], s.Removals["p2"])
	}
}

func TestResolveIdempotentOnQuietBoard(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.Monsters["a"] = &Monster{Type: Vampire, Position: Position{1, 1}, PlayerID: "p1"}
	s.Monsters["b"] = &Monster{Type: Ghost, Position: Position{8, 8}, PlayerID: "p2"}

	s.ResolveInteractions()
	s.ResolveInteractions()

	if len(s.Monsters) != 2 {
		t.Fatalf("resolver mutated a board with no co-located monsters")
	}
	if s.Removals["p1"] != 0 || s.Removals["p2"] != 0 {
		t.Fatalf("resolver charged removals on a quiet board")
	}
}

func TestResolveLeavesNoSharedPositions(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	types := []MonsterType{Vampire, Werewolf, Ghost}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		owner := "p1"
		if i%2 == 1 {
			owner = "p2"
		}
		id := string(rune('a'+i%26)) + string(rune('0'+i/26))
		s.Monsters[id] = &Monster{
			Type:     types[rng.Intn(len(types))],
			Position: Position{rng.Intn(BoardSize), rng.Intn(BoardSize)},
			PlayerID: owner,
		}
	}

	s.ResolveInteractions()

	seen := make(map[Position]string)
	for id, m := range s.Monsters {
		if prev, ok := seen[m.Position]; ok {
			t.Fatalf("monsters %s and %s share position %s after resolution", prev, id, m.Position)
		}
		seen[m.Position] = id
	}
}
