package game

// ResolveInteractions removes monsters that share a cell and charges each
// removal to the owner's elimination counter. Rules per occupied cell:
//
//	2 occupants, same type      -> both removed
//	2 occupants, different type -> cyclic dominance, loser removed
//	3+ occupants                -> all removed
//
// Reapplying to a board with no co-located monsters is a no-op.
func (s *Session) ResolveInteractions() {
	groups := make(map[Position][]string)
	for id, m := range s.Monsters {
		groups[m.Position] = append(groups[m.Position], id)
	}
	for _, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		if len(ids) > 2 {
			// Overcrowded cell: everyone loses.
			for _, id := range ids {
				s.remove(id)
			}
			continue
		}
		a, b := s.Monsters[ids[0]], s.Monsters[ids[1]]
		switch {
		case a.Type == b.Type:
			s.remove(ids[0])
			s.remove(ids[1])
		case a.Type.Beats(b.Type):
			s.remove(ids[1])
		case b.Type.Beats(a.Type):
			s.remove(ids[0])
		}
	}
}

func (s *Session) remove(monsterID string) {
	m, ok := s.Monsters[monsterID]
	if !ok {
		return
	}
	delete(s.Monsters, monsterID)
	s.Removals[m.PlayerID]++
}
