package game

// UpdateTurnOrder recomputes the active participant. Among participants
// still under the elimination limit, the one with the fewest monsters on
// the board goes next; ties are broken uniformly at random. If nobody is
// eligible the turn state is left untouched (the caller is expected to have
// ended the game already).
func (s *Session) UpdateTurnOrder() {
	counts := make(map[string]int, len(s.Participants))
	for _, p := range s.Participants {
		counts[p.ID] = 0
	}
	for _, m := range s.Monsters {
		counts[m.PlayerID]++
	}

	minCount := -1
	for _, p := range s.EligibleParticipants() {
		if minCount < 0 || counts[p.ID] < minCount {
			minCount = counts[p.ID]
		}
	}
	var candidates []*Participant
	for _, p := range s.EligibleParticipants() {
		if counts[p.ID] == minCount {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return
	}

	next := candidates[s.rng.Intn(len(candidates))]
	s.CurrentTurn = next.ID
	for _, p := range s.Participants {
		p.Active = p.ID == next.ID
	}
}
