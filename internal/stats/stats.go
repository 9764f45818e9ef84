// Package stats holds the process-wide win/loss record, persisted as a
// single JSON file that is loaded once at startup and overwritten wholesale
// after each game conclusion.
package stats

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// PlayerRecord is one participant's lifetime tally.
type PlayerRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Record is the persisted shape: total games played plus per-player tallies.
type Record struct {
	TotalGames  int                     `json:"totalGames"`
	PlayerStats map[string]PlayerRecord `json:"playerStats"`
}

// Store guards the global record. Persistence is fire-and-forget relative to
// gameplay: a failed save is logged, never surfaced to players.
type Store struct {
	mu     sync.Mutex
	path   string
	record Record
}

// Load reads the record from path. A missing or corrupt file starts the
// store from an empty record.
func Load(path string) *Store {
	s := &Store{path: path, record: Record{PlayerStats: map[string]PlayerRecord{}}}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("stats: no stats file at %s, starting fresh", path)
		return s
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("stats: corrupt stats file %s, starting fresh: %v", path, err)
		return s
	}
	if rec.PlayerStats == nil {
		rec.PlayerStats = map[string]PlayerRecord{}
	}
	s.record = rec
	return s
}

// Touch ensures playerID has a record, without persisting.
func (s *Store) Touch(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.record.PlayerStats[playerID]; !ok {
		s.record.PlayerStats[playerID] = PlayerRecord{}
	}
}

// RecordGameEnd bumps the total-games counter, credits winnerID with a win
// and every other participant with a loss, then persists. An empty winnerID
// means mutual elimination: everyone records a loss.
func (s *Store) RecordGameEnd(winnerID string, participantIDs []string) {
	s.mu.Lock()
	s.record.TotalGames++
	for _, id := range participantIDs {
		rec := s.record.PlayerStats[id]
		if id == winnerID && winnerID != "" {
			rec.Wins++
		} else {
			rec.Losses++
		}
		s.record.PlayerStats[id] = rec
	}
	s.mu.Unlock()
	s.save()
}

// Snapshot returns a copy of the full record.
func (s *Store) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Record{TotalGames: s.record.TotalGames, PlayerStats: make(map[string]PlayerRecord, len(s.record.PlayerStats))}
	for id, rec := range s.record.PlayerStats {
		out.PlayerStats[id] = rec
	}
	return out
}

// Player returns the record for playerID, zero-valued if unknown.
func (s *Store) Player(playerID string) PlayerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.PlayerStats[playerID]
}

// TotalGames returns the games-played counter.
func (s *Store) TotalGames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.TotalGames
}

func (s *Store) save() {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.record, "", "  ")
	s.mu.Unlock()
	if err != nil {
		log.Printf("stats: marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("stats: failed to save %s: %v", s.path, err)
	}
}
