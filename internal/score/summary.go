// internal/score/summary.go
package score

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
)

// Summary is the in-memory record of one session. It carries everything a
// leaderboard client would submit; nothing here talks to the network.
type Summary struct {
	SessionID   uuid.UUID
	Seed        int64
	StartedAt   time.Time
	Duration    time.Duration
	Score       int
	Kills       int
	KillsByTier map[defs.EnemyKind]int
	Wave        int
	Matches     int
	BestChain   int
	Finished    bool
}

// NewSummary opens a session record with a fresh id.
func NewSummary(seed int64, now time.Time) *Summary {
	return &Summary{
		SessionID:   uuid.New(),
		Seed:        seed,
		StartedAt:   now,
		KillsByTier: make(map[defs.EnemyKind]int),
	}
}

// AddKill credits one enemy and returns the points awarded.
func (s *Summary) AddKill(kind defs.EnemyKind) int {
	points := 0
	if def, ok := defs.EnemyLibrary[kind]; ok {
		points = def.Score
	}
	s.Kills++
	s.KillsByTier[kind]++
	s.Score += points
	return points
}

// AddMatch credits one match resolved at the given cascade depth (1 for the
// move itself) and returns the points awarded.
func (s *Summary) AddMatch(tiles, chain int) int {
	if chain < 1 {
		chain = 1
	}
	points := tiles * config.MatchScorePerTile * chain
	s.Matches++
	s.Score += points
	if chain > s.BestChain {
		s.BestChain = chain
	}
	return points
}

// Tick adds elapsed play time.
func (s *Summary) Tick(d time.Duration) {
	if !s.Finished {
		s.Duration += d
	}
}

// Finish freezes the record at the wave reached.
func (s *Summary) Finish(wave int) {
	s.Wave = wave
	s.Finished = true
}

// Report renders the summary as plain text.
func (s *Summary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "session  %s\n", s.SessionID)
	fmt.Fprintf(&b, "seed     %d\n", s.Seed)
	fmt.Fprintf(&b, "wave     %d\n", s.Wave)
	fmt.Fprintf(&b, "score    %d\n", s.Score)
	fmt.Fprintf(&b, "kills    %d", s.Kills)
	if s.Kills > 0 {
		var parts []string
		for _, kind := range []defs.EnemyKind{defs.EnemyWalker, defs.EnemyRunner, defs.EnemyTank, defs.EnemyBoss} {
			if n := s.KillsByTier[kind]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", kind, n))
			}
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "matches  %d (best chain x%d)\n", s.Matches, s.BestChain)
	fmt.Fprintf(&b, "time     %s\n", s.Duration.Round(time.Second))
	return b.String()
}
