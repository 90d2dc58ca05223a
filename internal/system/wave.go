// internal/system/wave.go
package system

import (
	"log"
	"time"

	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

// WaveState is the director's phase.
type WaveState int

const (
	WaveIdle WaveState = iota
	WaveSpawning
	WaveActive
	WaveBreak
)

func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveActive:
		return "active"
	case WaveBreak:
		return "break"
	}
	return "unknown"
}

// WaveCallbacks connect the director to its host. Nil callbacks are skipped.
type WaveCallbacks struct {
	OnSpawn        func(kind defs.EnemyKind)
	OnWaveStart    func(number int)
	OnWaveComplete func(number int)
}

// WaveSystem paces enemy waves: idle -> spawning -> active -> break ->
// spawning ... It only emits requests through its callbacks and never touches
// enemies itself.
type WaveSystem struct {
	callbacks   WaveCallbacks
	rng         *utils.PRNGService
	breakLength time.Duration

	state      WaveState
	number     int
	current    defs.WaveDefinition
	queue      []defs.EnemyKind
	spawnTimer time.Duration
	breakTimer time.Duration
	spawned    int
}

func NewWaveSystem(rng *utils.PRNGService, callbacks WaveCallbacks) *WaveSystem {
	return &WaveSystem{
		callbacks:   callbacks,
		rng:         rng,
		breakLength: config.WaveBreak,
	}
}

// State returns the current phase.
func (s *WaveSystem) State() WaveState {
	return s.state
}

// Wave returns the current wave number, 0 before Start.
func (s *WaveSystem) Wave() int {
	return s.number
}

// Current returns the definition of the current wave.
func (s *WaveSystem) Current() defs.WaveDefinition {
	return s.current
}

// Pending returns how many spawns are still queued.
func (s *WaveSystem) Pending() int {
	return len(s.queue)
}

// SpawnedThisWave returns how many spawns the current wave has emitted.
func (s *WaveSystem) SpawnedThisWave() int {
	return s.spawned
}

// BreakRemaining returns the time left in the current break.
func (s *WaveSystem) BreakRemaining() time.Duration {
	if s.state != WaveBreak {
		return 0
	}
	return s.breakTimer
}

// Start leaves idle by composing wave 1. It does nothing once started.
func (s *WaveSystem) Start() {
	if s.state != WaveIdle {
		return
	}
	s.startNextWave()
}

// Update advances the director by delta. aliveCount is the number of enemies
// the host still has on the field.
func (s *WaveSystem) Update(delta time.Duration, aliveCount int) {
	switch s.state {
	case WaveSpawning:
		s.spawnTimer -= delta
		if s.spawnTimer <= 0 && len(s.queue) > 0 {
			kind := s.queue[0]
			s.queue = s.queue[1:]
			s.spawned++
			if s.callbacks.OnSpawn != nil {
				s.callbacks.OnSpawn(kind)
			}
			s.spawnTimer = s.current.SpawnInterval
		}
		if len(s.queue) == 0 {
			s.state = WaveActive
		}

	case WaveActive:
		if aliveCount == 0 {
			log.Printf("Wave %d complete", s.number)
			if s.callbacks.OnWaveComplete != nil {
				s.callbacks.OnWaveComplete(s.number)
			}
			s.state = WaveBreak
			s.breakTimer = s.breakLength
		}

	case WaveBreak:
		s.breakTimer -= delta
		if s.breakTimer <= 0 {
			s.startNextWave()
		}
	}
}

func (s *WaveSystem) startNextWave() {
	s.number++
	s.current = defs.GenerateWave(s.number)
	s.queue = BuildSpawnQueue(s.current, s.rng)
	s.spawned = 0
	s.spawnTimer = 0
	s.state = WaveSpawning

	log.Printf("Wave %d: %d enemies, interval %v", s.number, len(s.queue), s.current.SpawnInterval)
	if s.callbacks.OnWaveStart != nil {
		s.callbacks.OnWaveStart(s.number)
	}
}

// BuildSpawnQueue expands every spawn group into single entries and shuffles
// them so tiers interleave.
func BuildSpawnQueue(wave defs.WaveDefinition, rng *utils.PRNGService) []defs.EnemyKind {
	queue := make([]defs.EnemyKind, 0, wave.Total())
	for _, g := range wave.Spawns {
		for i := 0; i < g.Count; i++ {
			queue = append(queue, g.Kind)
		}
	}
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return queue
}
