package system

import (
	"testing"
	"time"

	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

type waveRecorder struct {
	spawns    []defs.EnemyKind
	started   []int
	completed []int
}

func (r *waveRecorder) callbacks() WaveCallbacks {
	return WaveCallbacks{
		OnSpawn:        func(k defs.EnemyKind) { r.spawns = append(r.spawns, k) },
		OnWaveStart:    func(n int) { r.started = append(r.started, n) },
		OnWaveComplete: func(n int) { r.completed = append(r.completed, n) },
	}
}

func TestBuildSpawnQueue_PreservesCounts(t *testing.T) {
	wave := defs.GenerateWave(10)
	queue := BuildSpawnQueue(wave, utils.NewPRNGService(3))
	if len(queue) != wave.Total() {
		t.Fatalf("queue length %d, want %d", len(queue), wave.Total())
	}

	counts := make(map[defs.EnemyKind]int)
	for _, k := range queue {
		counts[k]++
	}
	for _, g := range wave.Spawns {
		if counts[g.Kind] != g.Count {
			t.Fatalf("%s: got %d, want %d", g.Kind, counts[g.Kind], g.Count)
		}
	}
}

func TestBuildSpawnQueue_Deterministic(t *testing.T) {
	wave := defs.GenerateWave(7)
	a := BuildSpawnQueue(wave, utils.NewPRNGService(99))
	b := BuildSpawnQueue(wave, utils.NewPRNGService(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("queues differ at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestWaveSystem_IdleUntilStart(t *testing.T) {
	rec := &waveRecorder{}
	s := NewWaveSystem(utils.NewPRNGService(1), rec.callbacks())

	s.Update(10*time.Second, 0)
	if s.State() != WaveIdle || s.Wave() != 0 || len(rec.spawns) != 0 {
		t.Fatal("an idle director must not advance")
	}

	s.Start()
	if s.State() != WaveSpawning || s.Wave() != 1 {
		t.Fatalf("after Start: state %s wave %d", s.State(), s.Wave())
	}
	if len(rec.started) != 1 || rec.started[0] != 1 {
		t.Fatalf("wave start callbacks %v", rec.started)
	}

	s.Start()
	if s.Wave() != 1 || len(rec.started) != 1 {
		t.Fatal("a second Start must be ignored")
	}
}

func TestWaveSystem_FullCycle(t *testing.T) {
	rec := &waveRecorder{}
	s := NewWaveSystem(utils.NewPRNGService(1), rec.callbacks())
	s.Start()

	interval := defs.GenerateWave(1).SpawnInterval
	total := defs.GenerateWave(1).Total()
	if total != 3 {
		t.Fatalf("wave 1 total = %d, want 3", total)
	}

	// First spawn fires immediately.
	s.Update(0, 0)
	if len(rec.spawns) != 1 || s.State() != WaveSpawning {
		t.Fatalf("after first tick: %d spawns, state %s", len(rec.spawns), s.State())
	}

	s.Update(interval/2, 1)
	if len(rec.spawns) != 1 {
		t.Fatal("spawned before the interval elapsed")
	}
	s.Update(interval/2, 1)
	if len(rec.spawns) != 2 {
		t.Fatalf("want 2 spawns, got %d", len(rec.spawns))
	}

	// The last spawn empties the queue and switches to active on the same call.
	s.Update(interval, 2)
	if len(rec.spawns) != 3 || s.State() != WaveActive {
		t.Fatalf("after last spawn: %d spawns, state %s", len(rec.spawns), s.State())
	}
	if s.SpawnedThisWave() != 3 || s.Pending() != 0 {
		t.Fatalf("spawned %d pending %d", s.SpawnedThisWave(), s.Pending())
	}

	s.Update(time.Minute, 3)
	if s.State() != WaveActive || len(rec.completed) != 0 {
		t.Fatal("wave completed while enemies were alive")
	}

	s.Update(0, 0)
	if s.State() != WaveBreak || len(rec.completed) != 1 || rec.completed[0] != 1 {
		t.Fatalf("state %s completed %v", s.State(), rec.completed)
	}
	if s.BreakRemaining() != config.WaveBreak {
		t.Fatalf("break remaining %v, want %v", s.BreakRemaining(), config.WaveBreak)
	}

	s.Update(config.WaveBreak-time.Second, 0)
	if s.State() != WaveBreak {
		t.Fatal("break ended early")
	}
	s.Update(time.Second, 0)
	if s.State() != WaveSpawning || s.Wave() != 2 {
		t.Fatalf("after break: state %s wave %d", s.State(), s.Wave())
	}
	if len(rec.started) != 2 || rec.started[1] != 2 {
		t.Fatalf("wave start callbacks %v", rec.started)
	}
	if s.Current().Number != 2 || s.Pending() != defs.GenerateWave(2).Total() {
		t.Fatalf("wave 2 not composed: %+v pending %d", s.Current(), s.Pending())
	}
}

func TestWaveSystem_NilCallbacks(t *testing.T) {
	s := NewWaveSystem(utils.NewPRNGService(1), WaveCallbacks{})
	s.Start()
	for i := 0; i < 30; i++ {
		s.Update(time.Second, 0)
	}
	if s.Wave() < 2 {
		t.Fatalf("director stalled at wave %d", s.Wave())
	}
}

func TestWaveState_String(t *testing.T) {
	for state, want := range map[WaveState]string{
		WaveIdle: "idle", WaveSpawning: "spawning", WaveActive: "active", WaveBreak: "break",
	} {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
