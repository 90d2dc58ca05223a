package defs

import (
	"testing"

	"github.com/psiegel-series/zombiebunker/internal/config"
)

func countOf(w WaveDefinition, kind EnemyKind) (int, int) {
	groups, total := 0, 0
	for _, g := range w.Spawns {
		if g.Kind == kind {
			groups++
			total += g.Count
		}
	}
	return groups, total
}

func TestGenerateWave_Composition(t *testing.T) {
	cases := []struct {
		n                             int
		walkers, runners, tanks, boss int
	}{
		{1, 3, 0, 0, 0},
		{3, 5, 1, 0, 0},
		{5, 7, 4, 0, 1},
		{6, 8, 6, 1, 0},
		{10, 12, 12, 4, 1},
	}
	for _, c := range cases {
		w := GenerateWave(c.n)
		if w.Number != c.n {
			t.Fatalf("wave %d: number %d", c.n, w.Number)
		}
		for kind, want := range map[EnemyKind]int{
			EnemyWalker: c.walkers, EnemyRunner: c.runners, EnemyTank: c.tanks, EnemyBoss: c.boss,
		} {
			if _, got := countOf(w, kind); got != want {
				t.Errorf("wave %d: %s = %d, want %d", c.n, kind, got, want)
			}
		}
		if w.Total() != c.walkers+c.runners+c.tanks+c.boss {
			t.Errorf("wave %d: total %d", c.n, w.Total())
		}
	}
}

func TestGenerateWave_FiveHasOneBoss(t *testing.T) {
	groups, total := countOf(GenerateWave(5), EnemyBoss)
	if groups != 1 || total != 1 {
		t.Fatalf("wave 5: %d boss groups totalling %d, want exactly one of 1", groups, total)
	}
}

func TestGenerateWave_NoEmptyGroups(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for _, g := range GenerateWave(n).Spawns {
			if g.Count <= 0 {
				t.Fatalf("wave %d has an empty %s group", n, g.Kind)
			}
		}
	}
}

func TestGenerateWave_Interval(t *testing.T) {
	if got, want := GenerateWave(1).SpawnInterval, config.BaseSpawnInterval-config.SpawnIntervalDecrease; got != want {
		t.Fatalf("wave 1 interval %v, want %v", got, want)
	}
	if got := GenerateWave(100).SpawnInterval; got != config.MinSpawnInterval {
		t.Fatalf("late interval %v, want floor %v", got, config.MinSpawnInterval)
	}
	for n := 1; n < 40; n++ {
		if GenerateWave(n+1).SpawnInterval > GenerateWave(n).SpawnInterval {
			t.Fatalf("interval grew between waves %d and %d", n, n+1)
		}
	}
}
