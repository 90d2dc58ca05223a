// internal/defs/waves.go
package defs

import (
	"time"

	"github.com/psiegel-series/zombiebunker/internal/config"
)

// SpawnGroup is a number of enemies of one tier.
type SpawnGroup struct {
	Kind  EnemyKind
	Count int
}

// WaveDefinition describes the composition and pacing of one wave.
type WaveDefinition struct {
	Number        int
	Spawns        []SpawnGroup
	SpawnInterval time.Duration // between individual spawns
}

// Total returns the number of enemies in the wave.
func (w WaveDefinition) Total() int {
	n := 0
	for _, g := range w.Spawns {
		n += g.Count
	}
	return n
}

// GenerateWave composes wave n. It is a pure function of n.
//
// Walkers grow every wave, runners join from wave 3, tanks from wave 5 and
// every fifth wave brings a boss. Groups with a zero count are left out.
func GenerateWave(n int) WaveDefinition {
	var spawns []SpawnGroup
	add := func(kind EnemyKind, count int) {
		if count > 0 {
			spawns = append(spawns, SpawnGroup{Kind: kind, Count: count})
		}
	}

	add(EnemyWalker, 2+n)
	if n >= 3 {
		add(EnemyRunner, int(float64(n-2)*1.5))
	}
	if n >= 5 {
		add(EnemyTank, int(float64(n-4)*0.8))
	}
	if n%5 == 0 {
		add(EnemyBoss, 1)
	}

	interval := config.BaseSpawnInterval - time.Duration(n)*config.SpawnIntervalDecrease
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}

	return WaveDefinition{Number: n, Spawns: spawns, SpawnInterval: interval}
}
