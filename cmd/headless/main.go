// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/psiegel-series/zombiebunker/internal/app"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/event"
)

const tickDelta = 1.0 / 60

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	wave       int
	score      int
	kills      int
	matches    int
	bestChain  int
	reshuffles int
	survived   bool
	health     float64
}

func main() {
	var runs int
	var ticks int
	var moveEvery int
	var seedBase int64
	var enemies string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 60*60*5, "ticks per session at 60 per second")
	flag.IntVar(&moveEvery, "move-every", 45, "ticks between auto-played moves")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed for run 1, incremented per run")
	flag.StringVar(&enemies, "enemies", "", "optional JSON file overriding enemy tiers")
	flag.Parse()

	if runs <= 0 || ticks <= 0 || moveEvery <= 0 {
		fmt.Println("error: -runs, -ticks and -move-every must be > 0")
		return
	}
	if enemies != "" {
		if err := defs.LoadEnemyDefinitions(enemies); err != nil {
			log.Fatalf("Failed to load enemy definitions: %v", err)
		}
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d move_every=%d seed_base=%d\n\n", runs, ticks, moveEvery, seedBase)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats := playSession(i+1, seedBase+int64(i), ticks, moveEvery)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// playSession auto-plays one session, taking the hinted swap whenever the
// board is idle and moveEvery ticks have passed since the last move.
func playSession(runIndex int, seed int64, ticks, moveEvery int) runStats {
	opts := app.DefaultOptions
	opts.Seed = seed
	g := app.NewGame(opts)
	g.Start()

	stats := runStats{runIndex: runIndex, seed: g.Seed()}
	g.EventDispatcher.Subscribe(event.BoardReshuffled, event.ListenerFunc(func(event.Event) {
		stats.reshuffles++
	}))
	sinceMove := 0
	for stats.ticks < ticks && !g.IsOver() {
		sinceMove++
		if sinceMove >= moveEvery && !g.Busy() {
			if a, b, ok := g.Hint(); ok && g.TrySwap(a, b) {
				sinceMove = 0
			}
		}
		g.Update(tickDelta)
		stats.ticks++
	}

	s := g.Summary
	stats.wave = g.WaveSystem.Wave()
	stats.score = s.Score
	stats.kills = s.Kills
	stats.matches = s.Matches
	stats.bestChain = s.BestChain
	stats.survived = !g.IsOver()
	stats.health = g.Bunker.Health.Value
	return stats
}

func printRun(s runStats) {
	outcome := "fell"
	if s.survived {
		outcome = "held"
	}
	fmt.Printf("run %d seed=%d ticks=%d bunker %s (hp %.0f)\n", s.runIndex, s.seed, s.ticks, outcome, s.health)
	fmt.Printf("  wave=%d score=%d kills=%d matches=%d best_chain=x%d reshuffles=%d\n\n",
		s.wave, s.score, s.kills, s.matches, s.bestChain, s.reshuffles)
}

type aggregate struct {
	runs       int
	held       int
	meanScore  float64
	medianWave int
	maxWave    int
}

func summarize(all []runStats) aggregate {
	if len(all) == 0 {
		return aggregate{}
	}
	waves := make([]int, len(all))
	totalScore := 0
	agg := aggregate{runs: len(all)}
	for i, s := range all {
		waves[i] = s.wave
		totalScore += s.score
		if s.survived {
			agg.held++
		}
	}
	sort.Ints(waves)
	agg.meanScore = float64(totalScore) / float64(len(all))
	agg.medianWave = waves[len(waves)/2]
	agg.maxWave = waves[len(waves)-1]
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	if agg.runs == 0 {
		return
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("held=%d/%d mean_score=%.1f median_wave=%d max_wave=%d\n",
		agg.held, agg.runs, agg.meanScore, agg.medianWave, agg.maxWave)
}
