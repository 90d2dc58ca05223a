// internal/app/game.go
package app

import (
	"log"
	"sort"
	"time"

	"github.com/psiegel-series/zombiebunker/internal/board"
	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/entity"
	"github.com/psiegel-series/zombiebunker/internal/event"
	"github.com/psiegel-series/zombiebunker/internal/score"
	"github.com/psiegel-series/zombiebunker/internal/system"
	"github.com/psiegel-series/zombiebunker/internal/types"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

const (
	damageFlashDuration = 0.15
	blastDuration       = 0.4

	maxInitialReshuffles = 32
)

// Options configures a new session.
type Options struct {
	Seed  int64 // 0 picks a time-based seed
	Board board.Options
}

// DefaultOptions is a time-seeded session with the default board policy.
var DefaultOptions = Options{Board: board.DefaultOptions}

// Game holds one session: the tile board, the battlefield and the systems that
// connect them.
type Game struct {
	Board              *board.Board
	Bunker             *component.Bunker
	ECS                *entity.ECS
	MatchEffectSystem  *system.MatchEffectSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Summary            *score.Summary

	// Board barrier state
	phase     component.BoardPhase
	chain     int
	stepTimer float64
	lastStep  *StepResult
	drag      dragState

	gameTime float64
	over     bool
}

// NewGame initializes a session. Waves do not run until Start.
func NewGame(opts Options) *Game {
	rng := utils.NewPRNGService(opts.Seed)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bunker := &component.Bunker{
		Position: component.Position{X: config.BunkerX, Y: config.BunkerY},
		Radius:   config.BunkerRadius,
		Health:   component.Health{Value: config.BunkerMaxHealth, Max: config.BunkerMaxHealth},
	}

	g := &Game{
		Board:             board.New(rng, opts.Board),
		Bunker:            bunker,
		ECS:               ecs,
		MatchEffectSystem: system.NewMatchEffectSystem(),
		CombatSystem: system.NewCombatSystem(bunker,
			system.Field{Width: config.FieldWidth, Height: config.FieldHeight}, rng),
		MovementSystem:     system.NewMovementSystem(bunker),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		EventDispatcher:    dispatcher,
		Rng:                rng,
		Summary:            score.NewSummary(rng.Seed(), time.Now()),
	}
	g.WaveSystem = system.NewWaveSystem(rng, system.WaveCallbacks{
		OnSpawn: g.spawnEnemy,
		OnWaveStart: func(n int) {
			dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
		},
		OnWaveComplete: func(n int) {
			dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: n})
		},
	})

	g.ensurePlayable()

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.BunkerDestroyed, listener)

	return g
}

// GameEventListener keeps session bookkeeping in step with combat events.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if enemy, ok := e.Data.(*component.Enemy); ok {
			l.game.Summary.AddKill(enemy.Kind)
		}
	case event.BunkerDestroyed:
		l.game.Summary.Finish(l.game.WaveSystem.Wave())
	}
}

// ensurePlayable redraws a fresh board until it offers at least one move.
func (g *Game) ensurePlayable() {
	for i := 0; i < maxInitialReshuffles; i++ {
		if _, _, ok := g.Board.FindHint(); ok {
			return
		}
		g.Board.Reshuffle()
	}
}

// Start begins wave 1.
func (g *Game) Start() {
	g.WaveSystem.Start()
}

// Seed returns the seed that reproduces this session.
func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// IsOver reports whether the bunker has fallen.
func (g *Game) IsOver() bool {
	return g.over
}

// Phase returns the board barrier state.
func (g *Game) Phase() component.BoardPhase {
	return g.phase
}

// Busy reports whether the board rejects new moves.
func (g *Game) Busy() bool {
	return g.phase != component.BoardIdle || g.over
}

// GameTime returns the simulated seconds since the session began.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Update progresses the session by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime
	g.Summary.Tick(time.Duration(deltaTime * float64(time.Second)))

	if g.phase == component.BoardCascading {
		g.stepTimer -= deltaTime
		if g.stepTimer <= 0 {
			g.CompleteStep()
		}
	}

	live := g.ECS.LiveEnemies()
	for _, e := range g.MovementSystem.Update(deltaTime, live) {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBunker, Data: e})
		if g.CombatSystem.DamageBunker(e.Damage) {
			g.endGame()
		}
	}

	tick := g.CombatSystem.Update(deltaTime, g.ECS.LiveEnemies())
	for _, z := range tick.Expired {
		g.EventDispatcher.Dispatch(event.Event{Type: event.FireZoneExpired, Data: z})
	}
	g.flashHits(tick.Hits)

	g.VisualEffectSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()

	if !g.over {
		g.WaveSystem.Update(time.Duration(deltaTime*float64(time.Second)), g.ECS.AliveCount())
	}
}

// spawnEnemy materializes one enemy at a random point on the field perimeter.
func (g *Game) spawnEnemy(kind defs.EnemyKind) {
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		log.Printf("Enemy definition not found for kind: %s", kind)
		return
	}
	enemy := g.ECS.AddEnemy(def, g.perimeterPoint())
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
}

// perimeterPoint picks a uniform point on the rectangle inset SpawnMargin from
// the field edge.
func (g *Game) perimeterPoint() component.Position {
	m := config.SpawnMargin
	w := float64(config.FieldWidth) - 2*m
	h := float64(config.FieldHeight) - 2*m

	t := g.Rng.Range(0, 2*(w+h))
	switch {
	case t < w:
		return component.Position{X: m + t, Y: m}
	case t < w+h:
		return component.Position{X: m + w, Y: m + (t - w)}
	case t < 2*w+h:
		return component.Position{X: m + w - (t - w - h), Y: m + h}
	default:
		return component.Position{X: m, Y: m + h - (t - 2*w - h)}
	}
}

func (g *Game) flashHits(hits []system.Hit) {
	for _, h := range hits {
		if h.Target.IsDead() {
			continue
		}
		g.ECS.DamageFlashes[h.Target.ID] = &component.DamageFlash{
			Timer:    damageFlashDuration,
			Duration: damageFlashDuration,
		}
	}
}

// cleanupDestroyedEntities removes dead enemies and the ones that reached the
// bunker. Only deaths count as kills.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range sortedEnemyIDs(g.ECS) {
		e := g.ECS.Enemies[id]
		if e.IsDead() {
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: e})
		}
		if e.IsDead() || e.ReachedEnd {
			g.ECS.RemoveEnemy(id)
		}
	}
}

func (g *Game) endGame() {
	if g.over {
		return
	}
	g.over = true
	log.Printf("Bunker destroyed on wave %d after %.1fs", g.WaveSystem.Wave(), g.gameTime)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BunkerDestroyed, Data: g.WaveSystem.Wave()})
}

func sortedEnemyIDs(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
