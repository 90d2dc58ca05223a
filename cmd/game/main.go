// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/psiegel-series/zombiebunker/internal/app"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "session seed (0 picks one from the clock)")
	enemies := flag.String("enemies", "", "optional JSON file overriding enemy tiers")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the game")
	flag.Parse()

	if *enemies != "" {
		if err := defs.LoadEnemyDefinitions(*enemies); err != nil {
			log.Fatalf("Failed to load enemy definitions: %v", err)
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := app.DefaultOptions
	opts.Seed = *seed
	res := state.NewResources(opts)

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, res))
	} else {
		sm.SetState(state.NewMenuState(sm, res))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Zombie Bunker")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
