// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind is one of the four zombie tiers.
type EnemyKind string

const (
	EnemyWalker EnemyKind = "walker"
	EnemyRunner EnemyKind = "runner"
	EnemyTank   EnemyKind = "tank"
	EnemyBoss   EnemyKind = "boss"
)

// Visuals holds the presentation hints for an enemy tier.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

// EnemyDefinition holds all the static data for a specific tier of enemy.
type EnemyDefinition struct {
	ID      EnemyKind `json:"id"`
	Health  float64   `json:"health"`
	Speed   float64   `json:"speed"`  // pixels per second
	Radius  float64   `json:"radius"` // collision radius in pixels
	Damage  float64   `json:"damage"` // contact damage dealt to the bunker
	Score   int       `json:"score"`
	Visuals Visuals   `json:"visuals"`
}

// EnemyLibrary maps every tier to its definition. LoadEnemyDefinitions may
// override entries from a JSON file.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyWalker: {
		ID: EnemyWalker, Health: 20, Speed: 5, Radius: 10, Damage: 10, Score: 10,
		Visuals: Visuals{Color: color.RGBA{0x66, 0xcc, 0x44, 0xff}},
	},
	EnemyRunner: {
		ID: EnemyRunner, Health: 12, Speed: 15, Radius: 8, Damage: 8, Score: 15,
		Visuals: Visuals{Color: color.RGBA{0xcc, 0xcc, 0x33, 0xff}},
	},
	EnemyTank: {
		ID: EnemyTank, Health: 80, Speed: 5, Radius: 14, Damage: 20, Score: 40,
		Visuals: Visuals{Color: color.RGBA{0x55, 0x99, 0x44, 0xff}},
	},
	EnemyBoss: {
		ID: EnemyBoss, Health: 250, Speed: 10, Radius: 20, Damage: 35, Score: 200,
		Visuals: Visuals{Color: color.RGBA{0x88, 0x33, 0x88, 0xff}},
	},
}
