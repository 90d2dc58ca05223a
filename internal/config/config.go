// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 390
	ScreenHeight = 844
	MaxDeltaTime = 0.06

	// Battlefield occupies the top half, the tile grid the bottom half.
	FieldWidth  = ScreenWidth
	FieldHeight = ScreenHeight / 2

	GridRows  = 7
	GridCols  = 7
	CellSize  = 44
	CellGap   = 4
	CellPitch = CellSize + CellGap

	DragThreshold    = 12.0 // pixels before a drag locks to an axis
	CascadeStepDelay = 0.25 // seconds between cascade steps when nothing animates

	BunkerX         = FieldWidth / 2
	BunkerY         = FieldHeight / 2
	BunkerRadius    = 24.0
	BunkerMaxHealth = 100.0

	SpawnMargin = 12.0 // enemies appear this far inside the field edge

	TracerSpeed  = 900.0 // pixels per second
	TracerLength = 10.0
)

// Weapon tuning. Powered values apply when a match contains an upgraded tile.
const (
	HealAmount        = 15.0
	PoweredHealAmount = 35.0

	BulletDamage      = 10.0
	HeavyBulletDamage = 25.0

	GrenadeRadius = 60.0
	GrenadeDamage = 15.0
	RocketRadius  = 90.0
	RocketDamage  = 30.0

	FireZoneRadius     = 70.0
	FireZoneDuration   = 3.0
	FireZoneDPS        = 8.0
	NapalmZoneRadius   = 100.0
	NapalmZoneDuration = 5.0
	NapalmZoneDPS      = 12.0

	AirstrikeDamage = 50.0
)

// Wave pacing.
const (
	WaveBreak             = 5 * time.Second
	BaseSpawnInterval     = 1200 * time.Millisecond
	MinSpawnInterval      = 400 * time.Millisecond
	SpawnIntervalDecrease = 50 * time.Millisecond
)

const (
	MatchScorePerTile = 5
)

var (
	BackgroundColor = color.RGBA{15, 15, 35, 255}
	GridAreaColor   = color.RGBA{22, 33, 62, 255}
	DividerColor    = color.RGBA{58, 80, 107, 255}
	CellStrokeColor = color.RGBA{58, 80, 107, 255}
	BunkerColor     = color.RGBA{74, 74, 106, 255}
	BunkerStroke    = color.RGBA{136, 136, 170, 255}
	FireZoneColor   = color.RGBA{240, 128, 48, 70}
	BlastColor      = color.RGBA{224, 80, 64, 120}
	TracerColor     = color.RGBA{255, 221, 119, 255}
	HealthBarColor  = color.RGBA{204, 51, 51, 255}
	HealthBarBg     = color.RGBA{51, 51, 51, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HighlightColor  = color.RGBA{255, 255, 255, 200}
)
