// internal/event/types.go
package event

const (
	EnemySpawned       EventType = "EnemySpawned"       // Data: *component.Enemy
	EnemyKilled        EventType = "EnemyKilled"        // Data: *component.Enemy
	EnemyReachedBunker EventType = "EnemyReachedBunker" // Data: *component.Enemy
	WaveStarted        EventType = "WaveStarted"        // Data: int wave number
	WaveCompleted      EventType = "WaveCompleted"      // Data: int wave number
	EffectDispatched   EventType = "EffectDispatched"   // Data: component.Effect
	Detonation         EventType = "Detonation"         // Data: system.Detonation
	FireZoneCreated    EventType = "FireZoneCreated"    // Data: *component.FireZone
	FireZoneExpired    EventType = "FireZoneExpired"    // Data: *component.FireZone
	BoardReshuffled    EventType = "BoardReshuffled"
	BunkerDestroyed    EventType = "BunkerDestroyed"
)
