// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and overrides the
// matching entries of EnemyLibrary. Tiers missing from the file keep their
// built-in values.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseEnemyDefinitions(file)
}

// ParseEnemyDefinitions applies a JSON array of enemy definitions to
// EnemyLibrary.
func ParseEnemyDefinitions(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for i, def := range enemyDefs {
		if _, known := EnemyLibrary[def.ID]; !known {
			return fmt.Errorf("enemy definition %d: unknown id %q", i, def.ID)
		}
		if def.Health <= 0 || def.Radius <= 0 {
			return fmt.Errorf("enemy definition %q: health and radius must be positive", def.ID)
		}
	}

	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(enemyDefs))
	return nil
}
