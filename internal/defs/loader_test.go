package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func withLibrary(t *testing.T) {
	t.Helper()
	saved := make(map[EnemyKind]EnemyDefinition, len(EnemyLibrary))
	for k, v := range EnemyLibrary {
		saved[k] = v
	}
	t.Cleanup(func() { EnemyLibrary = saved })
}

func TestParseEnemyDefinitions_Overrides(t *testing.T) {
	withLibrary(t)
	data := []byte(`[{"id":"runner","health":30,"speed":20,"radius":9,"damage":5,"score":25}]`)
	if err := ParseEnemyDefinitions(data); err != nil {
		t.Fatalf("ParseEnemyDefinitions: %v", err)
	}
	if got := EnemyLibrary[EnemyRunner]; got.Health != 30 || got.Score != 25 {
		t.Fatalf("runner not overridden: %+v", got)
	}
	if EnemyLibrary[EnemyWalker].Health != 20 {
		t.Fatal("walker should keep its built-in values")
	}
}

func TestParseEnemyDefinitions_Rejects(t *testing.T) {
	withLibrary(t)
	for name, data := range map[string]string{
		"malformed":  `{`,
		"unknown id": `[{"id":"ghoul","health":1,"radius":1}]`,
		"no health":  `[{"id":"tank","health":0,"radius":1}]`,
	} {
		if err := ParseEnemyDefinitions([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if EnemyLibrary[EnemyTank].Health != 80 {
		t.Fatal("a rejected file must not change the library")
	}
}

func TestLoadEnemyDefinitions_File(t *testing.T) {
	withLibrary(t)
	path := filepath.Join(t.TempDir(), "enemies.json")
	if err := os.WriteFile(path, []byte(`[{"id":"boss","health":500,"radius":22}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("LoadEnemyDefinitions: %v", err)
	}
	if EnemyLibrary[EnemyBoss].Health != 500 {
		t.Fatal("boss not loaded")
	}
	if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}
