package catalog_test

import (
	"strings"
	"testing"

	"animalquiz/catalog"
)

func TestLoadEmbeddedData(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	levels := cat.Levels()
	if len(levels) == 0 {
		t.Fatal("expected at least one level")
	}
	size := cat.LevelSize()
	for _, lvl := range levels {
		if len(lvl.Animals) != size {
			t.Fatalf("level %d has %d animals, expected %d", lvl.ID, len(lvl.Animals), size)
		}
	}
	if len(cat.ChallengePool()) == 0 {
		t.Fatal("expected a non-empty challenge pool")
	}
}

func TestAnimalIDsFollowFilePosition(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for i, a := range cat.AllAnimals() {
		if a.ID != i+1 {
			t.Fatalf("animal %q at position %d has id %d", a.Name, i, a.ID)
		}
	}
}

func TestAnimalByNameNormalizes(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	first := cat.AllAnimals()[0]
	for _, variant := range []string{
		first.Name,
		strings.ToUpper(first.Name),
		"  " + strings.ToLower(first.Name) + "  ",
	} {
		got, ok := cat.AnimalByName(variant)
		if !ok {
			t.Fatalf("lookup %q failed", variant)
		}
		if got.ID != first.ID {
			t.Fatalf("lookup %q returned id %d, want %d", variant, got.ID, first.ID)
		}
	}

	if _, ok := cat.AnimalByName("no such animal"); ok {
		t.Fatal("expected unknown name to miss")
	}
}

func TestAnimalAtBounds(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, ok := cat.AnimalAt(1, 0); !ok {
		t.Fatal("expected level 1 index 0 to exist")
	}
	if _, ok := cat.AnimalAt(1, -1); ok {
		t.Fatal("negative index should miss")
	}
	if _, ok := cat.AnimalAt(1, cat.LevelSize()); ok {
		t.Fatal("index past level end should miss")
	}
	if _, ok := cat.AnimalAt(999, 0); ok {
		t.Fatal("unknown level should miss")
	}
}

func TestEmptyProgressShape(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	progress := cat.EmptyProgress()
	if len(progress) != len(cat.Levels()) {
		t.Fatalf("expected %d levels in progress, got %d", len(cat.Levels()), len(progress))
	}
	for id, bits := range progress {
		if len(bits) != cat.LevelSize() {
			t.Fatalf("level %d progress has %d slots, want %d", id, len(bits), cat.LevelSize())
		}
		for _, b := range bits {
			if b {
				t.Fatalf("level %d progress not all false", id)
			}
		}
	}
}

func TestParseRejectsBadData(t *testing.T) {
	levels := []byte(`[{"id":1,"title":"One","emoji":"x"}]`)

	cases := []struct {
		name    string
		animals string
	}{
		{"empty", `[]`},
		{"missing name", `[{"level":1,"rarity":1}]`},
		{"duplicate name", `[{"name":"Dog","level":1,"rarity":1},{"name":"dog","level":1,"rarity":1}]`},
		{"unknown level", `[{"name":"Dog","level":9,"rarity":1}]`},
		{"rarity out of range", `[{"name":"Dog","level":1,"rarity":0}]`},
		{"no pool", `[{"name":"Dog","level":1,"rarity":1}]`},
	}
	for _, tc := range cases {
		if _, err := catalog.Parse([]byte(tc.animals), levels); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestParseRejectsUnevenLevels(t *testing.T) {
	levels := []byte(`[{"id":1,"title":"One","emoji":"x"},{"id":2,"title":"Two","emoji":"y"}]`)
	animals := []byte(`[
		{"name":"Dog","level":1,"rarity":1},
		{"name":"Cat","level":1,"rarity":1},
		{"name":"Fox","level":2,"rarity":2},
		{"name":"Numbat","level":0,"rarity":9}
	]`)

	if _, err := catalog.Parse(animals, levels); err == nil {
		t.Fatal("expected uneven level sizes to be rejected")
	}
}
