// catalog/catalog.go - Static animal and level lookup tables
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

//go:embed data/animals.json
var animalsJSON []byte

//go:embed data/levels.json
var levelsJSON []byte

// Animal is a single catalog entry. IDs are assigned from the position in
// animals.json (1-based) and are stable as long as entries are only appended.
type Animal struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Emoji          string `json:"emoji"`
	ImageURL       string `json:"imageUrl"`
	Rarity         int    `json:"rarity"`
	ScientificName string `json:"scientificName,omitempty"`
	Description    string `json:"description,omitempty"`

	// LevelID groups the animal into a quiz level. 0 marks the reserved
	// daily-challenge pool.
	LevelID int `json:"-"`
}

// Level is a fixed ordered group of animals presented together in the quiz.
// The order of Animals defines the animalIndex used in answer submissions.
type Level struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Emoji   string   `json:"emoji"`
	Animals []Animal `json:"animals"`
}

// Catalog is the immutable lookup structure built once at startup.
type Catalog struct {
	animals   []Animal
	byID      map[int]int // animal id -> index into animals
	byName    map[string]int
	levels    []Level
	levelByID map[int]int // level id -> index into levels
	pool      []Animal
	levelSize int
}

type rawAnimal struct {
	Name           string `json:"name"`
	Level          int    `json:"level"`
	Rarity         int    `json:"rarity"`
	Emoji          string `json:"emoji"`
	ImageURL       string `json:"imageUrl"`
	ScientificName string `json:"scientificName"`
	Description    string `json:"description"`
}

type rawLevel struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}

// Load parses the embedded data files and validates catalog invariants.
func Load() (*Catalog, error) {
	return Parse(animalsJSON, levelsJSON)
}

// MustLoad is Load for program startup; it exits on invalid data.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		log.Fatalf("Failed to load animal catalog: %v", err)
	}
	log.Printf("Loaded catalog: %d animals, %d levels, %d challenge pool entries", len(c.animals), len(c.levels), len(c.pool))
	return c
}

// Parse builds a Catalog from raw JSON. Exposed for the catalog-lint tool.
func Parse(animalsData, levelsData []byte) (*Catalog, error) {
	var rawAnimals []rawAnimal
	if err := json.Unmarshal(animalsData, &rawAnimals); err != nil {
		return nil, fmt.Errorf("parse animals: %w", err)
	}
	var rawLevels []rawLevel
	if err := json.Unmarshal(levelsData, &rawLevels); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(rawAnimals) == 0 {
		return nil, fmt.Errorf("animals file is empty")
	}
	if len(rawLevels) == 0 {
		return nil, fmt.Errorf("levels file is empty")
	}

	c := &Catalog{
		byID:      make(map[int]int),
		byName:    make(map[string]int),
		levelByID: make(map[int]int),
	}

	levelIDs := make(map[int]bool)
	for i, rl := range rawLevels {
		if rl.ID <= 0 {
			return nil, fmt.Errorf("level %q: id must be positive, got %d", rl.Title, rl.ID)
		}
		if levelIDs[rl.ID] {
			return nil, fmt.Errorf("duplicate level id %d", rl.ID)
		}
		levelIDs[rl.ID] = true
		c.levels = append(c.levels, Level{ID: rl.ID, Title: rl.Title, Emoji: rl.Emoji})
		c.levelByID[rl.ID] = i
	}

	for i, ra := range rawAnimals {
		if ra.Name == "" {
			return nil, fmt.Errorf("animal at position %d has no name", i)
		}
		if ra.Rarity < 1 || ra.Rarity > 10 {
			return nil, fmt.Errorf("animal %q: rarity %d out of range 1-10", ra.Name, ra.Rarity)
		}
		key := strings.ToLower(ra.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate animal name %q", ra.Name)
		}
		animal := Animal{
			ID:             i + 1,
			Name:           ra.Name,
			Emoji:          ra.Emoji,
			ImageURL:       ra.ImageURL,
			Rarity:         ra.Rarity,
			ScientificName: ra.ScientificName,
			Description:    ra.Description,
			LevelID:        ra.Level,
		}
		c.animals = append(c.animals, animal)
		c.byID[animal.ID] = i
		c.byName[key] = i

		if ra.Level == 0 {
			c.pool = append(c.pool, animal)
			continue
		}
		idx, ok := c.levelByID[ra.Level]
		if !ok {
			return nil, fmt.Errorf("animal %q references unknown level %d", ra.Name, ra.Level)
		}
		c.levels[idx].Animals = append(c.levels[idx].Animals, animal)
	}

	for _, lvl := range c.levels {
		if len(lvl.Animals) == 0 {
			return nil, fmt.Errorf("level %d (%s) has no animals", lvl.ID, lvl.Title)
		}
		if c.levelSize == 0 {
			c.levelSize = len(lvl.Animals)
		} else if len(lvl.Animals) != c.levelSize {
			return nil, fmt.Errorf("level %d (%s) has %d animals, expected %d", lvl.ID, lvl.Title, len(lvl.Animals), c.levelSize)
		}
	}
	if len(c.pool) == 0 {
		return nil, fmt.Errorf("daily challenge pool is empty")
	}

	return c, nil
}

// AnimalByID returns the animal with the given catalog id.
func (c *Catalog) AnimalByID(id int) (Animal, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Animal{}, false
	}
	return c.animals[idx], true
}

// AnimalByName returns the animal with the given name, case-insensitively.
func (c *Catalog) AnimalByName(name string) (Animal, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Animal{}, false
	}
	return c.animals[idx], true
}

// LevelByID returns a level.
func (c *Catalog) LevelByID(id int) (Level, bool) {
	idx, ok := c.levelByID[id]
	if !ok {
		return Level{}, false
	}
	return c.levels[idx], true
}

// Levels returns all levels in definition order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// AnimalAt returns the animal at animalIndex within a level.
func (c *Catalog) AnimalAt(levelID, animalIndex int) (Animal, bool) {
	lvl, ok := c.LevelByID(levelID)
	if !ok {
		return Animal{}, false
	}
	if animalIndex < 0 || animalIndex >= len(lvl.Animals) {
		return Animal{}, false
	}
	return lvl.Animals[animalIndex], true
}

// ChallengePool returns the reserved daily-challenge animals.
func (c *Catalog) ChallengePool() []Animal {
	out := make([]Animal, len(c.pool))
	copy(out, c.pool)
	return out
}

// LevelSize returns K, the fixed animal count per level.
func (c *Catalog) LevelSize() int {
	return c.levelSize
}

// AllAnimals returns every catalog entry, including the challenge pool.
func (c *Catalog) AllAnimals() []Animal {
	out := make([]Animal, len(c.animals))
	copy(out, c.animals)
	return out
}

// AnimalsByRarity returns animals with the given rarity level.
func (c *Catalog) AnimalsByRarity(rarity int) []Animal {
	var out []Animal
	for _, a := range c.animals {
		if a.Rarity == rarity {
			out = append(out, a)
		}
	}
	return out
}

// EmptyProgress returns a fresh all-false progress map covering every level.
func (c *Catalog) EmptyProgress() map[int][]bool {
	progress := make(map[int][]bool, len(c.levels))
	for _, lvl := range c.levels {
		progress[lvl.ID] = make([]bool, len(lvl.Animals))
	}
	return progress
}
