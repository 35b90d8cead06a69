package main

import (
	"flag"
	"fmt"
	"os"

	"animalquiz/catalog"
)

func main() {
	animalsPath := flag.String("animals", "./catalog/data/animals.json", "path to animals.json")
	levelsPath := flag.String("levels", "./catalog/data/levels.json", "path to levels.json")
	flag.Parse()

	animalsData, err := os.ReadFile(*animalsPath)
	if err != nil {
		fmt.Printf("%s: read error: %v\n", *animalsPath, err)
		os.Exit(1)
	}
	levelsData, err := os.ReadFile(*levelsPath)
	if err != nil {
		fmt.Printf("%s: read error: %v\n", *levelsPath, err)
		os.Exit(1)
	}

	cat, err := catalog.Parse(animalsData, levelsData)
	if err != nil {
		fmt.Println("catalog invalid:", err)
		os.Exit(1)
	}

	levels := cat.Levels()
	total := 0
	for _, lvl := range levels {
		fmt.Printf("level %d %q: %d animals\n", lvl.ID, lvl.Title, len(lvl.Animals))
		total += len(lvl.Animals)
	}
	pool := cat.ChallengePool()
	fmt.Printf("challenge pool: %d animals\n", len(pool))
	fmt.Printf("OK: %d levels, %d animals total\n", len(levels), total+len(pool))
}
