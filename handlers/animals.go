// handlers/animals.go - Legacy catalog views guarded by the shared API key
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ListAnimals returns the full catalog, including the challenge pool.
// ?rarity= filters by rarity level.
func ListAnimals(c *fiber.Ctx) error {
	if rarity := c.QueryInt("rarity", -1); rarity >= 0 {
		return c.JSON(animalCatalog.AnimalsByRarity(rarity))
	}
	return c.JSON(animalCatalog.AllAnimals())
}

// GetAnimal returns one catalog entry by id
func GetAnimal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, 400, "invalid_request", "Animal id must be an integer")
	}

	animal, ok := animalCatalog.AnimalByID(id)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "animal_not_found", "Animal not found")
	}
	return c.JSON(animal)
}
