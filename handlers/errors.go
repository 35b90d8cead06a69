// handlers/errors.go - Error envelope and status mapping
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"animalquiz/services"
	"animalquiz/store"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondError maps store and service errors to the wire envelope.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, store.ErrAlreadyExists):
		return writeError(c, fiber.StatusConflict, "profile_exists", "Profile already exists")
	case errors.Is(err, services.ErrInvalidRequest):
		return writeError(c, fiber.StatusBadRequest, "invalid_request", "Invalid level or animal index")
	case errors.Is(err, store.ErrUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "store_unavailable", "Store temporarily unavailable")
	}

	log.Printf("unhandled error: %v", err)
	return writeError(c, fiber.StatusInternalServerError, "internal_error", "Internal server error")
}
