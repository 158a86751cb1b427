package server

import (
	"context"
	"encoding/json"
	"time"

	"pokedex/internal/models"
	"pokedex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// createUserRequest is one item of the bulk-create payload. Pointer fields
// distinguish absent keys from zero values so validation can fail fast.
type createUserRequest struct {
	Name      *string `json:"name"`
	Favoritos *[]uint `json:"favoritos"`
}

// GetAllUsers handles GET /users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summarize())
	}
	return c.JSON(out)
}

// CreateUsers handles POST /createusers with a list of users, each carrying
// an initial set of favorite pokemon ids.
func (s *Server) CreateUsers(c *fiber.Ctx) error {
	var reqs []createUserRequest
	// An empty list is rejected the same as a missing one
	if err := json.Unmarshal(c.Body(), &reqs); err != nil || len(reqs) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing or invalid data, expected a list"))
	}

	inputs := make([]service.BulkUserInput, 0, len(reqs))
	for _, req := range reqs {
		if req.Name == nil || req.Favoritos == nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Missing name or favoritos in one of the users"))
		}
		inputs = append(inputs, service.BulkUserInput{
			Name:      *req.Name,
			Favoritos: *req.Favoritos,
		})
	}

	users, err := s.userService.BulkCreateUsers(c.UserContext(), inputs)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summarize())
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
