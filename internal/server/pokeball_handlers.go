package server

import (
	"context"
	"time"

	"pokedex/internal/models"
	"pokedex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllPokeballs handles GET /pokeballs
func (s *Server) GetAllPokeballs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	pokeballs, err := s.pokeballService.ListPokeballs(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(pokeballs)
}

// CreatePokeball handles POST /favorito/pokeballs: creates a standalone
// pokeball without linking it to any user. Effectiveness accepts a float
// payload and is truncated to an integer.
func (s *Server) CreatePokeball(c *fiber.Ctx) error {
	var req struct {
		Name          *string  `json:"name"`
		Effectiveness *float64 `json:"effectiveness"`
		Description   *string  `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == nil || req.Effectiveness == nil || req.Description == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing data"))
	}

	pokeball, err := s.pokeballService.CreatePokeball(c.UserContext(), service.CreatePokeballInput{
		Name:          *req.Name,
		Effectiveness: int(*req.Effectiveness),
		Description:   *req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(pokeball)
}
