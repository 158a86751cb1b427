package server

import (
	"context"
	"time"

	"pokedex/internal/models"
	"pokedex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllPokemon handles GET /pokemon
func (s *Server) GetAllPokemon(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	pokemons, err := s.pokemonService.ListPokemon(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(pokemons)
}

// GetPokemon handles GET /pokemon/:id
func (s *Server) GetPokemon(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	pokemon, err := s.pokemonService.GetPokemonByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(pokemon)
}

// UpdatePokemon handles PUT /pokemonput/:id with a partial name/url update.
func (s *Server) UpdatePokemon(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name *string `json:"name"`
		URL  *string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pokemon, err := s.pokemonService.UpdatePokemon(c.UserContext(), id, service.UpdatePokemonInput{
		Name: req.Name,
		URL:  req.URL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(pokemon)
}

// DeletePokemon handles DELETE /delete/:id
func (s *Server) DeletePokemon(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.pokemonService.DeletePokemon(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Pokemon deleted"})
}
