package server

import (
	"context"
	"time"

	"pokedex/internal/models"
	"pokedex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFavoriteCounts handles GET /users/favoritos (and its /favoritos alias):
// the per-pokemon favorite count aggregation across all users.
func (s *Server) GetFavoriteCounts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	counts, err := s.favoriteService.ListFavoriteCounts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(counts)
}

// GetFavorite handles GET /favoritos/:id
func (s *Server) GetFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	favorite, err := s.favoriteService.GetFavorite(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	var entity interface{}
	switch {
	case favorite.Pokemon != nil:
		entity = favorite.Pokemon
	case favorite.Pokeball != nil:
		entity = favorite.Pokeball
	}
	return c.JSON(fiber.Map{"favorito": entity})
}

// CreatePokemonFavorite handles POST /favorito/pokemon/:userId: creates a
// new pokemon and links it as a favorite of the given user.
func (s *Server) CreatePokemonFavorite(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Name *string `json:"name"`
		URL  *string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == nil || req.URL == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing data"))
	}

	user, err := s.favoriteService.CreatePokemonFavorite(c.UserContext(), userID, service.CreatePokemonFavoriteInput{
		Name: *req.Name,
		URL:  *req.URL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user.Summarize()})
}

// CreatePokeballFavorite handles POST /favorito/pokeballs/:userId: creates a
// new pokeball and links it as a favorite of the given user.
func (s *Server) CreatePokeballFavorite(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Name          *string  `json:"name"`
		Effectiveness *float64 `json:"effectiveness"`
		Description   *string  `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == nil || req.Effectiveness == nil || req.Description == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing data"))
	}

	user, err := s.favoriteService.CreatePokeballFavorite(c.UserContext(), userID, service.CreatePokeballFavoriteInput{
		Name:          *req.Name,
		Effectiveness: int(*req.Effectiveness),
		Description:   *req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user.Summarize()})
}

// DeleteFavorite handles DELETE /favorito/pokemon/:id
func (s *Server) DeleteFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.DeleteFavorite(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Favorite deleted"})
}
