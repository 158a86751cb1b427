package service

import (
	"context"

	"pokedex/internal/models"
	"pokedex/internal/repository"
)

// PokeballService handles standalone pokeball operations.
type PokeballService struct {
	pokeballRepo repository.PokeballRepository
}

// CreatePokeballInput describes a new standalone pokeball.
type CreatePokeballInput struct {
	Name          string
	Effectiveness int
	Description   string
}

// NewPokeballService returns a new PokeballService.
func NewPokeballService(pokeballRepo repository.PokeballRepository) *PokeballService {
	return &PokeballService{pokeballRepo: pokeballRepo}
}

// ListPokeballs returns all pokeballs.
func (s *PokeballService) ListPokeballs(ctx context.Context) ([]models.Pokeball, error) {
	return s.pokeballRepo.List(ctx)
}

// CreatePokeball creates a pokeball without linking it to any user.
func (s *PokeballService) CreatePokeball(ctx context.Context, in CreatePokeballInput) (*models.Pokeball, error) {
	pokeball := &models.Pokeball{
		Name:          in.Name,
		Effectiveness: in.Effectiveness,
		Description:   in.Description,
	}
	if err := s.pokeballRepo.Create(ctx, pokeball); err != nil {
		return nil, err
	}
	return pokeball, nil
}
