package service

import (
	"context"

	"pokedex/internal/models"
	"pokedex/internal/repository"

	"gorm.io/gorm"
)

// PokemonService handles pokemon CRUD operations.
type PokemonService struct {
	db          *gorm.DB
	pokemonRepo repository.PokemonRepository
}

// UpdatePokemonInput carries a partial update; nil fields keep their value.
type UpdatePokemonInput struct {
	Name *string
	URL  *string
}

// NewPokemonService returns a new PokemonService.
func NewPokemonService(db *gorm.DB, pokemonRepo repository.PokemonRepository) *PokemonService {
	return &PokemonService{db: db, pokemonRepo: pokemonRepo}
}

// ListPokemon returns all pokemon entries.
func (s *PokemonService) ListPokemon(ctx context.Context) ([]models.Pokemon, error) {
	return s.pokemonRepo.List(ctx)
}

// GetPokemonByID returns a single pokemon entry.
func (s *PokemonService) GetPokemonByID(ctx context.Context, id uint) (*models.Pokemon, error) {
	return s.pokemonRepo.GetByID(ctx, id)
}

// UpdatePokemon applies a partial name/url update to an existing pokemon.
// A rename also rewrites the name key on every favorite referencing it, in
// the same transaction, so the uniqueness index keeps tracking current names.
func (s *PokemonService) UpdatePokemon(ctx context.Context, id uint, in UpdatePokemonInput) (*models.Pokemon, error) {
	pokemon, err := s.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		pokemon.Name = *in.Name
	}
	if in.URL != nil {
		pokemon.URL = *in.URL
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPokemonRepository(tx).Update(ctx, pokemon); err != nil {
			return err
		}
		if in.Name == nil {
			return nil
		}
		return repository.NewFavoriteRepository(tx).
			UpdateNameKeysForPokemon(ctx, pokemon.ID, NormalizeName(pokemon.Name))
	})
	if err != nil {
		return nil, err
	}
	return pokemon, nil
}

// DeletePokemon removes a pokemon and the favorite links that reference it.
// The cascade is applied in the transaction rather than left to the FK so
// behavior is identical on PostgreSQL and SQLite.
func (s *PokemonService) DeletePokemon(ctx context.Context, id uint) error {
	if _, err := s.pokemonRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pokemon_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return repository.NewPokemonRepository(tx).Delete(ctx, id)
	})
}
