package repository

import (
	"context"
	"errors"

	"pokedex/internal/models"

	"gorm.io/gorm"
)

// PokemonRepository defines persistence operations for pokemon entries.
type PokemonRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Pokemon, error)
	List(ctx context.Context) ([]models.Pokemon, error)
	Create(ctx context.Context, pokemon *models.Pokemon) error
	Update(ctx context.Context, pokemon *models.Pokemon) error
	Delete(ctx context.Context, id uint) error
}

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository returns a new PokemonRepository implementation.
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) GetByID(ctx context.Context, id uint) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	if err := r.db.WithContext(ctx).First(&pokemon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pokemon", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &pokemon, nil
}

func (r *pokemonRepository) List(ctx context.Context) ([]models.Pokemon, error) {
	var pokemons []models.Pokemon
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&pokemons).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pokemons, nil
}

func (r *pokemonRepository) Create(ctx context.Context, pokemon *models.Pokemon) error {
	if err := r.db.WithContext(ctx).Create(pokemon).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A pokemon with that URL already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pokemonRepository) Update(ctx context.Context, pokemon *models.Pokemon) error {
	if err := r.db.WithContext(ctx).Save(pokemon).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A pokemon with that URL already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pokemonRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Pokemon{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
