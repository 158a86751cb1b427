package repository

import (
	"context"

	"pokedex/internal/models"

	"gorm.io/gorm"
)

// PokeballRepository defines persistence operations for pokeballs.
type PokeballRepository interface {
	List(ctx context.Context) ([]models.Pokeball, error)
	Create(ctx context.Context, pokeball *models.Pokeball) error
}

type pokeballRepository struct {
	db *gorm.DB
}

// NewPokeballRepository returns a new PokeballRepository implementation.
func NewPokeballRepository(db *gorm.DB) PokeballRepository {
	return &pokeballRepository{db: db}
}

func (r *pokeballRepository) List(ctx context.Context) ([]models.Pokeball, error) {
	var pokeballs []models.Pokeball
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&pokeballs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pokeballs, nil
}

func (r *pokeballRepository) Create(ctx context.Context, pokeball *models.Pokeball) error {
	if err := r.db.WithContext(ctx).Create(pokeball).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A pokeball with that description already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}
