package repository

import (
	"context"
	"errors"

	"pokedex/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for favorite links.
type FavoriteRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Favorite, error)
	List(ctx context.Context) ([]models.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	UpdateNameKeysForPokemon(ctx context.Context, pokemonID uint, nameKey string) error
	Delete(ctx context.Context, id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetByID(ctx context.Context, id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Pokemon").
		Preload("Pokeball").
		First(&favorite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Favorite", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &favorite, nil
}

func (r *favoriteRepository) List(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Pokemon").
		Preload("Pokeball").
		Order("id ASC").
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Pokemon").
		Preload("Pokeball").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		// The (user_id, name_key) unique index is the authoritative duplicate
		// check; the service-level pre-check can race.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User already has a favorite with that name")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateNameKeysForPokemon rewrites the stored name key on every favorite
// referencing the given pokemon. Name keys snapshot the entity name, so a
// rename must refresh them or the unique index would keep rejecting the old
// name and accepting the new one twice.
func (r *favoriteRepository) UpdateNameKeysForPokemon(ctx context.Context, pokemonID uint, nameKey string) error {
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("pokemon_id = ?", pokemonID).
		Update("name_key", nameKey).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Renaming would give a user two favorites with the same name")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Favorite{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
