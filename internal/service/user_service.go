package service

import (
	"context"
	"fmt"

	"pokedex/internal/models"
	"pokedex/internal/repository"

	"gorm.io/gorm"
)

// UserService handles user listing and bulk creation.
type UserService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

// BulkUserInput is one user in a bulk-create request: a name plus the
// pokemon ids to link as initial favorites.
type BulkUserInput struct {
	Name      string
	Favoritos []uint
}

// NewUserService returns a new UserService.
func NewUserService(db *gorm.DB, userRepo repository.UserRepository) *UserService {
	return &UserService{db: db, userRepo: userRepo}
}

// ListUsers returns all users with their favorites resolved.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUserByID returns a single user with their favorites resolved.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetWithFavorites(ctx, id)
}

// BulkCreateUsers creates the given users and their initial favorite links
// in a single transaction; either every user and link survives or none do.
// Each referenced pokemon id must exist.
func (s *UserService) BulkCreateUsers(ctx context.Context, inputs []BulkUserInput) ([]models.User, error) {
	ids := make([]uint, 0, len(inputs))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		pokemonRepo := repository.NewPokemonRepository(tx)
		favoriteRepo := repository.NewFavoriteRepository(tx)

		for _, in := range inputs {
			user := &models.User{Name: in.Name}
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}

			for _, pokeID := range in.Favoritos {
				pokemon, err := pokemonRepo.GetByID(ctx, pokeID)
				if err != nil {
					if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeNotFound {
						return models.NewValidationError(fmt.Sprintf("Favorito references unknown pokemon ID %d", pokeID))
					}
					return err
				}

				pid := pokemon.ID
				favorite := &models.Favorite{
					UserID:    user.ID,
					PokemonID: &pid,
					NameKey:   NormalizeName(pokemon.Name),
				}
				if err := favoriteRepo.Create(ctx, favorite); err != nil {
					return err
				}
			}

			ids = append(ids, user.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.GetWithFavorites(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
