package service

import (
	"context"

	"pokedex/internal/models"
	"pokedex/internal/observability"
	"pokedex/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// FavoriteService coordinates favorite creation with entity creation. Both
// writes happen inside one transaction so a half-created favorite is never
// observable.
type FavoriteService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
}

// CreatePokemonFavoriteInput describes a new pokemon to create and favorite.
type CreatePokemonFavoriteInput struct {
	Name string
	URL  string
}

// CreatePokeballFavoriteInput describes a new pokeball to create and favorite.
type CreatePokeballFavoriteInput struct {
	Name          string
	Effectiveness int
	Description   string
}

// NewFavoriteService returns a new FavoriteService.
func NewFavoriteService(db *gorm.DB, userRepo repository.UserRepository, favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{db: db, userRepo: userRepo, favoriteRepo: favoriteRepo}
}

// ListFavoriteCounts loads all favorites and aggregates them per pokemon.
func (s *FavoriteService) ListFavoriteCounts(ctx context.Context) ([]FavoriteCount, error) {
	favorites, err := s.favoriteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateFavorites(favorites), nil
}

// GetFavorite fetches a single favorite with its entity resolved.
func (s *FavoriteService) GetFavorite(ctx context.Context, id uint) (*models.Favorite, error) {
	return s.favoriteRepo.GetByID(ctx, id)
}

// DeleteFavorite removes a favorite link by id.
func (s *FavoriteService) DeleteFavorite(ctx context.Context, id uint) error {
	if _, err := s.favoriteRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.favoriteRepo.Delete(ctx, id)
}

// CreatePokemonFavorite creates a new pokemon and links it as a favorite of
// the given user. Returns the user with their refreshed favorites.
func (s *FavoriteService) CreatePokemonFavorite(ctx context.Context, userID uint, in CreatePokemonFavoriteInput) (*models.User, error) {
	span, ctx := observability.NewSpan(ctx, "FavoriteService.CreatePokemonFavorite")
	defer span.End()
	span.AddAttributes(attribute.Int("user.id", int(userID)))

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if HasFavoriteNamed(favorites, in.Name) {
		observability.DuplicateFavoritesRejected.Inc()
		return nil, models.NewConflictError("User already has a favorite with that name")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pokemon := &models.Pokemon{Name: in.Name, URL: in.URL}
		if err := repository.NewPokemonRepository(tx).Create(ctx, pokemon); err != nil {
			return err
		}
		favorite := &models.Favorite{
			UserID:    user.ID,
			PokemonID: &pokemon.ID,
			NameKey:   NormalizeName(in.Name),
		}
		return repository.NewFavoriteRepository(tx).Create(ctx, favorite)
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.FavoritesCreated.WithLabelValues("pokemon").Inc()
	return s.userRepo.GetWithFavorites(ctx, userID)
}

// CreatePokeballFavorite creates a new pokeball and links it as a favorite of
// the given user. Returns the user with their refreshed favorites.
func (s *FavoriteService) CreatePokeballFavorite(ctx context.Context, userID uint, in CreatePokeballFavoriteInput) (*models.User, error) {
	span, ctx := observability.NewSpan(ctx, "FavoriteService.CreatePokeballFavorite")
	defer span.End()
	span.AddAttributes(attribute.Int("user.id", int(userID)))

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if HasFavoriteNamed(favorites, in.Name) {
		observability.DuplicateFavoritesRejected.Inc()
		return nil, models.NewConflictError("User already has a favorite with that name")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pokeball := &models.Pokeball{
			Name:          in.Name,
			Effectiveness: in.Effectiveness,
			Description:   in.Description,
		}
		if err := repository.NewPokeballRepository(tx).Create(ctx, pokeball); err != nil {
			return err
		}
		favorite := &models.Favorite{
			UserID:     user.ID,
			PokeballID: &pokeball.ID,
			NameKey:    NormalizeName(in.Name),
		}
		return repository.NewFavoriteRepository(tx).Create(ctx, favorite)
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.FavoritesCreated.WithLabelValues("pokeball").Inc()
	return s.userRepo.GetWithFavorites(ctx, userID)
}
