// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"pokedex/internal/middleware"
	"pokedex/internal/models"
	"pokedex/internal/repository"
	"pokedex/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users            int
	Pokemon          int
	Pokeballs        int
	FavoritesPerUser int
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Users:            10,
		Pokemon:          25,
		Pokeballs:        6,
		FavoritesPerUser: 3,
	}
}

var pokeballNames = []string{
	"Poke Ball", "Great Ball", "Ultra Ball", "Master Ball",
	"Safari Ball", "Net Ball", "Dive Ball", "Timer Ball",
}

// Run populates the database with fake users, pokemon, pokeballs and
// favorite links. Favorites honor the per-user normalized-name uniqueness
// rule, so repeated picks are skipped rather than inserted.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	userRepo := repository.NewUserRepository(db)
	pokemonRepo := repository.NewPokemonRepository(db)
	pokeballRepo := repository.NewPokeballRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	pokemons := make([]models.Pokemon, 0, opts.Pokemon)
	for i := 0; i < opts.Pokemon; i++ {
		p := models.Pokemon{
			Name: gofakeit.PetName(),
			URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%s", gofakeit.UUID()),
		}
		if err := pokemonRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed pokemon: %w", err)
		}
		pokemons = append(pokemons, p)
	}

	for i := 0; i < opts.Pokeballs && i < len(pokeballNames); i++ {
		b := models.Pokeball{
			Name:          pokeballNames[i],
			Effectiveness: r.Intn(100) + 1,
			Description:   fmt.Sprintf("%s: %s", pokeballNames[i], gofakeit.Phrase()),
		}
		if err := pokeballRepo.Create(ctx, &b); err != nil {
			return fmt.Errorf("seed pokeball: %w", err)
		}
	}

	for i := 0; i < opts.Users; i++ {
		user := models.User{Name: gofakeit.Username()}
		if err := userRepo.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		taken := make(map[string]bool)
		for j := 0; j < opts.FavoritesPerUser && len(pokemons) > 0; j++ {
			pick := pokemons[r.Intn(len(pokemons))]
			key := service.NormalizeName(pick.Name)
			if taken[key] {
				continue
			}
			taken[key] = true

			pid := pick.ID
			fav := models.Favorite{
				UserID:    user.ID,
				PokemonID: &pid,
				NameKey:   key,
			}
			if err := favoriteRepo.Create(ctx, &fav); err != nil {
				return fmt.Errorf("seed favorite: %w", err)
			}
		}
	}

	middleware.Logger.Info("Seed data created",
		slog.Int("users", opts.Users),
		slog.Int("pokemon", opts.Pokemon),
		slog.Int("pokeballs", opts.Pokeballs),
	)
	return nil
}
