// Package service implements the business rules of the application.
package service

import (
	"strings"

	"pokedex/internal/models"
)

// FavoriteCount summarizes how many times a pokemon has been favorited
// across all users.
type FavoriteCount struct {
	PokemonID     uint   `json:"pokemon_id"`
	PokemonName   string `json:"pokemon_name"`
	FavoriteCount int    `json:"favorite_count"`
}

// AggregateFavorites computes, per distinct favorited pokemon, the number of
// favorite records referencing it. Output order follows the first encounter
// of each pokemon in the input. Favorites that link a pokeball instead of a
// pokemon are skipped. Pure; operates only on already-loaded data.
func AggregateFavorites(favorites []models.Favorite) []FavoriteCount {
	counts := make([]FavoriteCount, 0)
	index := make(map[uint]int)

	for _, f := range favorites {
		if f.Pokemon == nil {
			continue
		}
		if i, ok := index[f.Pokemon.ID]; ok {
			counts[i].FavoriteCount++
			continue
		}
		index[f.Pokemon.ID] = len(counts)
		counts = append(counts, FavoriteCount{
			PokemonID:     f.Pokemon.ID,
			PokemonName:   f.Pokemon.Name,
			FavoriteCount: 1,
		})
	}

	return counts
}

// NormalizeName trims leading/trailing whitespace and lowercases a name for
// comparison and for the favorites name_key column.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HasFavoriteNamed reports whether any of the given favorites resolves to an
// entity whose normalized name equals the normalized candidate. Callers must
// reject the creation as a conflict when this returns true.
func HasFavoriteNamed(favorites []models.Favorite, name string) bool {
	candidate := NormalizeName(name)
	for _, f := range favorites {
		if NormalizeName(f.EntityName()) == candidate {
			return true
		}
	}
	return false
}
