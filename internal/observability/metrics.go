package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FavoritesCreated counts successfully created favorites by entity kind.
	FavoritesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_favorites_created_total",
		Help: "Total number of favorites created, by favorited entity kind",
	}, []string{"kind"})

	// DuplicateFavoritesRejected counts favorite creations rejected because the
	// user already holds a favorite with the same normalized name.
	DuplicateFavoritesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_duplicate_favorites_rejected_total",
		Help: "Total number of favorite creations rejected as duplicates",
	})
)
