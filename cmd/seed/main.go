// Command main populates the database with demo data for local development.
package main

import (
	"context"
	"flag"
	"log"

	"pokedex/internal/config"
	"pokedex/internal/database"
	"pokedex/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.Pokemon, "pokemon", opts.Pokemon, "number of pokemon to create")
	flag.IntVar(&opts.Pokeballs, "pokeballs", opts.Pokeballs, "number of pokeballs to create")
	flag.IntVar(&opts.FavoritesPerUser, "favorites", opts.FavoritesPerUser, "favorites per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
