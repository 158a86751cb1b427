// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pokedex/internal/config"
	"pokedex/internal/database"
	"pokedex/internal/middleware"
	"pokedex/internal/repository"
	"pokedex/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	promMiddleware  *fiberprometheus.FiberPrometheus
	userRepo        repository.UserRepository
	pokemonRepo     repository.PokemonRepository
	pokeballRepo    repository.PokeballRepository
	favoriteRepo    repository.FavoriteRepository
	userService     *service.UserService
	pokemonService  *service.PokemonService
	pokeballService *service.PokeballService
	favoriteService *service.FavoriteService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	pokemonRepo := repository.NewPokemonRepository(db)
	pokeballRepo := repository.NewPokeballRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("pokedex-api"),
		userRepo:       userRepo,
		pokemonRepo:    pokemonRepo,
		pokeballRepo:   pokeballRepo,
		favoriteRepo:   favoriteRepo,
	}
	server.userService = service.NewUserService(db, userRepo)
	server.pokemonService = service.NewPokemonService(db, pokemonRepo)
	server.pokeballService = service.NewPokeballService(pokeballRepo)
	server.favoriteService = service.NewFavoriteService(db, userRepo, favoriteRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context Middleware to propagate request and trace IDs
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Discovery and bootstrap endpoints
	app.Get("/", s.Sitemap)
	app.Get("/user", s.Hello)

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Pokemon
	app.Get("/pokemon", s.GetAllPokemon)
	app.Get("/pokemon/:id", s.GetPokemon)
	app.Put("/pokemonput/:id", s.UpdatePokemon)
	app.Delete("/delete/:id", s.DeletePokemon)

	// Users
	app.Get("/users", s.GetAllUsers)
	app.Post("/createusers", s.CreateUsers)

	// Favorites
	app.Get("/users/favoritos", s.GetFavoriteCounts)
	app.Get("/favoritos", s.GetFavoriteCounts)
	app.Get("/favoritos/:id", s.GetFavorite)
	app.Post("/favorito/pokemon/:userId", s.CreatePokemonFavorite)
	app.Delete("/favorito/pokemon/:id", s.DeleteFavorite)
	app.Post("/favorito/pokeballs/:userId", s.CreatePokeballFavorite)

	// Pokeballs
	app.Get("/pokeballs", s.GetAllPokeballs)
	app.Post("/favorito/pokeballs", s.CreatePokeball)
}

// Sitemap handles GET / and lists every registered route for discovery.
func (s *Server) Sitemap(c *fiber.Ctx) error {
	type routeInfo struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}

	seen := make(map[string]bool)
	routes := make([]routeInfo, 0)
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead || r.Method == "USE" {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		routes = append(routes, routeInfo{Method: r.Method, Path: r.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	return c.JSON(routes)
}

// Hello handles GET /user, a bootstrap smoke-test endpoint.
func (s *Server) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"msg": "Hello, this is your GET /user response",
	})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	status := fiber.StatusOK
	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   dbStatus,
		"database": dbStatus,
		"time":     time.Now(),
	})
}

// Shutdown releases server resources: the database connection pool.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
