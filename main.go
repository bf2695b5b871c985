package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marcvalle10/notes-api/config"
	"github.com/marcvalle10/notes-api/handler"
	"github.com/marcvalle10/notes-api/middleware"
	"github.com/marcvalle10/notes-api/repository"
	"github.com/marcvalle10/notes-api/services"
	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

func init() {
	// .env is optional outside development; every setting has a default
	// except the identity provider, which is checked in main.
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}
	utils.InitValidator()
}

// newIdentityProvider picks the token verifier from the configuration. A
// shared JWT secret wins over a remote identity endpoint; running with
// neither is a configuration error.
func newIdentityProvider(cfg config.Config) (services.IdentityProvider, error) {
	switch {
	case cfg.AuthJWTSecret != "":
		log.Println("Identity provider: local JWT verification")
		return services.NewJWTVerifier(cfg.AuthJWTSecret), nil
	case cfg.AuthURL != "":
		log.Printf("Identity provider: remote verification via %s", cfg.AuthURL)
		return services.NewRemoteVerifier(cfg.AuthURL, nil), nil
	default:
		return nil, errors.New("either AUTH_JWT_SECRET or AUTH_URL must be set")
	}
}

// setupRouter wires repositories, services and handlers onto the gin engine.
// A nil redisClient disables rate limiting.
func setupRouter(cfg config.Config, client *mongo.Client, provider services.IdentityProvider, redisClient *redis.Client) *gin.Engine {
	db := client.Database(cfg.Database.DatabaseName)

	profilesRepo := repository.NewProfilesRepo(db)
	notesRepo := repository.NewNotesRepo(db)
	sharesRepo := repository.NewSharesRepo(db)

	profileService := &usecase.ProfileService{Profiles: profilesRepo}
	notesService := &usecase.NotesService{Notes: notesRepo, Shares: sharesRepo}
	shareService := &usecase.ShareService{
		Profiles: profilesRepo,
		Notes:    notesRepo,
		Shares:   sharesRepo,
	}

	profileHandler := handler.NewProfileHandler(profileService)
	notesHandler := handler.NewNotesHandler(notesService)
	shareHandler := handler.NewShareHandler(shareService)
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})

	router := gin.New()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodyBytes))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CacheControlMiddleware())

	// Ops endpoints stay open; everything else sits behind the verifier.
	router.GET("/health", healthHandler.Health)
	router.GET("/status", healthHandler.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(provider))
	if redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute))
	}
	{
		protected.POST("/profile", profileHandler.UpsertProfile)

		protected.POST("/notes", notesHandler.UpsertNote)
		protected.GET("/notes", notesHandler.ListNotes)
		protected.PUT("/notes/:id", notesHandler.UpdateNote)
		protected.DELETE("/notes/:id", notesHandler.DeleteNote)

		protected.GET("/shared", shareHandler.ListShared)
		protected.POST("/share", shareHandler.ShareNote)
	}

	return router
}

func main() {
	cfg := config.Load()

	provider, err := newIdentityProvider(cfg)
	if err != nil {
		log.Fatalf("Identity provider configuration: %v", err)
	}

	ctx := context.Background()
	client, err := config.ConnectDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Database connection: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Index setup: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" && cfg.RateLimitPerMinute > 0 {
		redisClient, err = config.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Redis connection: %v", err)
		}
		defer redisClient.Close()
		log.Printf("Rate limiting enabled: %d requests/minute", cfg.RateLimitPerMinute)
	}

	router := setupRouter(cfg, client, provider, redisClient)

	if err := runServer(router, cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
