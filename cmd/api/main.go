package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cotizador_taller/docs"
	"cotizador_taller/internal/adapter/http/routes"
	"cotizador_taller/internal/adapter/persistence/repository"
	"cotizador_taller/internal/config"
	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/infrastructure/cache"
	"cotizador_taller/internal/infrastructure/database"
	"cotizador_taller/internal/infrastructure/mail"
	"cotizador_taller/internal/infrastructure/metrics"
	"cotizador_taller/internal/infrastructure/realtime"
	"cotizador_taller/internal/infrastructure/seed"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/internal/usecase/interfaces"
	"cotizador_taller/internal/worker"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Cotizador Taller API
// @version         1.0
// @description     Maintenance quote engine for a vehicle workshop: catalog administration, recipes and live quotes.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	store, err := newCatalogStore(ctx, cfg, rdb)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open catalog store")
	}

	defaults, err := seed.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse default catalog")
	}
	if cfg.SeedCatalog {
		if _, err := seed.Apply(ctx, store, defaults); err != nil {
			log.Fatal().Err(err).Msg("failed to seed catalog")
		}
	}

	m := metrics.InitMetrics(prometheus.DefaultRegisterer)
	hub := realtime.NewHub(m)
	stopWatch, err := hub.Watch(ctx, store, catalog.PricingPaths)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to watch catalog")
	}
	defer stopWatch()

	var dispatcher interfaces.INotificationDispatcher
	var pool *worker.Pool
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
		pool = worker.NewPool(rdb)
		pool.Handle(worker.JobIssueReported, worker.NewIssueNotificationWorker(mail.NewMailer(cfg), cfg.NotifyRecipients()))
		pool.Start(ctx, cfg.WorkerPoolSize)
	} else {
		log.Warn().Msg("REDIS_URL not set, issue notifications disabled")
	}

	auth, err := usecase.NewAuthUseCase(usecase.AuthConfig{
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		JWTSecret:    cfg.JWTSecret,
		Expiration:   cfg.JWTExpiration(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure admin auth")
	}

	r := routes.NewRouter(routes.Dependencies{
		Vehicles: usecase.NewVehicleUseCase(store),
		Parts:    usecase.NewPartUseCase(store),
		Services: usecase.NewServiceCatalogUseCase(store),
		Recipes:  usecase.NewRecipeUseCase(store, defaults.Milestones),
		Quotes:   usecase.NewQuoteUseCase(store, defaults.Milestones, m),
		Issues:   usecase.NewIssueUseCase(store, dispatcher),
		Auth:     auth,
		Hub:      hub,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("cotizador listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	cancel()
	if pool != nil {
		pool.Wait()
	}
	log.Info().Msg("server exited")
}

// newCatalogStore opens the configured store. DynamoDB instances share changes
// through the Redis feed when Redis is available.
func newCatalogStore(ctx context.Context, cfg *config.Config, rdb *redis.Client) (interfaces.ICatalogStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return repository.NewCatalogMemoryStore(), nil
	case config.StoreDriverDynamoDB:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureCatalogTable(ctx, ddb, cfg.CatalogTable); err != nil {
		return nil, err
	}

	if rdb == nil {
		return repository.NewCatalogDynamoStore(ddb, cfg.CatalogTable, nil), nil
	}
	feed := repository.NewRedisChangeFeed(rdb, cfg.ChangeFeedChannel)
	store := repository.NewCatalogDynamoStore(ddb, cfg.CatalogTable, feed)
	if err := feed.Listen(ctx, func(path catalog.Path) { store.Refresh(ctx, path) }); err != nil {
		return nil, fmt.Errorf("subscribe change feed: %w", err)
	}
	return store, nil
}
