package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/collegehub/internal/app/controllers"
	appMigrations "github.com/yigit/collegehub/internal/app/migrations"
	appRepos "github.com/yigit/collegehub/internal/app/repositories"
	appRoutes "github.com/yigit/collegehub/internal/app/routes"
	appServices "github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/config"
	"github.com/yigit/collegehub/internal/db"
	appMiddleware "github.com/yigit/collegehub/internal/middleware"
	"github.com/yigit/collegehub/internal/pkg/currency"
	"github.com/yigit/collegehub/internal/pkg/helpers"
	"github.com/yigit/collegehub/internal/pkg/httpx"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"github.com/yigit/collegehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService        appServices.CollegeService
	CourseService         appServices.ContentService
	ScholarshipService    appServices.ContentService
	CollegeController     *appControllers.CollegeController
	CourseController      *appControllers.CourseController
	ScholarshipController *appControllers.ScholarshipController
	HealthController      *appControllers.HealthController
	Repos                 *appRepos.Repositories
	RateProvider          *currency.Provider
	Logger                zerolog.Logger
}

// Database holds the connection of whichever backend is configured
type Database struct {
	Driver   string
	Mongo    *db.MongoDB
	Postgres *db.PostgresDB
}

// Close releases the open connection
func (d *Database) Close(ctx context.Context) error {
	if d.Mongo != nil {
		return d.Mongo.Close(ctx)
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	return nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to the configured backend. The PostgreSQL backend gets its
// schema migrated; both backends are seeded with the demo catalog when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pg, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if err := runMigrations(ctx, pg, cfg.Database.MigrationsDir, lgr); err != nil {
			pg.Close()
			return nil, err
		}

		if cfg.Seed.Enabled {
			if err := seed.CreateDefaultDataPostgres(ctx, pg, lgr); err != nil {
				lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
			}
		}
		return &Database{Driver: config.DriverPostgres, Postgres: pg}, nil

	default:
		mdb, err := db.NewMongoDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Str("database", cfg.Database.Name).Msg("Database connection successfully established.")

		if cfg.Seed.Enabled {
			if err := seed.CreateDefaultDataMongo(ctx, mdb.Database, lgr); err != nil {
				lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
			}
		}
		return &Database{Driver: config.DriverMongo, Mongo: mdb}, nil
	}
}

func runMigrations(ctx context.Context, pg *db.PostgresDB, migrationsDir string, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := appMigrations.NewMigrator(pg.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupRedis connects the shared rate cache. It returns nil when Redis is disabled.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established.")
	return client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *Database, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	switch {
	case database.Mongo != nil:
		deps.Repos = appRepos.NewMongoRepositories(database.Mongo.Database)
	case database.Postgres != nil:
		deps.Repos = appRepos.NewPostgresRepositories(database.Postgres.Pool)
	default:
		return nil, fmt.Errorf("no database connection available")
	}

	deps.RateProvider = newRateProvider(cfg, redisClient, lgr)

	deps.CollegeService = appServices.NewCollegeService(
		deps.Repos.CollegeRepository,
		deps.Repos.FilterOptionRepository,
		deps.RateProvider,
		cfg.Currency.Required,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Repos.ScholarshipRepository)

	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService)
	deps.HealthController = appControllers.NewHealthController(deps.Repos.Pinger, database.Driver)

	return deps, nil
}

func newRateProvider(cfg *config.Config, redisClient *redis.Client, lgr zerolog.Logger) *currency.Provider {
	timeout := helpers.ParseDuration(cfg.Currency.Timeout, 5*time.Second)
	ttl := helpers.ParseDuration(cfg.Currency.CacheTTL, time.Hour)

	if cfg.Currency.APIKey == "" {
		lgr.Warn().Msg("Currency API key is not set, upstream rate requests will likely fail")
	}

	policy := httpx.DefaultRetryPolicy()
	policy.MaxAttempts = cfg.Currency.MaxAttempts

	client := currency.NewClient(cfg.Currency.BaseURL, cfg.Currency.APIKey, timeout, policy)

	var cache currency.Cache = currency.NewMemoryCache()
	if redisClient != nil {
		// Keep snapshots well past their TTL so they can serve as a stale fallback
		cache = currency.NewRedisCache(redisClient, 24*ttl)
		lgr.Info().Msg("Currency rates cached in redis")
	}

	return currency.NewProvider(client, cache, currency.ProviderConfig{
		Base:         strings.ToUpper(cfg.Currency.BaseCurrency),
		Currencies:   cfg.Currency.Currencies,
		TTL:          ttl,
		FetchTimeout: time.Duration(policy.MaxAttempts)*timeout + policy.MaxDelay,
	})
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
	)

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", appMiddleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(cfg.CORS.AllowOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CollegeController,
		deps.CourseController,
		deps.ScholarshipController,
		deps.HealthController,
	)

	return router
}
