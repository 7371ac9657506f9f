package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentrecords/internal/app/controllers"
	appMigrations "github.com/yigit/studentrecords/internal/app/migrations"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	appRoutes "github.com/yigit/studentrecords/internal/app/routes"
	appServices "github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/db"
	appMiddleware "github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/seed"
)

// Database is what the dependency graph needs from the pool
type Database interface {
	appRepos.DBTX
	appRoutes.Pinger
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	AwardService      appServices.AwardService
	StudentController *appControllers.StudentController
	AwardController   *appControllers.AwardController
	Repos             *appRepos.Repositories
	DB                Database
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := SetupLogger(cfg)
	return cfg, lgr, nil
}

// SetupLogger configures the process logger from the logging section
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	format := strings.ToLower(cfg.Logging.Format)
	prettyLog := format == "text" || format == "console"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("dbname", cfg.Database.DBName).
		Int("maxConns", cfg.Database.MaxOpenConns).
		Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Migrate(ctx, appMigrations.Files, appMigrations.Dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{DB: database, Logger: lgr}

	queryTimeout := helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second)
	deps.Repos = appRepos.NewRepositories(database, queryTimeout)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AwardService = appServices.NewAwardService(deps.Repos.AwardRepository, deps.Repos.StudentRepository, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AwardController = appControllers.NewAwardController(deps.AwardService)

	return deps
}

// SeedDefaultData creates the configured admin-cohort student. Failures are
// logged and do not stop startup.
func SeedDefaultData(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	opts := seed.Options{
		Enabled:    cfg.Seed.Enabled,
		Name:       cfg.Seed.AdminName,
		Account:    cfg.Seed.AdminAccount,
		Password:   cfg.Seed.AdminPassword,
		Department: cfg.Seed.AdminDepartment,
	}
	if err := seed.CreateDefaultData(ctx, deps.Repos.StudentRepository, deps.StudentService, opts, deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
		if cfg.AllowsAllOrigins() {
			lgr.Warn().Msg("CORS allows every origin in production")
		}
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.CORS.AllowOrigins, helpers.ParseDuration(cfg.CORS.MaxAge, 12*time.Hour)),
	)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.AwardController,
		deps.DB,
	)

	return router
}
