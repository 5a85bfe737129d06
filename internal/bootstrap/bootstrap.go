package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appAuth "github.com/retriever-essentials/pantry/internal/app/auth"
	appControllers "github.com/retriever-essentials/pantry/internal/app/controllers"
	appMigrations "github.com/retriever-essentials/pantry/internal/app/migrations"
	appRepos "github.com/retriever-essentials/pantry/internal/app/repositories"
	appRoutes "github.com/retriever-essentials/pantry/internal/app/routes"
	appServices "github.com/retriever-essentials/pantry/internal/app/services"
	"github.com/retriever-essentials/pantry/internal/config"
	"github.com/retriever-essentials/pantry/internal/db"
	appMiddleware "github.com/retriever-essentials/pantry/internal/middleware"
	pkgAuth "github.com/retriever-essentials/pantry/internal/pkg/auth"
	"github.com/retriever-essentials/pantry/internal/pkg/helpers"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
	"github.com/retriever-essentials/pantry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ItemService           appServices.ItemService
	VendorService         appServices.VendorService
	UserService           appServices.UserService
	TransactionService    appServices.TransactionService
	CheckoutService       appServices.CheckoutService
	ItemController        *appControllers.ItemController
	VendorController      *appControllers.VendorController
	UserController        *appControllers.UserController
	TransactionController *appControllers.TransactionController
	CheckoutController    *appControllers.CheckoutController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	AdminPolicy           appAuth.AdminPolicy
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool); err != nil {
		// Seeding failures are logged but do not block startup
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AdminPolicy = appAuth.NewRoleAdminPolicy()

	enforceLimits := cfg.Inventory.EnforceSignoutLimits

	deps.ItemService = appServices.NewItemService(deps.Repos.ItemRepository, appServices.ItemServiceOptions{
		EnforceSignoutLimits:      enforceLimits,
		LowStockQuantityThreshold: cfg.Inventory.LowStockQuantity,
		LowStockWeightThreshold:   cfg.Inventory.LowStockWeight,
	})
	deps.VendorService = appServices.NewVendorService(deps.Repos.VendorRepository, deps.Repos.ItemRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.JWTService)
	deps.TransactionService = appServices.NewTransactionService(deps.Repos.TransactionRepository, deps.Repos.UserRepository)
	deps.CheckoutService = appServices.NewCheckoutService(
		database,
		deps.Repos.ItemRepository,
		deps.Repos.UserRepository,
		deps.Repos.TransactionRepository,
		enforceLimits,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AdminPolicy)

	deps.ItemController = appControllers.NewItemController(deps.ItemService)
	deps.VendorController = appControllers.NewVendorController(deps.VendorService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.TransactionController = appControllers.NewTransactionController(deps.TransactionService)
	deps.CheckoutController = appControllers.NewCheckoutController(deps.CheckoutService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.ItemController,
		deps.VendorController,
		deps.UserController,
		deps.TransactionController,
		deps.CheckoutController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
