// This is the main entry point of the changelog API.
// It loads configuration, opens the database pool, wires services and
// handlers into the router and serves HTTP until interrupted. The `migrate`
// command applies or rolls back the SQL schema.
//
// @title Changelog API
// @version 1.0
// @description Owner-scoped products, updates and update points behind JWT bearer authentication.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	_ "github.com/user/changelog-api/docs" // Generated Swagger docs

	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/config"
	"github.com/user/changelog-api/db"
	"github.com/user/changelog-api/logging"
	"github.com/user/changelog-api/products"
	"github.com/user/changelog-api/server"
	"github.com/user/changelog-api/throttle"
	"github.com/user/changelog-api/updates"
	"github.com/user/changelog-api/users"
)

func main() {
	// In production variables are usually set directly; .env is a development convenience.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	app := &cli.App{
		Name:           "changelog-api",
		Usage:          "REST backend for product changelogs",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "migrate",
						Usage:   "apply pending migrations before serving",
						EnvVars: []string{"AUTO_MIGRATE"},
					},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or roll back the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply every pending migration",
						Action: migrateAction(db.Up),
					},
					{
						Name:   "down",
						Usage:  "roll back every migration",
						Action: migrateAction(db.Down),
					},
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

// setup loads the configuration and builds the logger shared by every command.
func setup() (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Dev: cfg.IsDev()})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger, nil
}

func migrateAction(dir db.Direction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if err := db.RunMigrations(cfg.DB, dir); err != nil {
			return err
		}
		logger.Info("migrations applied",
			zap.String("direction", string(dir)),
			zap.String("path", cfg.DB.MigrationsPath),
		)
		return nil
	}
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("stage", cfg.Stage))

	if c.Bool("migrate") {
		if err := db.RunMigrations(cfg.DB, db.Up); err != nil {
			return err
		}
		logger.Info("migrations applied", zap.String("path", cfg.DB.MigrationsPath))
	}

	pool, err := db.NewPool(c.Context, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, err := buildRouter(cfg, pool, logger)
	if err != nil {
		return err
	}

	return server.Run(c.Context, fmt.Sprintf(":%s", cfg.Server.Port), handler, logger)
}

// buildRouter constructs every service and handler. This is manual dependency
// injection: each component receives exactly the configuration it needs.
func buildRouter(cfg *config.AppConfig, pool *pgxpool.Pool, logger *zap.Logger) (http.Handler, error) {
	hasher, err := auth.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	userService := users.NewUserService(pool)
	authService, err := auth.NewAuthService(userService, hasher, tokens)
	if err != nil {
		return nil, err
	}

	return server.NewRouter(server.Deps{
		Logger:      logger,
		LogRequests: cfg.Log.Requests,
		TrustProxy:  cfg.Server.TrustProxy,
		Verifier:    tokens,
		Auth:        auth.NewHandlers(authService),
		Users:       users.NewUserHandlers(userService),
		Products:    products.NewProductHandler(products.NewProductService(pool)),
		Updates:     updates.NewUpdateHandler(updates.NewUpdateService(pool), updates.NewPointService(pool)),
		Throttle:    throttle.New(cfg.Auth.RateLimit, cfg.Auth.RateBurst),
		Store:       pool,
	}), nil
}
