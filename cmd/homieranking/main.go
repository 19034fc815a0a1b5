package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	fiberadapter "github.com/fewfast/HomieRanking-BackEnd/adapters/fiber"
	pgxadapter "github.com/fewfast/HomieRanking-BackEnd/adapters/pgx"
	"github.com/fewfast/HomieRanking-BackEnd/config"
	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/migrations"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
	"github.com/fewfast/HomieRanking-BackEnd/services"
)

const (
	basePath        = "/api"
	shutdownTimeout = 10 * time.Second
	revocationSize  = 10_000
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("database unreachable")
	}

	store := pgxadapter.New(pool)

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if cfg.TokenRevocation {
		tokens = tokens.WithRevocationList(token.NewMemoryRevocationList(revocationSize))
	}

	auth := services.NewAuthService(store, core.NewArgon2(), tokens, logger)
	users := services.NewUserService(store, store, logger)
	quizzes := services.NewQuizService(store, logger)

	app := fiber.New()
	fiberadapter.New(app, auth, users, quizzes, logger).RegisterRoutes(basePath)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		errCh <- app.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("server stopped")
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("shutdown incomplete")
		}
	}
}

// runMigrations applies the embedded goose migrations over database/sql,
// which goose requires; the pgx pool is opened separately afterwards.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
