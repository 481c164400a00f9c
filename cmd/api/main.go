package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/auth"
	"github.com/LorenzoMarty/FinLovi/internal/categories"
	"github.com/LorenzoMarty/FinLovi/internal/config"
	"github.com/LorenzoMarty/FinLovi/internal/dashboard"
	"github.com/LorenzoMarty/FinLovi/internal/db"
	"github.com/LorenzoMarty/FinLovi/internal/fixedexpenses"
	"github.com/LorenzoMarty/FinLovi/internal/goals"
	"github.com/LorenzoMarty/FinLovi/internal/reports"
	"github.com/LorenzoMarty/FinLovi/internal/router"
	"github.com/LorenzoMarty/FinLovi/internal/transactions"
)

func main() {
	_ = godotenv.Load()

	log := newLogger(os.Getenv("LOG_LEVEL"))

	cfg := config.Load(log)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(router.CorsMiddleware(cfg))
	app.Use(router.RequestLogger(log))
	app.Use(router.RateLimit(cfg))

	r := &router.Router{
		Cfg:                  cfg,
		AuthHandler:          auth.NewHandler(cfg),
		TransactionsHandler:  transactions.NewHandler(transactions.NewRepo(pool)),
		CategoriesHandler:    categories.NewHandler(categories.NewRepo(pool)),
		FixedExpensesHandler: fixedexpenses.NewHandler(fixedexpenses.NewRepo(pool)),
		GoalsHandler:         goals.NewHandler(goals.NewRepo(pool)),
		DashboardHandler:     dashboard.NewHandler(dashboard.NewRepo(pool)),
		ReportsHandler:       reports.NewHandler(reports.NewRepo(pool)),
	}
	r.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}

// errorHandler is the catch-all boundary: fiber errors keep their status,
// everything else becomes a 500 envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return api.Fail(c, code, message, "", nil)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
