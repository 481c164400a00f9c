// Package router wires the HTTP surface: route registration and the
// cross-cutting middleware (CORS, rate limiting, request logging).
package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/auth"
	"github.com/LorenzoMarty/FinLovi/internal/categories"
	"github.com/LorenzoMarty/FinLovi/internal/config"
	"github.com/LorenzoMarty/FinLovi/internal/dashboard"
	"github.com/LorenzoMarty/FinLovi/internal/fixedexpenses"
	"github.com/LorenzoMarty/FinLovi/internal/goals"
	"github.com/LorenzoMarty/FinLovi/internal/reports"
	"github.com/LorenzoMarty/FinLovi/internal/transactions"
)

type Router struct {
	Cfg *config.Config

	AuthHandler          *auth.Handler
	TransactionsHandler  *transactions.Handler
	CategoriesHandler    *categories.Handler
	FixedExpensesHandler *fixedexpenses.Handler
	GoalsHandler         *goals.Handler
	DashboardHandler     *dashboard.Handler
	ReportsHandler       *reports.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return api.OK(c, api.Message{Message: "ok"})
	})

	app.Post("/api/auth/login", r.AuthHandler.Login)
	app.Post("/api/auth/refresh", r.AuthHandler.Refresh)
	app.Post("/api/auth/logout", r.AuthHandler.Logout)
	app.Get("/api/auth/me", r.AuthHandler.Me)

	guard := auth.Guard(r.Cfg)

	tx := app.Group("/api/transactions", guard)
	tx.Get("/", r.TransactionsHandler.List)
	tx.Post("/", r.TransactionsHandler.Create)
	tx.Get("/:id", r.TransactionsHandler.Get)
	tx.Put("/:id", r.TransactionsHandler.Update)
	tx.Delete("/:id", r.TransactionsHandler.Delete)

	cat := app.Group("/api/categories", guard)
	cat.Get("/", r.CategoriesHandler.List)
	cat.Post("/", r.CategoriesHandler.Create)
	cat.Get("/:id", r.CategoriesHandler.Get)
	cat.Put("/:id", r.CategoriesHandler.Update)
	cat.Delete("/:id", r.CategoriesHandler.Delete)

	fe := app.Group("/api/fixed-expenses", guard)
	fe.Get("/", r.FixedExpensesHandler.List)
	fe.Post("/", r.FixedExpensesHandler.Create)
	// Registered before /:id so "upcoming" is not parsed as an id.
	fe.Get("/upcoming", r.FixedExpensesHandler.Upcoming)
	fe.Get("/:id", r.FixedExpensesHandler.Get)
	fe.Put("/:id", r.FixedExpensesHandler.Update)
	fe.Delete("/:id", r.FixedExpensesHandler.Delete)

	// Goal routes answer under both names for older clients.
	for _, prefix := range []string{"/api/goals", "/api/acquisition-goals"} {
		g := app.Group(prefix, guard)
		g.Get("/", r.GoalsHandler.List)
		g.Post("/", r.GoalsHandler.Create)
		g.Get("/:id", r.GoalsHandler.Get)
		g.Put("/:id", r.GoalsHandler.Update)
		g.Delete("/:id", r.GoalsHandler.Delete)
	}

	app.Get("/api/dashboard/summary", guard, r.DashboardHandler.Summary)
	app.Get("/api/reports/monthly", guard, r.ReportsHandler.Monthly)
	app.Get("/api/reports/monthly/pdf", guard, r.ReportsHandler.MonthlyPDF)
}
