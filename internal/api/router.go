package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/forms"
	"github.com/cse-motors/dealership/internal/api/handler"
	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/service"
	"github.com/cse-motors/dealership/internal/infrastructure/config"
	"github.com/cse-motors/dealership/internal/infrastructure/db/postgres"
	"github.com/cse-motors/dealership/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dealership"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	inventoryRepo := postgres.NewInventoryRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	accounts := service.NewAccountService(accountRepo, tokens)
	inventory := service.NewInventoryService(inventoryRepo)
	reviews := service.NewReviewService(reviewRepo)

	sessions := session.NewManager(redis.NewFlashStore(rdb), log)
	validate := forms.NewValidator()
	pages := handler.NewPageBuilder(inventory, sessions, log)

	e.HTTPErrorHandler = NewHTTPErrorHandler(pages, log)

	// Identity gate: populates request identity from the jwt cookie when
	// present; never rejects on its own.
	e.Use(middleware.WithIdentity(tokens))

	requireLogin := middleware.RequireLogin(sessions)
	requireStaff := middleware.RequireRole(sessions, domain.RoleEmployee, domain.RoleAdmin)

	homeHandler := handler.NewHomeHandler(pages)
	accountHandler := handler.NewAccountHandler(accounts, tokens, sessions, validate, pages, log)
	inventoryHandler := handler.NewInventoryHandler(inventory, reviews, sessions, validate, pages, log)
	reviewHandler := handler.NewReviewHandler(reviews, sessions, validate, pages, log)

	// --- Static assets ---
	e.Static("/public", "public")

	// --- Home ---
	e.GET("/", homeHandler.Index)

	// --- Account routes ---
	account := e.Group("/account")
	account.GET("/login", accountHandler.BuildLogin)
	account.POST("/login", accountHandler.Login)
	account.GET("/register", accountHandler.BuildRegister)
	account.POST("/register", accountHandler.Register)
	account.GET("/logout", accountHandler.Logout)
	account.GET("/", accountHandler.Management, requireLogin)
	account.GET("/update/:account_id", accountHandler.BuildUpdate, requireLogin)
	account.POST("/update", accountHandler.Update, requireLogin)
	account.POST("/update-password", accountHandler.UpdatePassword, requireLogin)

	// --- Inventory routes ---
	inv := e.Group("/inv")
	inv.GET("/type/:classificationId", inventoryHandler.ByClassification)
	inv.GET("/detail/:invId", inventoryHandler.Detail)
	inv.GET("/", inventoryHandler.Management, requireStaff)
	inv.GET("/add-classification", inventoryHandler.BuildAddClassification, requireStaff)
	inv.POST("/add-classification", inventoryHandler.AddClassification, requireStaff)
	inv.GET("/add-inventory", inventoryHandler.BuildAddInventory, requireStaff)
	inv.POST("/add-inventory", inventoryHandler.AddInventory, requireStaff)

	// --- Review routes ---
	review := e.Group("/review")
	review.POST("/add", reviewHandler.Add, requireLogin)
	review.GET("/my-reviews", reviewHandler.MyReviews, requireLogin)
	review.GET("/edit/:review_id", reviewHandler.EditForm, requireLogin)
	review.POST("/update", reviewHandler.Update, requireLogin)
	review.GET("/delete/:review_id", reviewHandler.Delete, requireLogin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
