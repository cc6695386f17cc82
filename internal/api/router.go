package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/assetvault/inventory-system/internal/api/handler"
	"github.com/assetvault/inventory-system/internal/api/middleware"
	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/service"
	mongostore "github.com/assetvault/inventory-system/internal/infrastructure/db/mongo"
	redisstore "github.com/assetvault/inventory-system/internal/infrastructure/db/redis"
	"github.com/assetvault/inventory-system/internal/infrastructure/identity"
	"github.com/assetvault/inventory-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	departmentRepo := mongostore.NewDepartmentRepository(db)
	assetRepo := mongostore.NewAssetRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)

	provider := identity.NewClient(identity.Config{
		BaseURL:    cfg.Identity.BaseURL,
		AnonKey:    cfg.Identity.AnonKey,
		ServiceKey: cfg.Identity.ServiceKey,
	})

	identityService := service.NewIdentityService(userRepo, provider, sessionStore, log)
	inventoryService := service.NewInventoryService(userRepo, categoryRepo, departmentRepo, assetRepo, log)
	dashboardService := service.NewDashboardService(userRepo, categoryRepo, departmentRepo, assetRepo, inventoryService, log)
	provisionService := service.NewProvisionService(userRepo, provider, log)

	authHandler := handler.NewAuthHandler(identityService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	userHandler := handler.NewUserHandler(inventoryService, provisionService)

	// Every request carries its (possibly anonymous) identity; the guards
	// below decide what that identity may reach.
	e.Use(middleware.Session(cfg.JWTSecret, sessionStore))

	adminPage := middleware.PageGuard(identityService, domain.RoleAdmin)
	userPage := middleware.PageGuard(identityService, domain.RoleUser)
	anyAuthenticated := middleware.RequireRole(identityService)
	adminOnly := middleware.RequireRole(identityService, domain.RoleAdmin)

	// --- Auth routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Admin pages ---
	admin := e.Group("/admin", adminPage)
	admin.GET("/dashboard", dashboardHandler.Admin)
	admin.GET("/assets", inventoryHandler.ListAssets)
	admin.GET("/users", userHandler.List)
	admin.GET("/categories", inventoryHandler.ListCategories)
	admin.GET("/departments", inventoryHandler.ListDepartments)

	// --- User pages ---
	user := e.Group("/user", userPage)
	user.GET("/dashboard", dashboardHandler.User)
	user.GET("/assets", inventoryHandler.ListAssets)

	// --- Mutations ---
	e.POST("/assets", inventoryHandler.CreateAsset, anyAuthenticated)
	e.DELETE("/assets/:id", inventoryHandler.DeleteAsset, adminOnly)
	e.POST("/categories", inventoryHandler.CreateCategory, anyAuthenticated)
	e.POST("/departments", inventoryHandler.CreateDepartment, anyAuthenticated)
	e.POST("/api/users/create", userHandler.Create, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
