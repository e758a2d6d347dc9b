package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/worknest/workforce-api/internal/api/handler"
	"github.com/worknest/workforce-api/internal/api/middleware"
	"github.com/worknest/workforce-api/internal/core/service"
	"github.com/worknest/workforce-api/internal/infrastructure/config"
	mongodb "github.com/worknest/workforce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/worknest/workforce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Repositories ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	workflowRepo := mongodb.NewWorkflowRepository(db)

	// --- Services ---
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(employeeRepo, throttle, cfg.JWTSecret, cfg.JWTTTL, log)
	projectService := service.NewProjectService(projectRepo, taskRepo, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, log)
	workflowService := service.NewWorkflowService(workflowRepo, employeeRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, employeeRepo)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)

	auth := middleware.Auth(cfg.JWTSecret, employeeRepo)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, auth)

	projects := v1.Group("/projects", auth)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	tasks := v1.Group("/tasks", auth)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/stats/overview", taskHandler.Stats)
	tasks.GET("/project/:projectId", taskHandler.ListByProject)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	workflows := v1.Group("/workflows", auth)
	workflows.GET("", workflowHandler.List)
	workflows.POST("", workflowHandler.Create)
	workflows.GET("/stats/overview", workflowHandler.Stats)
	workflows.GET("/:id", workflowHandler.Get)
	workflows.PUT("/:id", workflowHandler.Update)
	workflows.DELETE("/:id", workflowHandler.Delete)
	workflows.PUT("/:id/steps/:stepId", workflowHandler.UpdateStep)
	workflows.POST("/:id/comments", workflowHandler.AddComment)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
