package routes

import (
	"taskboard-backend/internal/api/handlers"
	"taskboard-backend/internal/api/middleware"
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/events"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers into a gin engine. The
// event hub it starts runs for the life of the process.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	workstationRepo := repository.NewWorkstationRepository(db)
	templateRepo := repository.NewTaskTemplateRepository(db)
	dailyRepo := repository.NewDailyTaskRepository(db)

	// Event fan-out
	hub := events.NewHub()
	go hub.Run()

	// Services
	authService := auth.NewService(cfg, db, userRepo, teamRepo, validate)
	materializerService := service.NewMaterializerService(db)
	templateService := service.NewTemplateService(db, templateRepo, materializerService, hub, validate)
	dailyTaskService := service.NewDailyTaskService(dailyRepo, materializerService, hub)
	assignmentService := service.NewAssignmentService(dailyRepo, userRepo, hub)
	employeeService := service.NewEmployeeService(userRepo, validate)
	workstationService := service.NewWorkstationService(workstationRepo, userRepo, validate)
	directoryService := service.NewDirectoryService(cfg)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	dailyTaskHandler := handlers.NewDailyTaskHandler(dailyTaskService, assignmentService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	workstationHandler := handlers.NewWorkstationHandler(workstationService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	wsHandler := handlers.NewWSHandler(hub, authService, cfg.AllowedOrigins)

	router.GET("/health", healthHandler.Check)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	// Serves the OpenAPI document produced by `go generate ./cmd/server`
	// (swag init); doc.json is unavailable until docs have been generated.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.GET("/me", auth.RequireAuth(authService), authHandler.Me)
		}

		// The websocket handler authenticates on its own: browser clients
		// cannot set an Authorization header on the upgrade request.
		v1.GET("/ws", wsHandler.Serve)

		authed := v1.Group("")
		authed.Use(auth.RequireAuth(authService))
		{
			authed.GET("/daily-tasks", dailyTaskHandler.List)
			authed.PATCH("/daily-tasks/:id", dailyTaskHandler.Patch)

			authed.GET("/templates", templateHandler.List)
			authed.GET("/templates/:id", templateHandler.Get)
			authed.GET("/workstations", workstationHandler.List)
			authed.GET("/workstations/:id", workstationHandler.Get)
			authed.GET("/workstations/:id/members", workstationHandler.GetMembers)
			authed.GET("/employees", employeeHandler.List)
			authed.GET("/employees/:id", employeeHandler.Get)

			manager := authed.Group("")
			manager.Use(auth.RequireManager())
			{
				manager.POST("/daily-tasks/prepare", dailyTaskHandler.Prepare)

				manager.POST("/templates", templateHandler.Create)
				manager.PUT("/templates/:id", templateHandler.Update)
				manager.DELETE("/templates/:id", templateHandler.Delete)

				manager.POST("/workstations", workstationHandler.Create)
				manager.PUT("/workstations/:id", workstationHandler.Update)
				manager.DELETE("/workstations/:id", workstationHandler.Delete)
				manager.PUT("/workstations/:id/members", workstationHandler.ReplaceMembers)

				manager.POST("/employees", employeeHandler.Create)
				manager.PUT("/employees/:id", employeeHandler.Update)

				if cfg.LDAPEnabled() {
					manager.GET("/directory/search", directoryHandler.Search)
				}
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "route not found"})
	})

	return router
}
