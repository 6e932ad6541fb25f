package routes

import (
	"fmt"

	"church-planning-backend/internal/api/handlers"
	"church-planning-backend/internal/api/middleware"
	"church-planning-backend/internal/auth"
	"church-planning-backend/internal/config"
	"church-planning-backend/internal/metrics"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/repository"
	"church-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the process-wide collaborators built by the entry point
type Dependencies struct {
	// Tokens stores refresh tokens. Nil keeps them in memory.
	Tokens auth.TokenStore
	// Metrics receives service and HTTP metrics. Nil creates a private registry.
	Metrics *metrics.PrometheusRecorder
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.Tokens == nil {
		deps.Tokens = auth.NewMemoryTokenStore()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewPrometheusRecorder()
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(deps.Metrics))

	// Initialize validator
	validator := validator.New()
	superAdminEmails := cfg.SuperAdminEmails()

	// Initialize repositories
	churchRepo := repository.NewChurchRepository(db)
	ministryRepo := repository.NewMinistryRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	planningRepo := repository.NewPlanningRepository(db)

	// Initialize services
	accessService := service.NewAccessService(roleRepo, departmentRepo, eventRepo, superAdminEmails)
	superAdminService := service.NewSuperAdminService(userRepo, churchRepo, roleRepo, superAdminEmails, deps.Metrics)
	churchService := service.NewChurchService(churchRepo, roleRepo, superAdminService, validator)
	ministryService := service.NewMinistryService(ministryRepo, churchRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, ministryRepo, validator)
	memberService := service.NewMemberService(memberRepo, departmentRepo, validator)
	eventService := service.NewEventService(eventRepo, churchRepo, validator)
	userService := service.NewUserService(userRepo, roleRepo, churchRepo, ministryRepo, departmentRepo, superAdminService, validator)
	planningService := service.NewPlanningService(churchRepo, eventRepo, departmentRepo, memberRepo, planningRepo, validator, deps.Metrics)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), deps.Tokens, userService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, cfg.IsProduction())
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	churchHandler := handlers.NewChurchHandler(churchService, accessService)
	ministryHandler := handlers.NewMinistryHandler(ministryService, accessService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService, ministryService, memberService, planningService, accessService)
	memberHandler := handlers.NewMemberHandler(memberService, accessService)
	eventHandler := handlers.NewEventHandler(eventService, planningService, accessService)
	planningHandler := handlers.NewPlanningHandler(planningService, accessService)
	userHandler := handlers.NewUserHandler(userService, accessService)
	adminHandler := handlers.NewAdminHandler(superAdminService, accessService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.GET("/google/start", authHandler.Start)
		authGroup.GET("/google/callback", authHandler.Callback)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", userHandler.GetMe)

		// Church routes
		churches := v1.Group("/churches")
		{
			churches.GET("", churchHandler.ListChurches)
			churches.POST("", churchHandler.CreateChurch)
			churches.GET("/:id", churchHandler.GetChurch)
			churches.PUT("/:id", churchHandler.UpdateChurch)
			churches.DELETE("/:id", churchHandler.DeleteChurch)
		}

		// Ministry routes
		ministries := v1.Group("/ministries")
		{
			ministries.GET("", middleware.RequirePermission(accessService, rbac.PermissionDepartmentsView), ministryHandler.ListMinistries)
			ministries.POST("", ministryHandler.CreateMinistry)
			ministries.PUT("/:id", ministryHandler.UpdateMinistry)
			ministries.DELETE("/:id", ministryHandler.DeleteMinistry)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments) // Requires churchId, optional ministryId
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
			departments.GET("/:id/members", departmentHandler.ListMembers)
			departments.GET("/:id/monthly-planning", departmentHandler.GetMonthlyPlanning)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers) // Requires churchId
			members.POST("", memberHandler.CreateMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", middleware.RequirePermission(accessService, rbac.PermissionEventsView), eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
			events.GET("/:id/star-view", eventHandler.GetStarView)
			events.POST("/:id/departments", eventHandler.LinkDepartment)
			events.DELETE("/:id/departments", eventHandler.UnlinkDepartment)
			events.GET("/:id/departments/:departmentId/planning", planningHandler.GetPlanning)
			events.PUT("/:id/departments/:departmentId/planning", planningHandler.SetPlanning)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", middleware.RequirePermission(accessService, rbac.PermissionMembersManage), userHandler.ListUsers)
			users.PATCH("/:id/profile", userHandler.UpdateProfile)
			users.POST("/:id/roles", userHandler.AddRole)
			users.PATCH("/:id/roles", userHandler.UpdateRole)
			users.DELETE("/:id/roles", userHandler.RemoveRole)
		}

		// Admin routes
		v1.POST("/admin/reconcile-super-admins", adminHandler.ReconcileSuperAdmins)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
