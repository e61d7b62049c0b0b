package routes

import (
	"log"
	"time"

	"lab-portal-backend/internal/api/handlers"
	"lab-portal-backend/internal/api/middleware"
	"lab-portal-backend/internal/auth"
	"lab-portal-backend/internal/config"
	"lab-portal-backend/internal/repository"
	"lab-portal-backend/internal/service"
	"lab-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	articleRepo := repository.NewArticleRepository(db)

	// Initialize auth service and middleware
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authMiddleware := auth.NewMiddleware(authService, userRepo)

	// Initialize file storage for news images
	fileStore, err := storage.NewFileStore(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadMB)
	if err != nil {
		log.Printf("Warning: file storage initialization failed, image uploads disabled: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, authService, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, membershipRepo, validator)
	projectService := service.NewProjectService(projectRepo, teamRepo, validator)
	newsService := service.NewNewsService(newsRepo, fileStore, validator)
	articleService := service.NewArticleService(articleRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	newsHandler := handlers.NewNewsHandler(newsService)
	articleHandler := handlers.NewArticleHandler(articleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded news images, only when the file store came up
	if fileStore != nil {
		router.Static("/uploads", cfg.UploadDir)
	}

	// API v1 routes. Reads are public, mutations require authentication.
	v1 := router.Group("/api/v1")
	{
		// User routes
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.GET("", userHandler.ListUsers)
			users.GET("/profile", authMiddleware.RequireAuth(), userHandler.GetProfile)
			users.PUT("/profile", authMiddleware.RequireAuth(), userHandler.UpdateProfile)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequireAuth(), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireAuth(), userHandler.DeleteUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", authMiddleware.RequireAuth(), teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", authMiddleware.RequireAuth(), teamHandler.UpdateTeam)
			teams.DELETE("/:id", authMiddleware.RequireAuth(), teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members", authMiddleware.RequireAuth(), teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", authMiddleware.RequireAuth(), teamHandler.RemoveMember)
			teams.GET("/:id/projects", projectHandler.ListTeamProjects)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", authMiddleware.RequireAuth(), projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", authMiddleware.RequireAuth(), projectHandler.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RequireAuth(), projectHandler.DeleteProject)
		}

		// News routes
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.ListNews)
			news.POST("", authMiddleware.RequireAuth(), newsHandler.CreateNews)
			if fileStore != nil {
				news.POST("/upload", authMiddleware.RequireAuth(), newsHandler.UploadImage)
			}
			news.GET("/:id", newsHandler.GetNews)
			news.PUT("/:id", authMiddleware.RequireAuth(), newsHandler.UpdateNews)
			news.DELETE("/:id", authMiddleware.RequireAuth(), newsHandler.DeleteNews)
		}

		// Article routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", authMiddleware.RequireAuth(), articleHandler.CreateArticle)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.PUT("/:id", authMiddleware.RequireAuth(), articleHandler.UpdateArticle)
			articles.DELETE("/:id", authMiddleware.RequireAuth(), articleHandler.DeleteArticle)
		}

		// Directory routes, only registered when an LDAP host is configured
		if cfg.DirectoryEnabled() {
			directoryService := service.NewDirectoryService(cfg)
			directoryHandler := handlers.NewDirectoryHandler(directoryService)
			directory := v1.Group("/directory")
			{
				directory.GET("/search", authMiddleware.RequireAuth(), directoryHandler.Search)
			}
		}
	}

	return router
}
