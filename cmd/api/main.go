package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/revibako/backend/docs"
	"github.com/revibako/backend/internal/domain/ports"
	httphandlers "github.com/revibako/backend/internal/handlers/http"
	"github.com/revibako/backend/internal/handlers/middleware"
	"github.com/revibako/backend/internal/handlers/ws"
	"github.com/revibako/backend/internal/infrastructure/auth"
	"github.com/revibako/backend/internal/infrastructure/config"
	"github.com/revibako/backend/internal/infrastructure/i18n"
	"github.com/revibako/backend/internal/infrastructure/logging"
	"github.com/revibako/backend/internal/infrastructure/persistence/postgres"
	"github.com/revibako/backend/internal/infrastructure/storage"
	"github.com/revibako/backend/internal/services"
)

//	@title			Review Box API
//	@version		1.0
//	@description	Backend de grupos de avaliação: grupos com critérios próprios, subjects e reviews por estrelas.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting revibako backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Sessões efêmeras (state OAuth e revogação de tokens)
	sessionStore, err := auth.NewSessionStore(cfg.Redis.URL)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		log.Fatal(err)
	}

	// Object storage para imagens
	objectStorage, err := newObjectStorage(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		log.Fatal(err)
	}

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	oauthService := auth.NewOAuthService(&cfg.OAuth)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	groupRepo := postgres.NewReviewGroupRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	subjectRepo := postgres.NewSubjectRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub de notificações em tempo real
	hub := ws.NewHub(logger)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(oauthService, sessionStore, tokenManager, userService, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	groupService := services.NewGroupService(groupRepo, membershipRepo, categoryRepo, subjectRepo, reviewRepo, uow, logger)
	membershipService := services.NewMembershipService(groupRepo, membershipRepo, invitationRepo, userRepo, uow, hub, logger)
	subjectService := services.NewSubjectService(groupRepo, membershipRepo, subjectRepo, reviewRepo, logger)
	reviewService := services.NewReviewService(groupRepo, membershipRepo, subjectRepo, reviewRepo, uow, logger)
	uploadService := services.NewUploadService(objectStorage, logger)

	// Seed das categorias padrão
	if err := categoryService.SeedDefaults(context.Background()); err != nil {
		logger.Error("failed to seed categories", "error", err)
		log.Fatal(err)
	}

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService, userService)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	groupHandler := httphandlers.NewGroupHandler(groupService)
	memberHandler := httphandlers.NewMemberHandler(membershipService)
	subjectHandler := httphandlers.NewSubjectHandler(subjectService)
	reviewHandler := httphandlers.NewReviewHandler(reviewService)
	profileHandler := httphandlers.NewProfileHandler(userService)
	uploadHandler := httphandlers.NewUploadHandler(uploadService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(&cfg.CORS))

	authMiddleware := middleware.NewAuthMiddleware(tokenManager, sessionStore, logger)
	requireAuth := authMiddleware.RequireAuth()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket de notificações (token via query parameter)
	router.GET("/ws", requireAuth, hub.ServeWS)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		authRoutes := v1.Group("/auth")
		{
			authRoutes.GET("/login/:provider", authHandler.Login)
			authRoutes.GET("/callback", authHandler.Callback)
			authRoutes.GET("/register", requireAuth, authHandler.RegistrationStatus)
			authRoutes.POST("/register", requireAuth, authHandler.CompleteRegistration)
			authRoutes.POST("/logout", requireAuth, authHandler.Logout)
		}

		// Categories
		v1.GET("/categories", requireAuth, categoryHandler.ListCategories)

		// Review groups
		groups := v1.Group("/review-groups", requireAuth)
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/:groupId", groupHandler.GetGroup)
			groups.PUT("/:groupId", groupHandler.UpdateGroup)
			groups.DELETE("/:groupId", groupHandler.DeleteGroup)

			// Members
			groups.GET("/:groupId/members", memberHandler.ListMembers)
			groups.POST("/:groupId/members/invite", memberHandler.InviteMember)

			// Subjects
			groups.POST("/:groupId/subjects", subjectHandler.CreateSubject)
			groups.GET("/:groupId/subjects", subjectHandler.ListSubjects)
			groups.GET("/:groupId/subjects/:subjectId", subjectHandler.GetSubject)
			groups.PUT("/:groupId/subjects/:subjectId", subjectHandler.UpdateSubject)
			groups.DELETE("/:groupId/subjects/:subjectId", subjectHandler.DeleteSubject)

			// Reviews
			groups.GET("/:groupId/subjects/:subjectId/reviews", reviewHandler.ListReviews)
			groups.POST("/:groupId/subjects/:subjectId/reviews", reviewHandler.CreateReview)
			groups.GET("/:groupId/subjects/:subjectId/reviews/me", reviewHandler.GetMyReview)
			groups.PUT("/:groupId/subjects/:subjectId/reviews", reviewHandler.UpdateReview)
			groups.DELETE("/:groupId/subjects/:subjectId/reviews", reviewHandler.DeleteReview)
		}

		// Invitations
		invitations := v1.Group("/invitations", requireAuth)
		{
			invitations.GET("", memberHandler.ListInvitations)
			invitations.POST("/:invitationId/accept", memberHandler.AcceptInvitation)
			invitations.POST("/:invitationId/decline", memberHandler.DeclineInvitation)
		}

		// Profile
		v1.GET("/user/profile", requireAuth, profileHandler.GetProfile)
		v1.PUT("/user/profile", requireAuth, profileHandler.UpdateProfile)

		// Upload
		v1.POST("/upload/image", requireAuth, uploadHandler.UploadImage)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newObjectStorage escolhe o driver de storage conforme a configuração
func newObjectStorage(cfg *config.Config, logger ports.Logger) (ports.ObjectStorage, error) {
	if cfg.Storage.Driver == "filesystem" {
		logger.Info("using filesystem storage", "dir", cfg.Storage.LocalDir)
		return storage.NewFilesystemStorage(cfg.Storage.LocalDir, cfg.Storage.PublicURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return storage.NewMinioStorage(ctx, &cfg.Storage)
}
