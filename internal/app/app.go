package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"malama_health_backend/internal/config"
	"malama_health_backend/internal/controller"
	"malama_health_backend/internal/repository"
	"malama_health_backend/internal/service"
	"malama_health_backend/pkg/logger"
	"malama_health_backend/pkg/monitoring"
	"malama_health_backend/pkg/security"
	"malama_health_backend/pkg/store"
	"malama_health_backend/pkg/tracing"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Store    *store.FileStore
	services *services
}

type repositories struct {
	user     *repository.UserRepository
	forum    *repository.ForumRepository
	learning *repository.LearningRepository
	resource *repository.ResourceRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	forum    *service.ForumService
	learning *service.LearningService
	resource *service.ResourceService
}

type controllers struct {
	user     *controller.UserController
	forum    *controller.ForumController
	learning *controller.LearningController
	resource *controller.ResourceController
	health   *controller.HealthController
}

func (a *App) initRepositories(s store.Store) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(s),
		forum:    repository.NewForumRepository(s),
		learning: repository.NewLearningRepository(s),
		resource: repository.NewResourceRepository(s),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		user:     service.NewUserService(repos.user),
		forum:    service.NewForumService(repos.forum, repos.user),
		learning: service.NewLearningService(repos.learning, repos.user),
		resource: service.NewResourceService(repos.resource),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		user:     controller.NewUserController(s.auth, s.user),
		forum:    controller.NewForumController(s.forum),
		learning: controller.NewLearningController(s.learning),
		resource: controller.NewResourceController(s.resource),
		health:   controller.NewHealthController(a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("logger initialized")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	fileStore := store.NewFileStore(cfg.Data.Dir, logger.Log)
	// Best-effort: a failed initialization is logged, and individual
	// requests will surface the underlying errors.
	if err := fileStore.Initialize(); err != nil {
		logger.Log.Error("failed to initialize data store", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  fileStore,
	}

	repos := app.initRepositories(fileStore)
	app.services = app.initServices(repos, cfg)
	ctrls := app.initControllers(app.services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	return app
}

func (a *App) Run() {
	var tracerShutdown func(context.Context) error
	if a.Config.Tracing.Enabled {
		tp, err := tracing.InitTracer("malama-health", a.Config.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
		tracerShutdown = tp.Shutdown
	}

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if tracerShutdown != nil {
		if err := tracerShutdown(ctx); err != nil {
			logger.Log.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
