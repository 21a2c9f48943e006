package main

import (
	"context"
	"errors"
	"gin-tasktracker/controllers"
	"gin-tasktracker/infra"
	"gin-tasktracker/middlewares"
	"gin-tasktracker/repositories"
	"gin-tasktracker/security"
	"gin-tasktracker/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type application struct {
	router      *gin.Engine
	authService services.IAuthService
	ledger      services.IRevocationLedger
}

func corsMiddleware(cfg *infra.Config) gin.HandlerFunc {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return cors.Default()
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization", "X-Request-ID")
	corsConfig.AddExposeHeaders("X-Request-ID")
	return cors.New(corsConfig)
}

func setupRouter(cfg *infra.Config, db *gorm.DB, tokenDB *gorm.DB, log *logrus.Logger, metrics *infra.Metrics) *application {
	userRepository := repositories.NewUserRepository(db)
	revokedTokenRepository := repositories.NewRevokedTokenRepository(tokenDB)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	codec := security.NewTokenCodec(cfg.SecretKey, cfg.TokenTTL)
	ledger := services.NewRevocationLedger(revokedTokenRepository, cfg.RevocationCacheSize, cfg.TokenTTL, metrics)
	resolver := services.NewIdentityResolver(codec, ledger, userRepository, metrics, log)
	authService := services.NewAuthService(userRepository, hasher, codec, ledger, metrics, log)
	authController := controllers.NewAuthController(authService, log)

	taskRepository := repositories.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepository)
	taskController := controllers.NewTaskController(taskService, log)

	categoryRepository := repositories.NewCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepository)
	categoryController := controllers.NewCategoryController(categoryService, log)

	expenseRepository := repositories.NewExpenseRepository(db)
	expenseService := services.NewExpenseService(expenseRepository, categoryRepository)
	expenseController := controllers.NewExpenseController(expenseService, log)

	r := gin.New()
	r.Use(middlewares.RequestLogger(log, metrics))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	r.Use(corsMiddleware(cfg))

	requireAuth := middlewares.AuthMiddleware(resolver, log)
	requireAdmin := middlewares.RequireAdmin(log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authRouter := r.Group("/auth")
	authRouterWithAuth := r.Group("/auth", requireAuth)
	authRouterWithAdminAuth := r.Group("/auth", requireAuth, requireAdmin)

	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouterWithAuth.GET("/profile", authController.Profile)
	authRouterWithAuth.POST("/logout", authController.Logout)
	authRouterWithAdminAuth.GET("/users", authController.ListUsers)
	authRouterWithAdminAuth.PATCH("/users/:id", authController.SetAdmin)

	taskRouterWithAuth := r.Group("/tasks", requireAuth)
	taskRouterWithAuth.GET("", taskController.FindAll)
	taskRouterWithAuth.GET("/:id", taskController.FindByID)
	taskRouterWithAuth.POST("", taskController.Create)
	taskRouterWithAuth.PUT("/:id", taskController.Update)
	taskRouterWithAuth.DELETE("/:id", taskController.Delete)

	categoryRouter := r.Group("/expenses/categories")
	categoryRouterWithAdminAuth := r.Group("/expenses/categories", requireAuth, requireAdmin)
	categoryRouter.GET("", categoryController.FindAll)
	categoryRouterWithAdminAuth.POST("", categoryController.Create)

	expenseRouterWithAuth := r.Group("/expenses", requireAuth)
	expenseRouterWithAuth.GET("", expenseController.FindAll)
	expenseRouterWithAuth.POST("", expenseController.Create)
	expenseRouterWithAuth.PUT("/:id", expenseController.Update)
	expenseRouterWithAuth.DELETE("/:id", expenseController.Delete)

	return &application{router: r, authService: authService, ledger: ledger}
}

// initDB opens the main and token databases. The in-memory fallback has
// no schema until it is migrated, so it is always migrated.
func initDB(cfg *infra.Config, log *logrus.Logger) (*gorm.DB, *gorm.DB, error) {
	db, err := infra.SetupDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	tokenDB, err := infra.SetupTokenDB(cfg, db, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.AutoMigrate || cfg.DB.Name == "" {
		if err := infra.Migrate(db, tokenDB); err != nil {
			return nil, nil, err
		}
		log.Info("Database schema migrated")
	}
	return db, tokenDB, nil
}

func startPruner(cfg *infra.Config, ledger services.IRevocationLedger, log *logrus.Logger) *cron.Cron {
	if cfg.PruneSchedule == "" {
		log.Info("Revoked token pruning disabled")
		return nil
	}
	scheduler, err := infra.NewPruneScheduler(cfg.PruneSchedule, ledger, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to schedule revoked token pruning")
	}
	scheduler.Start()
	log.WithField("schedule", cfg.PruneSchedule).Info("Revoked token pruning scheduled")
	return scheduler
}

func main() {
	bootLog := logrus.New()
	infra.Initialize(bootLog)

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLog.WithError(err).Fatal("Failed to load configuration")
	}
	log := infra.NewLogger(cfg, os.Stdout)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, tokenDB, err := initDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	metrics := infra.NewMetrics(prometheus.NewRegistry())
	app := setupRouter(cfg, db, tokenDB, log, metrics)

	if err := app.authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("Failed to seed admin user")
	}

	scheduler := startPruner(cfg, app.ledger, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}
	log.Info("Server exited")
}
