// ================== cmd/api/main.go ==================
//
// @title Storefront API
// @version 1.0
// @description E-commerce REST API with token-based authorization
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description Type "Bearer <token>". The Authorization header is accepted as well.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/storefront/docs"
	"github.com/xyz-asif/storefront/internal/config"
	"github.com/xyz-asif/storefront/internal/database"
	"github.com/xyz-asif/storefront/internal/middleware"
	"github.com/xyz-asif/storefront/internal/pkg/cloudinary"
	"github.com/xyz-asif/storefront/internal/pkg/credential"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/ratelimit"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	"github.com/xyz-asif/storefront/internal/pkg/token"
	"github.com/xyz-asif/storefront/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.Default().Named("api")

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(context.Background())

	repos := routes.NewRepositories(db.Database)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, repos.Indexers()...); err != nil {
		cancelIndexes()
		log.Fatal("Failed to create indexes: %v", err)
	}
	cancelIndexes()

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal("Failed to build token manager: %v", err)
	}
	codec, err := credential.NewCodec(cfg.PassSecret, cfg.BcryptCost)
	if err != nil {
		log.Fatal("Failed to build credential codec: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	limiter := ratelimit.New(cfg.AuthRatePerMinute, cfg.AuthRateBurst)
	stopCleanup := make(chan struct{})
	limiter.StartCleanup(5*time.Minute, stopCleanup)
	defer close(stopCleanup)

	deps := routes.Deps{
		Tokens:  tokens,
		Codec:   codec,
		Limiter: limiter,
		Guard:   middleware.NewGuard(tokens, middleware.WithRejectionRecorder(metrics)),
	}.WithRepositories(repos)

	if cfg.CloudinaryEnabled() {
		images, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary: %v", err)
		}
		deps.Images = images
	} else {
		log.Warn("Cloudinary is not configured; product image uploads are disabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	requestLog := middleware.DefaultLoggerConfig()
	requestLog.EnableColors = !cfg.IsProduction()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerWithConfig(requestLog))
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			log.Error("health check: %v", err)
			response.ServiceUnavailable(c, "Database unavailable", "DATABASE_UNAVAILABLE")
			return
		}
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})
	router.GET("/metrics", middleware.MetricsHandler(registry))

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	routes.SetupRoutes(router, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting on port %s (%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return
	}
	log.Info("Server exited")
}
