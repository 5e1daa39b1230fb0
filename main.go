package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chekwachibuike/ecommerce/aws"
	"github.com/Chekwachibuike/ecommerce/controllers"
	"github.com/Chekwachibuike/ecommerce/database"
	"github.com/Chekwachibuike/ecommerce/logger"
	"github.com/Chekwachibuike/ecommerce/repository"
	"github.com/Chekwachibuike/ecommerce/routes"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, system env wins
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	// --- Stores ---

	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDBName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, caching disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}

	// --- AWS clients ---

	var uploader *aws.S3Uploader
	var publisher services.EventPublisher
	if cfg.S3Bucket != "" || cfg.SNSTopicArn != "" {
		awsCfg, err := aws.LoadConfig(context.Background(), cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			zap.L().Fatal("Failed to load AWS config", zap.Error(err))
		}
		if cfg.S3Bucket != "" {
			uploader = aws.NewS3Uploader(awsCfg, cfg.S3Bucket)
		}
		if cfg.SNSTopicArn != "" {
			publisher = aws.NewSNSPublisher(awsCfg, cfg.SNSTopicArn)
		}
	}

	// --- Repositories ---

	userRepo := repository.NewMongoUserRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	cartItemRepo := repository.NewMongoCartItemRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	billingRepo := repository.NewMongoBillingRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure user indexes", zap.Error(err))
	}
	if err := productRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure product indexes", zap.Error(err))
	}
	indexCancel()

	// --- Services ---

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	productService := services.NewProductService(productRepo, categoryRepo, log)
	cartItemService := services.NewCartItemService(cartItemRepo, productRepo, log)
	cartService := services.NewCartService(cartRepo, cartItemRepo, productRepo, userRepo, log)
	billingService := services.NewBillingService(billingRepo, userRepo, log)
	orderService := services.NewOrderService(orderRepo, userRepo, cartRepo, billingRepo, publisher, log)

	// --- Controllers ---

	var cache *controllers.CacheManager
	if redisClient != nil {
		cache = controllers.NewCacheManager(redisClient)
	}

	ctrls := routes.Controllers{
		Auth:     controllers.NewAuthController(userService, tokens, int(cfg.TokenTTL.Seconds())),
		User:     controllers.NewUserController(userService),
		Category: controllers.NewCategoryController(categoryService, cache),
		Product:  controllers.NewProductController(productService, cache),
		CartItem: controllers.NewCartItemController(cartItemService),
		Cart:     controllers.NewCartController(cartService),
		Billing:  controllers.NewBillingController(billingService),
		Order:    controllers.NewOrderController(orderService),
		Upload:   controllers.NewUploadController(uploader),
	}

	// --- HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, ctrls, tokens)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}
	if err := database.Close(mongoClient); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
