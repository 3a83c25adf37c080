package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/auth"
	"github.com/Rahul77977/gagan-server/config"
	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/routes"
	"github.com/Rahul77977/gagan-server/storage"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	// External-service handles are built once and injected everywhere.
	store, err := storage.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer store.Close(ctx)
	logger.Info("mongodb connected", zap.String("database", cfg.Mongo.Database))

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase)
	if err != nil {
		logger.Fatal("firebase initialization failed", zap.Error(err))
	}

	uploads, err := media.NewCloudinary(cfg.Cloudinary)
	if err != nil {
		logger.Fatal("cloudinary initialization failed", zap.Error(err))
	}

	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Store:    store,
		Verifier: verifier,
		Uploads:  uploads,
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "send your application"})
	})

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.Server.AppEnv == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.Logger.Level); err == nil {
		zcfg.Level = level
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
