package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"farescout/cfg"
	"farescout/internal/alert"
	"farescout/internal/offer"
	"farescout/internal/ratelimit"
	"farescout/pkg/cache"
	"farescout/pkg/db"
	"farescout/pkg/idgen"
	"farescout/pkg/logger"
	"farescout/pkg/shopclient"
	"farescout/pkg/telemetry"

	_ "farescout/cmd/farescout/docs" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Farescout API
// @version         1.0
// @description     Flight offer search with faceted filtering and price alerts.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// telemetry
	// ============
	shutdownOtel, err := telemetry.Init(context.Background(), telemetry.Config{
		OTLPEndpoint: config.Observability.OTLPEndpoint,
		ServiceName:  config.Observability.ServiceName,
		Environment:  config.Observability.Environment,
	})
	if err != nil {
		zlogger.Warn("telemetry disabled", logger.Field{Key: "err", Value: err})
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("telemetry shutdown failed", logger.Field{Key: "err", Value: err})
			}
		}()
	}

	// ============
	// cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	// ============
	// database
	// ============
	if err := db.RunMigrations(config.PostgresConfig.MigrationsDir, config.PostgresConfig.DSN); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	sqlClient, err := db.NewSQLClient("postgres", config.PostgresConfig.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	// ============
	// external service
	// ============
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	tokens := shopclient.NewTokenSource(httpClient,
		config.ShopAPIConfig.BaseURL,
		config.ShopAPIConfig.ClientID,
		config.ShopAPIConfig.ClientSecret,
	)
	shopClient := shopclient.NewClient(httpClient, config.ShopAPIConfig.BaseURL, tokens, zlogger)

	// ============
	// internal service
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatalf("failed to init id generator: %v", err)
	}

	offerSvc := offer.NewService(shopClient, redis, config.CacheTTLMinutes, ids, zlogger)
	offerHandler := offer.NewOfferHandler(offerSvc)

	alertStore := alert.NewStore(sqlClient)
	alertHandler := alert.NewAlertHandler(alertStore, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	limiter := ratelimit.NewClientLimiter(ratelimit.DefaultConfig())
	r.Use(limiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		if err := redis.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	offerHandler.RegisterRoutes(r)
	alertHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
