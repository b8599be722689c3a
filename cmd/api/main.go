package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/queueworks/queue-booking-api/internal/cache"
	"github.com/queueworks/queue-booking-api/internal/catalog"
	"github.com/queueworks/queue-booking-api/internal/config"
	dbpkg "github.com/queueworks/queue-booking-api/internal/db"
	"github.com/queueworks/queue-booking-api/internal/logging"
	"github.com/queueworks/queue-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	variant, err := catalog.ByName(cfg.Variant)
	if err != nil {
		log.Fatal("unknown APP_VARIANT", zap.String("variant", cfg.Variant), zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database bootstrap failed", zap.Error(err))
	}

	rdb, err := cache.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatal("redis connection failed", zap.String("addr", cfg.RedisURL), zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, variant, cfg, log)

	log.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("variant", variant.Name),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
