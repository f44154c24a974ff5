package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/salon-presence/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-presence/internal/db"
	infraRepo "github.com/BruksfildServices01/salon-presence/internal/infra/repository"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/presenceflags"
	"github.com/BruksfildServices01/salon-presence/internal/routes"
	"github.com/BruksfildServices01/salon-presence/internal/sweeper"
	ucPresence "github.com/BruksfildServices01/salon-presence/internal/usecase/presence"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	flags := presenceflags.NewRedisStore(redisClient)

	// Sweep de fim de dia: uma vez no startup (com delay) + de hora em hora.
	presenceRepo := infraRepo.NewPresenceGormRepository(db)
	sweepUC := ucPresence.NewSweepOffline(presenceRepo, flags)
	sweeper.New(sweepUC).Start(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, flags)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
