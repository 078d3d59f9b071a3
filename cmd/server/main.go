package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"confmatch/internal/cache"
	"confmatch/internal/config"
	"confmatch/internal/form"
	"confmatch/internal/repository"
	"confmatch/internal/service"
	"confmatch/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.WebhookURL == "" {
		log.Println("Warning: WEBHOOK_URL not set, webhook dispatch disabled")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and caches
	responseRepo := repository.NewResponseRepo(db)
	formCache := cache.NewFormCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	webhook := service.NewWebhookClient(cfg.WebhookURL)
	questionnaireSvc := service.NewQuestionnaireService(form.DefaultSchema(), responseRepo, formCache, webhook)

	container := &rest.Container{
		AuthService:   authSvc,
		Questionnaire: questionnaireSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questionnaire/schema")
		log.Println("  GET  /v1/questionnaire/state")
		log.Println("  PUT  /v1/questionnaire/answers")
		log.Println("  POST /v1/questionnaire/options")
		log.Println("  POST /v1/questionnaire/next")
		log.Println("  POST /v1/questionnaire/back")
		log.Println("  POST /v1/questionnaire/submit")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
