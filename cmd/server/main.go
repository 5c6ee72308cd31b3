package main

import (
	"context"
	"log"
	"net/http"

	"eventboard/config"
	"eventboard/internal/database"
	"eventboard/internal/handler"
	"eventboard/internal/mailer"
	"eventboard/internal/queue"
	"eventboard/internal/repository"
	"eventboard/internal/service"
	"eventboard/internal/upload"
	"eventboard/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	var notificationQueue queue.NotificationQueue
	switch cfg.Queue.Driver {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		notificationQueue, err = queue.NewRedisStreamNotificationQueue(rdb, "", nil)
		if err != nil {
			log.Fatalf("Failed to initialize notification queue: %v", err)
		}
	default:
		notificationQueue = queue.NewMemoryNotificationQueue(64)
	}

	m, err := mailer.New(&cfg.Mailer)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := worker.NewNotificationWorker(notificationQueue, m).Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	uploader, err := upload.NewUploader(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload dir: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	imageRepo := repository.NewEventImageRepository(pool)
	eventService := service.NewEventService(pool, eventRepo, imageRepo)
	notifier := service.NewNotificationService(notificationQueue, cfg.Notify.CreatorEmail, cfg.Upload.Dir)
	eventHandler := handler.NewEventHandler(eventService, notifier, uploader)

	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*")
	router.Static("/uploads", cfg.Upload.Dir)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	eventHandler.RegisterRoutes(router)

	addr := ":" + cfg.Server.Port
	log.Printf("Server listening at http://localhost%s", addr)
	if err := http.ListenAndServe(addr, handler.MethodOverride(router)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
