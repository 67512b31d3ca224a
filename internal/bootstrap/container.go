package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"notely-be/internal/config"
	"notely-be/internal/controller"
	"notely-be/internal/pkg/logger"
	"notely-be/internal/pkg/mailer"
	"notely-be/internal/repository/unitofwork"
	"notely-be/internal/service"
	"notely-be/pkg/cache"
	pktNats "notely-be/pkg/nats"
	"notely-be/pkg/storage"
	"notely-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	EntryController controller.IEntryController
	UserController  controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		fmt.Sprintf("%s <%s>", cfg.SMTP.SenderName, cfg.SMTP.Email),
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	listingCache := cache.NewListingCache(rdb, 5*time.Minute)

	// MinIO (avatar storage)
	var objectStore storage.ObjectStore
	minioStore, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Printf("[WARN] Failed to connect to MinIO: %v (avatar upload disabled)", err)
	} else {
		objectStore = minioStore
	}

	// Summarizer
	summaryProvider := summarizer.NewOllamaProvider(cfg.Ai.SummarizerBaseURL, cfg.Ai.SummarizerModel)
	summaryCache := gocache.New(30*time.Minute, 10*time.Minute)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ActivityTopic,
		uowFactory,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	userService := service.NewUserService(uowFactory, objectStore)
	activityService := service.NewActivityService(uowFactory)
	entryService := service.NewEntryService(
		uowFactory,
		publisherService,
		listingCache,
		summaryCache,
		summaryProvider,
	)

	// 4. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		EntryController: controller.NewEntryController(entryService, activityService),
		UserController:  controller.NewUserController(userService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
