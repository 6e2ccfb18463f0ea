package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapakpedia/internal/app/marketplace/config"
	"lapakpedia/internal/app/marketplace/handler"
	"lapakpedia/internal/app/marketplace/messaging"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/internal/app/marketplace/util"
	"lapakpedia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("marketplace", cfg.Log.Level)

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().
		Str("database", cfg.MongoDB.Database).
		Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	var cache *util.RedisClient
	if cfg.Redis.Enabled {
		cache, err = util.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Redis, cache disabled")
			cache = nil
		} else {
			logger.Info().Str("address", cfg.Redis.Address()).Msg("Connected to Redis")
		}
	}

	var publisher messaging.MessagePublisher = messaging.NoopPublisher{}
	if cfg.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		publisher = producer
		logger.Info().
			Str("topic", cfg.Kafka.Topic).
			Msg("Initialized Kafka producer")
	}

	photos := util.NewPhotoStore(cfg.Storage.PhotoDir)
	jwtManager := util.NewJWTManager(cfg.JWT.Secret)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, photos)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, cache, photos)
	favouriteService := service.NewFavouriteService(favouriteRepo)
	orderService := service.NewOrderService(orderRepo, purchaseRepo, publisher)

	authMiddleware := handler.NewAuthMiddleware(jwtManager)
	router := handler.SetupRoutes(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCatalogHandler(catalogService),
		handler.NewFavouriteHandler(favouriteService),
		handler.NewOrderHandler(orderService),
		authMiddleware,
		cfg.Storage.PhotoDir,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting marketplace API")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down marketplace API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Marketplace API stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var client *mongo.Client
	var err error

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		client, err = mongo.Connect(ctx, clientOptions)
		if err == nil {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = client.Ping(pingCtx, nil)
			pingCancel()
			if err == nil {
				cancel()
				return client, nil
			}
		}
		cancel()

		logger.Warn().
			Err(err).
			Int("attempt", i+1).
			Msg("MongoDB not ready, retrying in 3s")
		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to MongoDB after 10 attempts: %w", err)
}
