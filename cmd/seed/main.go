package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapakpedia/internal/app/marketplace/config"
	"lapakpedia/internal/app/marketplace/seed"
	"lapakpedia/pkg/logger"
)

func main() {
	seedTarget := flag.String("seed", "", "seed a collection (users|categories|products|favourites|all)")
	truncateTarget := flag.String("truncate", "", "truncate a collection (users|categories|products|favourites|all)")
	flag.Parse()

	if *seedTarget == "" && *truncateTarget == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("marketplace-seed", cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("MongoDB is not reachable")
	}

	seeder := seed.New(client.Database(cfg.MongoDB.Database))

	if *truncateTarget != "" {
		if err := seeder.Truncate(ctx, *truncateTarget); err != nil {
			logger.Fatal().Err(err).Msg("Truncate failed")
		}
	}

	if *seedTarget != "" {
		if err := seeder.Seed(ctx, *seedTarget); err != nil {
			logger.Fatal().Err(err).Msg("Seed failed")
		}
	}
}
