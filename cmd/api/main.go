package main

import (
	"context"
	"log"

	"github.com/renoquote/quote-backend/config"
	"github.com/renoquote/quote-backend/internal/ai"
	"github.com/renoquote/quote-backend/internal/bootstrap"
	"github.com/renoquote/quote-backend/internal/maintenance"
	"github.com/renoquote/quote-backend/internal/quotes/repository"
	"github.com/renoquote/quote-backend/internal/quotes/service"
	s3store "github.com/renoquote/quote-backend/internal/storage/s3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	artifacts, err := s3store.New(ctx, &cfg.Storage)
	if err != nil {
		log.Fatalf("artifact store: %v", err)
	}

	repo := repository.NewProjectRepository(db)
	cache := repository.NewListingCache(redisClient)
	generator := ai.NewClient(&cfg.AI)
	pipeline := service.NewPipelineService(repo, artifacts, generator, cache)

	scheduler := maintenance.NewScheduler(repo)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "quote-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Pipeline:    pipeline,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
