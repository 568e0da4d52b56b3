package main

import (
	"context"
	"os"
	"strings"

	"gigportal_backend/internal/categories"
	"gigportal_backend/internal/categories/seed"
	categoryservice "gigportal_backend/internal/categories/service"
	"gigportal_backend/platform/cache"
	"gigportal_backend/platform/config"
	"gigportal_backend/platform/db"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting category seed")

	ctx := context.Background()
	if err := db.RunMigrations(ctx, cfg); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	nodes, err := loadNodes(strings.TrimSpace(os.Getenv("CATEGORY_SEED_FILE")))
	if err != nil {
		log.Error("failed to load category seed", "error", err)
		panic("failed to load category seed: " + err.Error())
	}

	// Seeding drops cached trees, so connect the cache when one is configured.
	var treeCache categoryservice.TreeCache
	if cfg.GetRedisURL() != "" {
		client, err := cache.NewClient(ctx, cfg.GetRedisURL())
		if err != nil {
			log.Warn("category cache unavailable; cached trees expire on their own", "error", err)
		} else {
			defer func() { _ = client.Close() }()
			treeCache = cache.NewJSONCache(client, "categories:", cfg.GetCategoryCacheTTL(), log)
		}
	}

	module := categories.NewModule(pool, treeCache, validator.New(), log)
	count, err := module.Service().Seed(ctx, nodes)
	if err != nil {
		log.Error("category seed failed", "seeded", count, "error", err)
		panic("category seed failed: " + err.Error())
	}
	log.Info("category seed complete", "seeded", count, "expected", seed.Count(nodes))
}

func loadNodes(path string) ([]seed.Node, error) {
	if path == "" {
		return seed.Bundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.Parse(data)
}
