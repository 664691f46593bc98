package main

import (
	"flag"
	"os"

	"github.com/oggyb/swipe-match/internal/config"
	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/logger"
)

func main() {
	minimal := flag.Bool("minimal", false, "seed the small deterministic dataset instead of demo data")
	flag.Parse()

	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	seed := db.SeedTestData
	if *minimal {
		seed = db.SeedMinimalTestData
	}
	if err := seed(database); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed", "minimal", *minimal)
}
