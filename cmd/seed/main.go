// Command main populates a development database with demo data.
package main

import (
	"flag"
	"log"

	"devlink/internal/config"
	"devlink/internal/database"
	"devlink/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	posts := flag.Int("posts", 3, "posts per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{Users: *users, PostsPerUser: *posts}); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
