package main

import (
	"log"

	"github.com/joho/godotenv"

	"gymoffice/internal/app"
	"gymoffice/internal/config"
	"gymoffice/internal/database"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := app.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	r := app.NewRouter(db, cfg)

	log.Println("listening on", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
