package main

import (
	"fmt"
	"log"

	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()
	config.ConnectDB(cfg.DSN)

	database.SeedAll(config.DB, cfg)

	fmt.Println("Seeding Selesai!")
}
