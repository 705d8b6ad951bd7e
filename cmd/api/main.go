package main

import (
	"fmt"

	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/absen"
	"github.com/iqraa07/AbsensiLokasi/internal/geocoder"
	"github.com/iqraa07/AbsensiLokasi/internal/logger"
	"github.com/iqraa07/AbsensiLokasi/internal/mailer"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"
	"github.com/iqraa07/AbsensiLokasi/internal/routes"
	"github.com/iqraa07/AbsensiLokasi/internal/stream"
	"github.com/iqraa07/AbsensiLokasi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB(cfg.DSN)
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	live := stream.NewRedis(cfg.RedisAddr, log)

	uc := usecase.NewAbsenUsecase(
		repository.NewAbsenRepository(config.DB),
		repository.NewKantorRepository(config.DB),
		repository.NewPengaturanRepository(config.DB),
		geocoder.NewNominatim(cfg.GeocoderBaseURL, cfg.GeocoderTimeout, log),
		live,
		mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.AlertEmail, log),
		absen.NewGuard(cfg.SubmitCooldown),
		log,
		cfg.CompanyID,
	)

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())        // Agar API bisa diakses dari domain/port lain
	app.Use(fiberlogger.New()) // Agar log request muncul di terminal (debugging)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		redisHealthy := live.Healthy(c.Context())
		status := fiber.StatusOK
		if !redisHealthy {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{"status": "ok", "redis": redisHealthy})
	})

	routes.SetupPegawaiRoutes(app, config.DB, cfg)
	routes.SetupAbsenRoutes(app, uc, live, cfg)
	routes.SetupPengaturanRoutes(app, config.DB, cfg)

	fmt.Println("4. Server siap! Menunggu request di port :" + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server berhenti", zap.Error(err))
	}
}
