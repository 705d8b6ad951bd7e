package routes

import (
	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/handler"
	"github.com/iqraa07/AbsensiLokasi/internal/middleware"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPegawaiRoutes(app *fiber.App, db *gorm.DB, cfg config.App) {
	repo := repository.NewPegawaiRepository(db)
	hdl := handler.NewPegawaiHandler(repo, cfg.JWTSecret)

	// Auth (login only, register lewat seeder/admin)
	app.Post("/api/login", hdl.Login)

	// Profile (protected)
	api := app.Group("/api/pegawai", middleware.Auth(cfg.JWTSecret))
	api.Get("/profile", hdl.GetProfile)
	api.Put("/profile", hdl.UpdateProfile)
	api.Put("/password", hdl.ChangePassword)
}
