package routes

import (
	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/handler"
	"github.com/iqraa07/AbsensiLokasi/internal/middleware"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPengaturanRoutes(app *fiber.App, db *gorm.DB, cfg config.App) {
	repo := repository.NewPengaturanRepository(db)
	hdl := handler.NewPengaturanHandler(repo)

	api := app.Group("/api/pengaturan", middleware.Auth(cfg.JWTSecret))
	api.Get("/", hdl.Get)
	api.Put("/", hdl.Update)
}
