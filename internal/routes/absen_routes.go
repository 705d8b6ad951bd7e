package routes

import (
	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/handler"
	"github.com/iqraa07/AbsensiLokasi/internal/middleware"
	"github.com/iqraa07/AbsensiLokasi/internal/stream"
	"github.com/iqraa07/AbsensiLokasi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAbsenRoutes(app *fiber.App, uc *usecase.AbsenUsecase, live *stream.Redis, cfg config.App) {
	hdl := handler.NewAbsenHandler(uc, live, cfg.CompanyID)

	api := app.Group("/api/absen", middleware.Auth(cfg.JWTSecret))

	api.Post("/masuk", hdl.CheckIn)
	api.Post("/pulang", hdl.CheckOut)
	api.Post("/auto", hdl.Auto)
	api.Post("/cek-lokasi", hdl.CekLokasi)
	api.Get("/status", hdl.GetTodayStatus)
	api.Get("/riwayat", hdl.GetHistory)
	api.Get("/stream", hdl.Stream)
}
