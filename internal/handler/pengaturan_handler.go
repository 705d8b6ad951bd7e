package handler

import (
	"github.com/iqraa07/AbsensiLokasi/internal/model"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PengaturanHandler struct {
	repo repository.PengaturanRepository
}

func NewPengaturanHandler(repo repository.PengaturanRepository) *PengaturanHandler {
	return &PengaturanHandler{repo: repo}
}

func (h *PengaturanHandler) Get(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	pengaturan, err := h.repo.GetByPegawaiID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengaturan"})
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan ditemukan",
		"data":    pengaturan,
	})
}

// Pointer fields: field yang tidak dikirim tidak diubah (merge).
type UpdatePengaturanRequest struct {
	ThemeMode *string `json:"theme_mode"`
	AutoAbsen *bool   `json:"auto_absen"`
}

func (h *PengaturanHandler) Update(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	var req UpdatePengaturanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pengaturan, err := h.repo.GetByPegawaiID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengaturan"})
	}

	if req.ThemeMode != nil {
		switch *req.ThemeMode {
		case model.TemaSystem, model.TemaLight, model.TemaDark:
			pengaturan.ThemeMode = *req.ThemeMode
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode tema tidak dikenal"})
		}
	}
	if req.AutoAbsen != nil {
		pengaturan.AutoAbsen = *req.AutoAbsen
	}

	if err := h.repo.Update(pengaturan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pengaturan"})
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan disimpan",
		"data":    pengaturan,
	})
}
