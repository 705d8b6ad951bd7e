package handler

import (
	"strings"
	"time"

	"github.com/iqraa07/AbsensiLokasi/internal/model"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type PegawaiHandler struct {
	repo      repository.PegawaiRepository
	jwtSecret string
}

func NewPegawaiHandler(repo repository.PegawaiRepository, jwtSecret string) *PegawaiHandler {
	return &PegawaiHandler{repo: repo, jwtSecret: jwtSecret}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"` // UUID unik perangkat
	Brand    string `json:"brand"`
	Series   string `json:"series"`
}

func (h *PegawaiHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email & password wajib diisi"})
	}

	// 1. Cari pegawai by email
	pegawai, err := h.repo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau password salah"})
	}

	// 2. Cek password
	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau password salah"})
	}

	if !pegawai.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun dinonaktifkan. Hubungi admin."})
	}

	// 3. Cek device binding
	if req.DeviceID != "" {
		if len(pegawai.Devices) > 0 {
			isRegistered := false
			for _, d := range pegawai.Devices {
				if d.UUID == req.DeviceID {
					isRegistered = true
					break
				}
			}
			if !isRegistered {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Akun ini terkunci pada perangkat lain. Hubungi admin untuk reset.",
				})
			}
		} else {
			// Binding pertama kali
			newDevice := model.Device{
				PegawaiID: pegawai.ID,
				UUID:      req.DeviceID,
				Brand:     req.Brand,
				Series:    req.Series,
			}
			if err := h.repo.AddDevice(&newDevice); err != nil {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Perangkat ini sudah digunakan oleh akun lain.",
				})
			}
		}
	}

	// 4. Lengkapi profil saat login pertama: nama default dari bagian lokal email
	if pegawai.Nama == "" {
		defaultName := req.Email
		if i := strings.Index(req.Email, "@"); i > 0 {
			defaultName = req.Email[:i]
		}
		if defaultName == "" {
			defaultName = "User"
		}
		pegawai.Nama = defaultName
		// Best-effort, login tetap jalan walau update gagal
		_ = h.repo.Update(pegawai)
	}

	// 5. Generate token JWT
	token, err := h.generateToken(pegawai)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"nama":  pegawai.Nama,
			"email": pegawai.Email,
		},
	})
}

func (h *PegawaiHandler) GetProfile(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	pegawai, err := h.repo.FindByID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil profil",
		"data":    pegawai,
	})
}

type UpdateProfileRequest struct {
	Nama  string `json:"nama"`
	Email string `json:"email"`
}

// UpdateProfile: merge semantics — field kosong dibiarkan apa adanya.
func (h *PegawaiHandler) UpdateProfile(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pegawai, err := h.repo.FindByID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if strings.TrimSpace(req.Nama) != "" {
		pegawai.Nama = strings.TrimSpace(req.Nama)
	}
	if req.Email != "" {
		pegawai.Email = req.Email
	}

	if err := h.repo.Update(pegawai); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update profil"})
	}

	return c.JSON(fiber.Map{
		"message": "Profil berhasil diperbarui",
		"data":    pegawai,
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *PegawaiHandler) ChangePassword(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if len(req.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password minimal 6 karakter"})
	}

	pegawai, err := h.repo.FindByID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password lama salah"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	pegawai.Password = string(hashedPassword)
	if err := h.repo.Update(pegawai); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}

// Helper untuk membuat JWT, berlaku 24 jam.
func (h *PegawaiHandler) generateToken(pegawai *model.Pegawai) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    pegawai.ID,
		"email":      pegawai.Email,
		"company_id": pegawai.CompanyID,
		"exp":        time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
