package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iqraa07/AbsensiLokasi/internal/absen"
	"github.com/iqraa07/AbsensiLokasi/internal/stream"
	"github.com/iqraa07/AbsensiLokasi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AbsenHandler struct {
	uc        *usecase.AbsenUsecase
	live      *stream.Redis
	companyID string
}

func NewAbsenHandler(uc *usecase.AbsenUsecase, live *stream.Redis, companyID string) *AbsenHandler {
	return &AbsenHandler{uc: uc, live: live, companyID: companyID}
}

// AbsenRequest adalah payload lokasi dari aplikasi mobile. Mock diisi true
// kalau provider lokasi device melaporkan fix simulasi.
type AbsenRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Mock      bool    `json:"mock"`
	Device    string  `json:"device"`
}

func (h *AbsenHandler) submitRequest(c *fiber.Ctx, tipe absen.EventType) (usecase.SubmitRequest, error) {
	var req AbsenRequest
	if err := c.BodyParser(&req); err != nil {
		return usecase.SubmitRequest{}, err
	}
	return usecase.SubmitRequest{
		PegawaiID: uint(c.Locals("user_id").(float64)),
		Email:     c.Locals("email").(string),
		Type:      tipe,
		Lat:       req.Latitude,
		Lng:       req.Longitude,
		Accuracy:  req.Accuracy,
		Mock:      req.Mock,
		Device:    req.Device,
	}, nil
}

func (h *AbsenHandler) CheckIn(c *fiber.Ctx) error {
	return h.submit(c, absen.TypeIn)
}

func (h *AbsenHandler) CheckOut(c *fiber.Ctx) error {
	return h.submit(c, absen.TypeOut)
}

func (h *AbsenHandler) submit(c *fiber.Ctx, tipe absen.EventType) error {
	req, err := h.submitRequest(c, tipe)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	res, err := h.uc.Submit(c.Context(), req)
	if err != nil {
		return h.submitError(c, err)
	}

	label := "Masuk"
	if tipe == absen.TypeOut {
		label = "Pulang"
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Absen %s berhasil (%d m)", label, int(res.JarakM)),
		"data":    res.Event,
		"jarak":   res.JarakM,
	})
}

// Auto mengevaluasi auto absen untuk posisi saat ini; hanya menulis event
// kalau semua syarat terpenuhi dan state ini belum pernah dipicu.
func (h *AbsenHandler) Auto(c *fiber.Ctx) error {
	req, err := h.submitRequest(c, "")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	res, err := h.uc.Auto(c.Context(), req)
	if err != nil {
		return h.submitError(c, err)
	}

	if !res.Fired {
		return c.JSON(fiber.Map{
			"message": "Tidak ada aksi auto absen",
			"fired":   false,
			"reason":  res.Reason,
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Auto absen %s berhasil", res.Action),
		"fired":   true,
		"action":  res.Action,
		"data":    res.Submit.Event,
	})
}

func (h *AbsenHandler) GetTodayStatus(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	st, events, err := h.uc.TodayState(pegawaiID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil status hari ini"})
	}

	// Best-effort, 0 kalau query count gagal
	totalPerusahaan, _ := h.uc.CompanyCountToday(time.Now())

	return c.JSON(fiber.Map{
		"message": "Status hari ini",
		"data": fiber.Map{
			"date_key":               usecase.DateKey(time.Now()),
			"cycle_count":            st.CycleCount,
			"last_event_type":        st.LastEventType,
			"last_in":                nullableTime(st.LastInTime),
			"last_out":               nullableTime(st.LastOutTime),
			"can_check_in":           st.CanCheckIn(),
			"can_check_out":          st.CanCheckOut(),
			"events":                 events,
			"total_event_perusahaan": totalPerusahaan,
		},
	})
}

func (h *AbsenHandler) GetHistory(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))
	limit := c.QueryInt("limit", 30)

	history, err := h.uc.History(pegawaiID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data riwayat"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    history,
	})
}

// CekLokasi menghitung jarak & status radius tanpa menulis event apa pun.
func (h *AbsenHandler) CekLokasi(c *fiber.Ctx) error {
	var req AbsenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	jarak, inside, kantor, err := h.uc.CekLokasi(req.Latitude, req.Longitude)
	if err != nil {
		return h.submitError(c, err)
	}

	status := "DI_LUAR_RADIUS"
	if inside {
		status = "DI_DALAM_RADIUS"
	}
	return c.JSON(fiber.Map{
		"message": "Pengecekan lokasi berhasil",
		"status":  status,
		"jarak":   jarak,
		"kantor": fiber.Map{
			"nama":         kantor.NamaKantor,
			"alamat":       kantor.Alamat,
			"latitude":     kantor.Latitude,
			"longitude":    kantor.Longitude,
			"radius_meter": kantor.RadiusMeter,
		},
	})
}

// Stream mengirim event absensi baru lewat SSE; client me-refresh
// snapshot-nya setiap menerima push.
func (h *AbsenHandler) Stream(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	ctx, cancel := context.WithCancel(context.Background())
	events := h.live.Subscribe(ctx, h.companyID, pegawaiID)

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case payload, ok := <-events:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: absen\ndata: %s\n\n", payload)
			case <-ping.C:
				fmt.Fprint(w, ": ping\n\n")
			}
			if err := w.Flush(); err != nil {
				// Client putus koneksi
				return
			}
		}
	})
	return nil
}

// submitError memetakan error usecase ke status + pesan untuk user.
func (h *AbsenHandler) submitError(c *fiber.Ctx, err error) error {
	var diLuar *usecase.DiLuarRadiusError

	switch {
	case errors.Is(err, usecase.ErrSedangProses):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrMockLocation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mock location terdeteksi. Absen ditolak."})
	case errors.As(err, &diLuar):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  fmt.Sprintf("Di luar area kantor (%d m). Radius %d m.", int(diLuar.JarakM), int(diLuar.RadiusM)),
			"jarak":  diLuar.JarakM,
			"radius": diLuar.RadiusM,
		})
	case errors.Is(err, usecase.ErrMasihMasuk):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kamu masih status MASUK, pulang dulu."})
	case errors.Is(err, usecase.ErrBelumMasuk):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kamu belum absen masuk."})
	case errors.Is(err, absen.ErrKoordinatInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Koordinat tidak valid"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absen"})
	}
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
