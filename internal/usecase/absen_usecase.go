package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iqraa07/AbsensiLokasi/internal/absen"
	"github.com/iqraa07/AbsensiLokasi/internal/geocoder"
	"github.com/iqraa07/AbsensiLokasi/internal/mailer"
	"github.com/iqraa07/AbsensiLokasi/internal/metrics"
	"github.com/iqraa07/AbsensiLokasi/internal/model"
	"github.com/iqraa07/AbsensiLokasi/internal/repository"
	"github.com/iqraa07/AbsensiLokasi/internal/stream"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSedangProses: masih ada submit berjalan / cooldown belum lewat.
	ErrSedangProses = errors.New("absen sebelumnya masih diproses")
	// ErrMockLocation: fix lokasi berasal dari provider mock/simulasi.
	ErrMockLocation = errors.New("mock location terdeteksi, absen ditolak")
	// ErrMasihMasuk: status terakhir masih IN, harus pulang dulu.
	ErrMasihMasuk = errors.New("kamu masih status masuk, pulang dulu")
	// ErrBelumMasuk: belum ada IN yang terbuka hari ini.
	ErrBelumMasuk = errors.New("kamu belum absen masuk")
)

// DiLuarRadiusError membawa jarak terukur dan radius yang diizinkan supaya
// pesan ke user bisa menyebut angkanya.
type DiLuarRadiusError struct {
	JarakM  float64
	RadiusM float64
}

func (e *DiLuarRadiusError) Error() string {
	return fmt.Sprintf("di luar area kantor (%d m), radius %d m", int(e.JarakM), int(e.RadiusM))
}

// SubmitRequest adalah payload absen dari aplikasi mobile.
type SubmitRequest struct {
	PegawaiID uint
	Email     string
	Type      absen.EventType
	Lat       float64
	Lng       float64
	Accuracy  float64
	Mock      bool // flag dari provider lokasi device
	Device    string
}

// SubmitResult adalah hasil submit yang sukses.
type SubmitResult struct {
	Event  *model.Absen
	JarakM float64
}

// AbsenUsecase mengorkestrasi alur submit: guard -> validasi lokasi ->
// evaluasi state hari ini -> geocode -> append -> publish.
type AbsenUsecase struct {
	absenRepo      repository.AbsenRepository
	kantorRepo     repository.KantorRepository
	pengaturanRepo repository.PengaturanRepository
	geo            geocoder.ReverseGeocoder
	pub            stream.Publisher
	mail           *mailer.AlertMailer
	guard          *absen.Guard
	log            *zap.Logger
	companyID      string
}

func NewAbsenUsecase(
	absenRepo repository.AbsenRepository,
	kantorRepo repository.KantorRepository,
	pengaturanRepo repository.PengaturanRepository,
	geo geocoder.ReverseGeocoder,
	pub stream.Publisher,
	mail *mailer.AlertMailer,
	guard *absen.Guard,
	log *zap.Logger,
	companyID string,
) *AbsenUsecase {
	return &AbsenUsecase{
		absenRepo:      absenRepo,
		kantorRepo:     kantorRepo,
		pengaturanRepo: pengaturanRepo,
		geo:            geo,
		pub:            pub,
		mail:           mail,
		guard:          guard,
		log:            log,
		companyID:      companyID,
	}
}

// DateKey: kunci partisi harian dalam timezone lokal server.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Submit menjalankan satu percobaan absen IN/OUT. Penolakan apa pun terjadi
// sebelum ada tulisan ke store. Append-nya at-least-once: kalau gagal, user
// yang retry manual (tanpa idempotency key, duplikat saat retry ambigu
// adalah risiko yang diterima).
func (u *AbsenUsecase) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if !u.guard.Begin(req.PegawaiID) {
		return nil, ErrSedangProses
	}
	defer u.guard.Finish(req.PegawaiID)

	outcome := metrics.OutcomeRejected
	defer func() {
		metrics.Submissions.WithLabelValues(string(req.Type), outcome).Inc()
	}()

	if req.Mock {
		metrics.MockRejections.Inc()
		u.log.Warn("mock location ditolak",
			zap.Uint("pegawai_id", req.PegawaiID),
			zap.Float64("lat", req.Lat),
			zap.Float64("lng", req.Lng))
		go u.mail.MockLocationAlert(req.Email, req.Lat, req.Lng)
		return nil, ErrMockLocation
	}

	kantor, err := u.kantorRepo.GetByCompanyID(u.companyID)
	if err != nil {
		outcome = metrics.OutcomeError
		return nil, fmt.Errorf("lokasi kantor belum disetting: %w", err)
	}

	jarak, err := absen.DistanceMeters(req.Lat, req.Lng, kantor.Latitude, kantor.Longitude)
	if err != nil {
		return nil, err
	}
	if !absen.IsWithinRadius(jarak, kantor.RadiusMeter) {
		return nil, &DiLuarRadiusError{JarakM: jarak, RadiusM: kantor.RadiusMeter}
	}

	now := time.Now()
	st, _, err := u.TodayState(req.PegawaiID, now)
	if err != nil {
		outcome = metrics.OutcomeError
		return nil, fmt.Errorf("gagal ambil event hari ini: %w", err)
	}

	switch req.Type {
	case absen.TypeIn:
		if !st.CanCheckIn() {
			return nil, ErrMasihMasuk
		}
	case absen.TypeOut:
		if !st.CanCheckOut() {
			return nil, ErrBelumMasuk
		}
	default:
		return nil, fmt.Errorf("tipe absen tidak dikenal: %q", req.Type)
	}

	// Best-effort; string kosong kalau geocoder gagal atau mati.
	address := u.geo.Reverse(ctx, req.Lat, req.Lng)

	event := &model.Absen{
		EventID:   uuid.NewString(),
		CompanyID: u.companyID,
		PegawaiID: req.PegawaiID,
		Type:      string(req.Type),
		DateKey:   DateKey(now),
		Ts:        now,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Accuracy:  req.Accuracy,
		Distance:  jarak,
		Address:   address,
		Device:    req.Device,
	}

	if err := u.absenRepo.Create(event); err != nil {
		outcome = metrics.OutcomeError
		return nil, fmt.Errorf("gagal simpan absen: %w", err)
	}

	if err := u.pub.PublishEvent(ctx, event); err != nil {
		u.log.Warn("gagal publish event absen", zap.Error(err))
	}

	outcome = metrics.OutcomeOK
	return &SubmitResult{Event: event, JarakM: jarak}, nil
}

// TodayState mengambil event hari ini lalu melipatnya jadi DayState.
func (u *AbsenUsecase) TodayState(pegawaiID uint, now time.Time) (absen.DayState, []model.Absen, error) {
	rows, err := u.absenRepo.GetTodayEvents(pegawaiID, DateKey(now))
	if err != nil {
		return absen.DayState{}, nil, err
	}

	events := make([]absen.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, absen.Event{Type: absen.EventType(r.Type), Ts: r.Ts})
	}
	return absen.EvaluateDayState(events), rows, nil
}

// CompanyCountToday menghitung total event absensi perusahaan hari ini.
func (u *AbsenUsecase) CompanyCountToday(now time.Time) (int64, error) {
	return u.absenRepo.CountByDateKey(u.companyID, DateKey(now))
}

// History mengambil riwayat event terbaru (default 30).
func (u *AbsenUsecase) History(pegawaiID uint, limit int) ([]model.Absen, error) {
	return u.absenRepo.GetHistory(pegawaiID, limit)
}

// CekLokasi menghitung jarak ke kantor tanpa menulis apa pun.
func (u *AbsenUsecase) CekLokasi(lat, lng float64) (jarak float64, inside bool, kantor *model.Kantor, err error) {
	kantor, err = u.kantorRepo.GetByCompanyID(u.companyID)
	if err != nil {
		return 0, false, nil, fmt.Errorf("lokasi kantor belum disetting: %w", err)
	}
	jarak, err = absen.DistanceMeters(lat, lng, kantor.Latitude, kantor.Longitude)
	if err != nil {
		return 0, false, nil, err
	}
	return jarak, absen.IsWithinRadius(jarak, kantor.RadiusMeter), kantor, nil
}

// AutoResult menjelaskan keputusan auto absen.
type AutoResult struct {
	Fired  bool
	Action absen.EventType
	Reason string
	Submit *SubmitResult
}

// Auto mengevaluasi apakah auto absen harus jalan untuk posisi saat ini.
// Kombinasi state yang sama (dateKey|aksi|siklus|tipe terakhir) hanya
// dipicu sekali, dicatat lewat Publisher.MarkAuto.
func (u *AbsenUsecase) Auto(ctx context.Context, req SubmitRequest) (*AutoResult, error) {
	pengaturan, err := u.pengaturanRepo.GetByPegawaiID(req.PegawaiID)
	if err != nil {
		return nil, fmt.Errorf("gagal ambil pengaturan: %w", err)
	}

	_, inside, _, err := u.CekLokasi(req.Lat, req.Lng)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	st, _, err := u.TodayState(req.PegawaiID, now)
	if err != nil {
		return nil, fmt.Errorf("gagal ambil event hari ini: %w", err)
	}

	action, ok := absen.DecideAction(st, inside, pengaturan.AutoAbsen)
	if !ok {
		return &AutoResult{Fired: false, Reason: "kondisi auto absen tidak terpenuhi"}, nil
	}

	key := fmt.Sprintf("%d|%s|%s|%d|%s",
		req.PegawaiID, DateKey(now), action, st.CycleCount, st.LastEventType)
	armed, err := u.pub.MarkAuto(ctx, key)
	if err != nil {
		u.log.Warn("gagal tandai kunci auto absen", zap.Error(err))
	} else if !armed {
		return &AutoResult{Fired: false, Action: action, Reason: "sudah dipicu untuk state ini"}, nil
	}

	req.Type = action
	res, err := u.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return &AutoResult{Fired: true, Action: action, Submit: res}, nil
}
