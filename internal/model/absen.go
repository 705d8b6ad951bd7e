package model

import (
	"time"

	"gorm.io/gorm"
)

// Tipe event absensi. Satu siklus = satu pasang IN -> OUT dalam satu hari.
const (
	TipeMasuk  = "IN"
	TipePulang = "OUT"
)

// Absen adalah satu event kehadiran. Append-only: tidak pernah di-update
// atau dihapus setelah tersimpan. Nama field JSON mengikuti dokumen yang
// dikonsumsi aplikasi mobile.
type Absen struct {
	gorm.Model
	EventID   string `json:"eventId" gorm:"unique;not null"` // UUID, identitas baris (bukan idempotency key)
	CompanyID string `json:"companyId" gorm:"index;not null"`
	PegawaiID uint   `json:"employeeId" gorm:"index;not null"`

	Type    string    `json:"type"`                 // IN / OUT
	DateKey string    `json:"dateKey" gorm:"index"` // yyyy-MM-dd, timezone lokal
	Ts      time.Time `json:"ts"`                   // waktu capture di sisi server

	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"` // meter, dari provider lokasi
	Distance float64 `json:"distance"` // jarak ke kantor saat capture (meter)
	Address  string  `json:"address"`  // hasil reverse geocode, boleh kosong
	Device   string  `json:"device"`   // model perangkat
}
