package model

import "gorm.io/gorm"

// Kantor adalah titik geofence absensi. Satu company satu kantor
// (multi-lokasi sengaja tidak didukung).
type Kantor struct {
	gorm.Model
	CompanyID   string  `json:"company_id" gorm:"index;not null"`
	NamaKantor  string  `json:"nama_kantor"`
	Alamat      string  `json:"alamat"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusMeter float64 `json:"radius_meter"`
}
