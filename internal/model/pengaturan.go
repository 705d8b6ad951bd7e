package model

import "gorm.io/gorm"

// Mode tema aplikasi.
const (
	TemaSystem = "SYSTEM"
	TemaLight  = "LIGHT"
	TemaDark   = "DARK"
)

// Pengaturan adalah preferensi per pegawai: tema dan toggle auto absen.
// Dibuat lazy saat pertama dibaca, update-nya merge (field kosong dibiarkan).
type Pengaturan struct {
	gorm.Model
	PegawaiID uint   `json:"pegawai_id" gorm:"uniqueIndex;not null"`
	ThemeMode string `json:"theme_mode" gorm:"default:SYSTEM"`
	AutoAbsen bool   `json:"auto_absen" gorm:"default:true"`
}
