package model

import "gorm.io/gorm"

// Pegawai adalah akun karyawan. Akun dibuat admin (lewat seeder/console),
// aplikasi hanya menyediakan login.
type Pegawai struct {
	gorm.Model
	CompanyID string `json:"company_id" gorm:"index;not null"`
	Nama      string `json:"nama"`
	Email     string `json:"email" gorm:"unique;not null"`
	Password  string `json:"-"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Devices    []Device    `json:"devices"`
	Absen      []Absen     `json:"absen" gorm:"foreignKey:PegawaiID"`
	Pengaturan *Pengaturan `json:"pengaturan"`
}

type Device struct {
	gorm.Model
	PegawaiID uint   `json:"pegawai_id"`
	UUID      string `json:"uuid" gorm:"unique"`
	Brand     string `json:"brand"`
	Series    string `json:"series"`
}
