package database

import (
	"log"

	"github.com/iqraa07/AbsensiLokasi/config"
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi kantor dan akun demo. Aman dijalankan berulang
// (FirstOrCreate).
func SeedAll(db *gorm.DB, cfg config.App) {
	// 1. Seed Kantor (titik geofence)
	kantor := model.Kantor{
		CompanyID:   cfg.CompanyID,
		NamaKantor:  cfg.OfficeName,
		Latitude:    cfg.OfficeLat,
		Longitude:   cfg.OfficeLng,
		RadiusMeter: cfg.OfficeRadiusM,
	}
	db.FirstOrCreate(&kantor, model.Kantor{CompanyID: cfg.CompanyID})

	// 2. Seed akun demo (akun dibuat admin, aplikasi hanya login)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("gagal hash password seed:", err)
	}

	pegawai := model.Pegawai{
		CompanyID: cfg.CompanyID,
		Nama:      "Pegawai Demo",
		Email:     "pegawai@nobel.ac.id",
		Password:  string(hashedPassword),
		IsActive:  true,
	}
	db.FirstOrCreate(&pegawai, model.Pegawai{Email: pegawai.Email})

	// 3. Pengaturan default untuk akun demo
	pengaturan := model.Pengaturan{
		PegawaiID: pegawai.ID,
		ThemeMode: model.TemaSystem,
		AutoAbsen: true,
	}
	db.FirstOrCreate(&pengaturan, model.Pengaturan{PegawaiID: pegawai.ID})

	log.Printf("Seed selesai: kantor %q radius %.0f m, akun %s", kantor.NamaKantor, kantor.RadiusMeter, pegawai.Email)
}
