package config

import (
	"fmt"

	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB membuka koneksi MySQL dan menjalankan auto migration.
func ConnectDB(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.Pegawai{})
	db.AutoMigrate(&model.Device{})
	db.AutoMigrate(&model.Kantor{})
	db.AutoMigrate(&model.Absen{})
	db.AutoMigrate(&model.Pengaturan{})

	DB = db
}
