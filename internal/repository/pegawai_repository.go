package repository

import (
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"gorm.io/gorm"
)

type PegawaiRepository interface {
	FindByEmail(email string) (*model.Pegawai, error)
	FindByID(id uint) (*model.Pegawai, error)
	Create(pegawai *model.Pegawai) error
	Update(pegawai *model.Pegawai) error
	AddDevice(device *model.Device) error
	ResetDevice(pegawaiID uint) error
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) FindByEmail(email string) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	// Preload Devices untuk cek device binding saat login
	err := r.db.Preload("Devices").Where("email = ?", email).First(&pegawai).Error
	return &pegawai, err
}

func (r *pegawaiRepository) FindByID(id uint) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	err := r.db.Preload("Devices").First(&pegawai, id).Error
	return &pegawai, err
}

func (r *pegawaiRepository) Create(pegawai *model.Pegawai) error {
	return r.db.Create(pegawai).Error
}

func (r *pegawaiRepository) Update(pegawai *model.Pegawai) error {
	return r.db.Save(pegawai).Error
}

func (r *pegawaiRepository) AddDevice(device *model.Device) error {
	return r.db.Create(device).Error
}

func (r *pegawaiRepository) ResetDevice(pegawaiID uint) error {
	// Hard delete agar UUID device benar-benar bebas dipakai ulang
	return r.db.Unscoped().Where("pegawai_id = ?", pegawaiID).Delete(&model.Device{}).Error
}
