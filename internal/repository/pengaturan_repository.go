package repository

import (
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"gorm.io/gorm"
)

type PengaturanRepository interface {
	GetByPegawaiID(pegawaiID uint) (*model.Pengaturan, error)
	Update(pengaturan *model.Pengaturan) error
}

type pengaturanRepository struct {
	db *gorm.DB
}

func NewPengaturanRepository(db *gorm.DB) PengaturanRepository {
	return &pengaturanRepository{db}
}

// GetByPegawaiID membuat row default (SYSTEM, auto absen aktif) kalau
// pegawai belum pernah menyimpan preferensi.
func (r *pengaturanRepository) GetByPegawaiID(pegawaiID uint) (*model.Pengaturan, error) {
	pengaturan := model.Pengaturan{
		PegawaiID: pegawaiID,
		ThemeMode: model.TemaSystem,
		AutoAbsen: true,
	}
	err := r.db.Where(model.Pengaturan{PegawaiID: pegawaiID}).
		Attrs(pengaturan).
		FirstOrCreate(&pengaturan).Error
	return &pengaturan, err
}

func (r *pengaturanRepository) Update(pengaturan *model.Pengaturan) error {
	return r.db.Save(pengaturan).Error
}
