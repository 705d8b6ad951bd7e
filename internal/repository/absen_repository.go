package repository

import (
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"gorm.io/gorm"
)

// AbsenRepository adalah gateway ke store event absensi. Event append-only:
// tidak ada Update/Delete di interface ini.
type AbsenRepository interface {
	Create(absen *model.Absen) error
	GetTodayEvents(pegawaiID uint, dateKey string) ([]model.Absen, error)
	GetHistory(pegawaiID uint, limit int) ([]model.Absen, error)
	CountByDateKey(companyID string, dateKey string) (int64, error)
}

type absenRepository struct {
	db *gorm.DB
}

func NewAbsenRepository(db *gorm.DB) AbsenRepository {
	return &absenRepository{db}
}

func (r *absenRepository) Create(absen *model.Absen) error {
	return r.db.Create(absen).Error
}

// GetTodayEvents mengembalikan event satu pegawai untuk satu dateKey,
// urut sesuai kedatangan di store (id naik).
func (r *absenRepository) GetTodayEvents(pegawaiID uint, dateKey string) ([]model.Absen, error) {
	var events []model.Absen
	err := r.db.Where("pegawai_id = ? AND date_key = ?", pegawaiID, dateKey).
		Order("id asc").
		Find(&events).Error
	return events, err
}

func (r *absenRepository) GetHistory(pegawaiID uint, limit int) ([]model.Absen, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var history []model.Absen
	err := r.db.Where("pegawai_id = ?", pegawaiID).
		Order("ts desc").
		Limit(limit).
		Find(&history).Error
	return history, err
}

func (r *absenRepository) CountByDateKey(companyID string, dateKey string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Absen{}).
		Where("company_id = ? AND date_key = ?", companyID, dateKey).
		Count(&count).Error
	return count, err
}
