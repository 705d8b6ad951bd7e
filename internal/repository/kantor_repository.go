package repository

import (
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"gorm.io/gorm"
)

type KantorRepository interface {
	GetByCompanyID(companyID string) (*model.Kantor, error)
	Create(kantor *model.Kantor) error
}

type kantorRepository struct {
	db *gorm.DB
}

func NewKantorRepository(db *gorm.DB) KantorRepository {
	return &kantorRepository{db}
}

func (r *kantorRepository) GetByCompanyID(companyID string) (*model.Kantor, error) {
	var kantor model.Kantor
	err := r.db.Where("company_id = ?", companyID).First(&kantor).Error
	return &kantor, err
}

func (r *kantorRepository) Create(kantor *model.Kantor) error {
	return r.db.Create(kantor).Error
}
