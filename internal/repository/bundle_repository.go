package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type BundleRepository struct {
	DB *gorm.DB
}

func NewBundleRepository(db *gorm.DB) *BundleRepository {
	return &BundleRepository{DB: db}
}

func (r *BundleRepository) Create(bundle *model.AiBundle) error {
	return r.DB.Create(bundle).Error
}

func (r *BundleRepository) FindByID(id uint) (*model.AiBundle, error) {
	var b model.AiBundle
	err := r.DB.First(&b, id).Error
	return &b, err
}

func (r *BundleRepository) ListAll() ([]model.AiBundle, error) {
	var bundles []model.AiBundle
	err := r.DB.Order("id asc").Find(&bundles).Error
	return bundles, err
}

func (r *BundleRepository) Update(bundle *model.AiBundle) error {
	return r.DB.Save(bundle).Error
}

func (r *BundleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AiBundle{}, id).Error
}
