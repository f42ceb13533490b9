package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type CustomPackageRepository struct {
	DB *gorm.DB
}

func NewCustomPackageRepository(db *gorm.DB) *CustomPackageRepository {
	return &CustomPackageRepository{DB: db}
}

func (r *CustomPackageRepository) Create(pkg *model.CustomPackage) error {
	return r.DB.Create(pkg).Error
}

func (r *CustomPackageRepository) FindByID(id string) (*model.CustomPackage, error) {
	var p model.CustomPackage
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *CustomPackageRepository) ListByUser(userID uint) ([]model.CustomPackage, error) {
	var pkgs []model.CustomPackage
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&pkgs).Error
	return pkgs, err
}

func (r *CustomPackageRepository) ListPublic() ([]model.CustomPackage, error) {
	var pkgs []model.CustomPackage
	err := r.DB.Where("is_public = ?", true).Order("created_at desc").Find(&pkgs).Error
	return pkgs, err
}

func (r *CustomPackageRepository) Update(pkg *model.CustomPackage) error {
	return r.DB.Save(pkg).Error
}

func (r *CustomPackageRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.CustomPackage{}).Error
}
