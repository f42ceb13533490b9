package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]model.UserFavorite, error) {
	var favs []model.UserFavorite
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Find(userID, itemID uint, itemType string) (*model.UserFavorite, error) {
	var f model.UserFavorite
	err := r.DB.
		Where("user_id = ? AND item_id = ? AND item_type = ?", userID, itemID, itemType).
		First(&f).Error
	return &f, err
}

func (r *FavoriteRepository) Create(fav *model.UserFavorite) error {
	return r.DB.Create(fav).Error
}

func (r *FavoriteRepository) Delete(userID, favoriteID uint) error {
	return r.DB.
		Where("user_id = ?", userID).
		Delete(&model.UserFavorite{}, favoriteID).Error
}
