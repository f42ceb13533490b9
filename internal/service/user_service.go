package service

import (
	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	FavoriteRepo *repository.FavoriteRepository
}

func NewUserService(userRepo *repository.UserRepository, favoriteRepo *repository.FavoriteRepository) *UserService {
	return &UserService{UserRepo: userRepo, FavoriteRepo: favoriteRepo}
}

type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Avatar   string `json:"avatar"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Language != "" {
		user.Language = req.Language
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListFavorites(userID uint) ([]model.UserFavorite, error) {
	return s.FavoriteRepo.ListByUser(userID)
}

type FavoriteRequest struct {
	ItemID   uint   `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required,oneof=tool bundle"`
	ItemName string `json:"itemName" binding:"required"`
}

func (s *UserService) AddFavorite(userID uint, req FavoriteRequest) (*model.UserFavorite, error) {
	_, err := s.FavoriteRepo.Find(userID, req.ItemID, req.ItemType)
	if err == nil {
		return nil, util.ErrAlreadyFavorited
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	fav := &model.UserFavorite{
		UserID:   userID,
		ItemID:   req.ItemID,
		ItemType: req.ItemType,
		ItemName: req.ItemName,
	}
	if err := s.FavoriteRepo.Create(fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *UserService) RemoveFavorite(userID, favoriteID uint) error {
	return s.FavoriteRepo.Delete(userID, favoriteID)
}
