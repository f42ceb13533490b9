package service

import (
	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"gorm.io/gorm"
)

// PackageService 用户自建工具组合
type PackageService struct {
	PackageRepo *repository.CustomPackageRepository
}

func NewPackageService(packageRepo *repository.CustomPackageRepository) *PackageService {
	return &PackageService{PackageRepo: packageRepo}
}

type CustomPackageRequest struct {
	Name          string             `json:"name" binding:"required"`
	Description   string             `json:"description"`
	Tools         []model.BundleTool `json:"tools" binding:"required,min=1"`
	EstimatedCost string             `json:"estimatedCost"`
	IsPublic      bool               `json:"isPublic"`
}

func (s *PackageService) ListForUser(userID uint) ([]model.CustomPackage, error) {
	return s.PackageRepo.ListByUser(userID)
}

func (s *PackageService) ListPublic() ([]model.CustomPackage, error) {
	return s.PackageRepo.ListPublic()
}

func (s *PackageService) Create(userID uint, req CustomPackageRequest) (*model.CustomPackage, error) {
	pkg := &model.CustomPackage{
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		Tools:         req.Tools,
		EstimatedCost: req.EstimatedCost,
		IsPublic:      req.IsPublic,
	}
	if err := s.PackageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) Get(userID uint, id string) (*model.CustomPackage, error) {
	pkg, err := s.PackageRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	if pkg.UserID != userID && !pkg.IsPublic {
		return nil, util.ErrPermissionDenied
	}
	return pkg, nil
}

func (s *PackageService) Update(userID uint, id string, req CustomPackageRequest) (*model.CustomPackage, error) {
	pkg, err := s.PackageRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	if pkg.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Tools = req.Tools
	pkg.EstimatedCost = req.EstimatedCost
	pkg.IsPublic = req.IsPublic
	if err := s.PackageRepo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) Delete(userID uint, id string) error {
	pkg, err := s.PackageRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrPackageNotFound
	}
	if err != nil {
		return err
	}
	if pkg.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.PackageRepo.Delete(id)
}
