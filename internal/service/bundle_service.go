package service

import (
	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
)

type BundleService struct {
	BundleRepo *repository.BundleRepository
	ToolRepo   *repository.ToolRepository
}

func NewBundleService(bundleRepo *repository.BundleRepository, toolRepo *repository.ToolRepository) *BundleService {
	return &BundleService{BundleRepo: bundleRepo, ToolRepo: toolRepo}
}

func (s *BundleService) ListBundles() ([]model.AiBundle, error) {
	return s.BundleRepo.ListAll()
}

func (s *BundleService) GetBundle(id uint) (*model.AiBundle, error) {
	return s.BundleRepo.FindByID(id)
}

// BundleTools 解析套餐的成员工具：类别一致的工具加上成员表里点名的工具
func (s *BundleService) BundleTools(bundleID uint) ([]model.AiTool, error) {
	bundle, err := s.BundleRepo.FindByID(bundleID)
	if err != nil {
		return nil, err
	}

	tools, err := s.ToolRepo.ListAll()
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool, len(bundle.Tools))
	for _, bt := range bundle.Tools {
		members[bt.Name] = true
	}

	var result []model.AiTool
	for _, t := range tools {
		if t.Category == bundle.Category || members[t.Name] {
			result = append(result, t)
		}
	}
	return result, nil
}
