package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
	"github.com/Sspung/AIMatchMaker/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	toolListCacheKey = "catalog:tools:all"
	toolListCacheTTL = 5 * time.Minute
)

// CatalogService 工具目录的读写入口，列表读走 Redis 缓存
type CatalogService struct {
	ToolRepo *repository.ToolRepository
	Redis    *redis.Client
}

func NewCatalogService(toolRepo *repository.ToolRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{ToolRepo: toolRepo, Redis: rdb}
}

type ToolRequest struct {
	Name          string   `json:"name" binding:"required"`
	Company       string   `json:"company" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	Category      string   `json:"category" binding:"required"`
	Pricing       string   `json:"pricing" binding:"required,oneof=free freemium paid enterprise"`
	MonthlyUsers  string   `json:"monthlyUsers"`
	Rating        int      `json:"rating" binding:"min=0,max=100"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Features      []string `json:"features"`
	URL           string   `json:"url" binding:"required"`
	IconCategory  string   `json:"iconCategory"`
}

// ListTools category 为空或"전체"时返回全量；search 优先于 category
func (s *CatalogService) ListTools(category, search string) ([]model.AiTool, error) {
	if search != "" {
		return s.ToolRepo.Search(search)
	}
	if category != "" && category != "전체" {
		return s.ToolRepo.ListByCategory(category)
	}
	return s.listAllCached()
}

func (s *CatalogService) listAllCached() ([]model.AiTool, error) {
	ctx := context.Background()

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, toolListCacheKey).Result()
		if err == nil {
			var tools []model.AiTool
			if jsonErr := json.Unmarshal([]byte(val), &tools); jsonErr == nil {
				return tools, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("tool list cache read failed", zap.Error(err))
		}
	}

	tools, err := s.ToolRepo.ListAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(tools); err == nil {
			if err := s.Redis.Set(ctx, toolListCacheKey, data, toolListCacheTTL).Err(); err != nil {
				logger.Log.Warn("tool list cache write failed", zap.Error(err))
			}
		}
	}
	return tools, nil
}

func (s *CatalogService) invalidateCache() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), toolListCacheKey)
	}
}

func (s *CatalogService) GetTool(id uint) (*model.AiTool, error) {
	return s.ToolRepo.FindByID(id)
}

func (s *CatalogService) CreateTool(req ToolRequest) (*model.AiTool, error) {
	tool := s.toolFromRequest(req)
	if err := s.ToolRepo.Create(tool); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return tool, nil
}

func (s *CatalogService) UpdateTool(id uint, req ToolRequest) (*model.AiTool, error) {
	tool, err := s.ToolRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated := s.toolFromRequest(req)
	updated.ID = tool.ID
	updated.CreatedAt = tool.CreatedAt
	updated.IconURL = tool.IconURL
	if err := s.ToolRepo.Update(updated); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return updated, nil
}

func (s *CatalogService) DeleteTool(id uint) error {
	if err := s.ToolRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *CatalogService) SetToolIcon(id uint, iconURL string) (*model.AiTool, error) {
	tool, err := s.ToolRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	tool.IconURL = iconURL
	if err := s.ToolRepo.Update(tool); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return tool, nil
}

func (s *CatalogService) toolFromRequest(req ToolRequest) *model.AiTool {
	return &model.AiTool{
		Name:          req.Name,
		Company:       req.Company,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Category:      req.Category,
		Pricing:       req.Pricing,
		MonthlyUsers:  req.MonthlyUsers,
		Rating:        req.Rating,
		Pros:          req.Pros,
		Cons:          req.Cons,
		Features:      req.Features,
		URL:           req.URL,
		IconCategory:  req.IconCategory,
	}
}
