package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type ToolRepository struct {
	DB *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{DB: db}
}

func (r *ToolRepository) Create(tool *model.AiTool) error {
	return r.DB.Create(tool).Error
}

func (r *ToolRepository) FindByID(id uint) (*model.AiTool, error) {
	var t model.AiTool
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *ToolRepository) FindByName(name string) (*model.AiTool, error) {
	var t model.AiTool
	err := r.DB.Where("name = ?", name).First(&t).Error
	return &t, err
}

func (r *ToolRepository) ListAll() ([]model.AiTool, error) {
	var tools []model.AiTool
	err := r.DB.Order("id asc").Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) ListByCategory(category string) ([]model.AiTool, error) {
	var tools []model.AiTool
	err := r.DB.Where("category = ?", category).Order("id asc").Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) Search(query string) ([]model.AiTool, error) {
	var tools []model.AiTool
	pattern := "%" + query + "%"
	err := r.DB.
		Where("name LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("id asc").
		Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) Update(tool *model.AiTool) error {
	return r.DB.Save(tool).Error
}

func (r *ToolRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AiTool{}, id).Error
}

// Upsert 按名称或 URL 去重，存在则更新评分与用户数，不存在则新建
func (r *ToolRepository) Upsert(tool *model.AiTool) (created bool, err error) {
	var existing model.AiTool
	err = r.DB.Where("name = ? OR url = ?", tool.Name, tool.URL).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return true, r.DB.Create(tool).Error
	}
	if err != nil {
		return false, err
	}

	existing.Rating = tool.Rating
	existing.MonthlyUsers = tool.MonthlyUsers
	existing.Pricing = tool.Pricing
	existing.Description = tool.Description
	return false, r.DB.Save(&existing).Error
}

func (r *ToolRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.AiTool{}).Count(&count).Error
	return count, err
}
