package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type UsageStatRepository struct {
	DB *gorm.DB
}

func NewUsageStatRepository(db *gorm.DB) *UsageStatRepository {
	return &UsageStatRepository{DB: db}
}

func (r *UsageStatRepository) ListAll() ([]model.UsageStat, error) {
	var stats []model.UsageStat
	err := r.DB.Order("id asc").Find(&stats).Error
	return stats, err
}

func (r *UsageStatRepository) Create(stat *model.UsageStat) error {
	return r.DB.Create(stat).Error
}

func (r *UsageStatRepository) FindByToolID(toolID uint) (*model.UsageStat, error) {
	var s model.UsageStat
	err := r.DB.Where("ai_tool_id = ?", toolID).First(&s).Error
	return &s, err
}
