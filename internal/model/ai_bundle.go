package model

import "database/sql/driver"

// BundleTool 套餐内的成员工具
type BundleTool struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Pricing string `json:"pricing"`
}

type BundleToolList []BundleTool

func (l BundleToolList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return marshalJSONValue([]BundleTool(l))
}

func (l *BundleToolList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// swagger:model AiBundle
type AiBundle struct {
	BaseModel
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameEn        string         `gorm:"size:255" json:"nameEn,omitempty"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	DescriptionEn string         `gorm:"type:text" json:"descriptionEn,omitempty"`
	Category      string         `gorm:"size:50;not null;index" json:"category"`
	Tools         BundleToolList `gorm:"type:json" json:"tools"`
	EstimatedCost string         `gorm:"size:100" json:"estimatedCost"`
	Color         string         `gorm:"size:30" json:"color"`
	Icon          string         `gorm:"size:50" json:"icon"`
}

func (AiBundle) TableName() string {
	return "ai_bundles"
}
