package model

// swagger:model CustomPackage 用户自建的工具组合
type CustomPackage struct {
	UUIDBase
	UserID        uint           `gorm:"index;not null" json:"userId"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Tools         BundleToolList `gorm:"type:json;not null" json:"tools"`
	EstimatedCost string         `gorm:"size:100" json:"estimatedCost"`
	IsPublic      bool           `gorm:"default:false" json:"isPublic"`
}

func (CustomPackage) TableName() string {
	return "custom_packages"
}
