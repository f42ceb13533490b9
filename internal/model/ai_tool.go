package model

// 定价模式
const (
	PricingFree       = "free"
	PricingFreemium   = "freemium"
	PricingPaid       = "paid"
	PricingEnterprise = "enterprise"
)

// swagger:model AiTool
type AiTool struct {
	BaseModel
	Name          string     `gorm:"size:255;not null;index" json:"name"`
	Company       string     `gorm:"size:255;not null" json:"company"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	DescriptionEn string     `gorm:"type:text" json:"descriptionEn,omitempty"`
	Category      string     `gorm:"size:50;not null;index" json:"category"`
	Pricing       string     `gorm:"size:20;not null" json:"pricing"` // free/freemium/paid/enterprise
	MonthlyUsers  string     `gorm:"size:50" json:"monthlyUsers"`
	Rating        int        `gorm:"not null" json:"rating"` // 0-100
	Pros          StringList `gorm:"type:json" json:"pros"`
	Cons          StringList `gorm:"type:json" json:"cons"`
	Features      StringList `gorm:"type:json" json:"features"`
	URL           string     `gorm:"size:512;not null" json:"url"`
	IconCategory  string     `gorm:"size:50" json:"iconCategory"`
	IconURL       string     `gorm:"size:512" json:"iconUrl,omitempty"`
}

func (AiTool) TableName() string {
	return "ai_tools"
}

// ScoredTool 是带匹配度的工具，matchPercentage 固定在 [50,95] 区间
type ScoredTool struct {
	AiTool
	MatchPercentage int `json:"matchPercentage"`
}

// TrendingTool 附带增长率与排名的工具
type TrendingTool struct {
	AiTool
	Growth int `json:"growth"`
	Rank   int `json:"rank"`
}
