package model

// swagger:model UsageStat
type UsageStat struct {
	BaseModel
	AiToolID          uint   `gorm:"index" json:"aiToolId"`
	TotalUsers        int    `gorm:"not null" json:"totalUsers"`
	DailyActiveUsers  int    `gorm:"not null" json:"dailyActiveUsers"`
	AvgSessionTime    int    `gorm:"not null" json:"avgSessionTime"` // 分钟
	SatisfactionScore int    `gorm:"not null" json:"satisfactionScore"` // 1-5 分 ×10 存储
	MonthlyGrowth     int    `gorm:"not null" json:"monthlyGrowth"` // 百分比 ×100 存储
	Category          string `gorm:"size:50;not null" json:"category"`
}

func (UsageStat) TableName() string {
	return "usage_stats"
}

type CategoryShare struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// AggregateStats 分析看板的汇总数据
type AggregateStats struct {
	TotalUsers           int             `json:"totalUsers"`
	DailyActiveUsers     int             `json:"dailyActiveUsers"`
	AvgSessionTime       int             `json:"avgSessionTime"`
	SatisfactionScore    float64         `json:"satisfactionScore"`
	CategoryDistribution []CategoryShare `json:"categoryDistribution"`
}

type CategoryRanking struct {
	Category string   `json:"category"`
	Tools    []AiTool `json:"tools"`
}
