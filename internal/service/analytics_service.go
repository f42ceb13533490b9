package service

import (
	"math"
	"sort"
	"time"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
)

// AnalyticsService 使用统计看板。数值在存量数据上做基于时间的轻微抖动，
// 模拟实时变化，刷新间隔内保持稳定。
type AnalyticsService struct {
	StatRepo *repository.UsageStatRepository
	ToolRepo *repository.ToolRepository
}

func NewAnalyticsService(statRepo *repository.UsageStatRepository, toolRepo *repository.ToolRepository) *AnalyticsService {
	return &AnalyticsService{StatRepo: statRepo, ToolRepo: toolRepo}
}

// 类别占比每 10 秒在四组预设间轮换
var categoryDistributions = [][4]int{
	{68, 18, 8, 6},
	{70, 16, 9, 5},
	{66, 20, 8, 6},
	{69, 17, 9, 5},
}

var distributionCategories = []model.CategoryShare{
	{Category: "텍스트", Color: "blue"},
	{Category: "이미지", Color: "purple"},
	{Category: "영상", Color: "red"},
	{Category: "음성", Color: "orange"},
}

func (s *AnalyticsService) GetStats(now time.Time) (*model.AggregateStats, error) {
	stats, err := s.StatRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return &model.AggregateStats{CategoryDistribution: []model.CategoryShare{}}, nil
	}

	// 以分钟为周期的 ±5% 抖动
	variance := math.Sin(float64(now.UnixMilli())/60000) * 0.05

	baseTotal := 0
	baseDaily := 0
	sumSession := 0
	sumSatisfaction := 0
	for _, st := range stats {
		baseTotal += st.TotalUsers
		baseDaily += st.DailyActiveUsers
		sumSession += st.AvgSessionTime
		sumSatisfaction += st.SatisfactionScore
	}

	n := len(stats)
	totalUsers := int(math.Round(float64(baseTotal) * (1 + variance)))
	dailyActive := int(math.Round(float64(baseDaily) / float64(n) * (1 + variance*2)))
	avgSession := int(math.Round(float64(sumSession) / float64(n)))
	satisfaction := math.Round(float64(sumSatisfaction)/float64(n)) / 10

	offset := int(now.UnixMilli()/10000) % len(categoryDistributions)
	dist := categoryDistributions[offset]
	shares := make([]model.CategoryShare, len(distributionCategories))
	for i, c := range distributionCategories {
		shares[i] = model.CategoryShare{
			Category:   c.Category,
			Percentage: dist[i],
			Color:      c.Color,
		}
	}

	return &model.AggregateStats{
		TotalUsers:           totalUsers,
		DailyActiveUsers:     dailyActive,
		AvgSessionTime:       avgSession,
		SatisfactionScore:    satisfaction,
		CategoryDistribution: shares,
	}, nil
}

// GetCategoryRankings 按类别分组，组内评分降序
func (s *AnalyticsService) GetCategoryRankings() ([]model.CategoryRanking, error) {
	tools, err := s.ToolRepo.ListAll()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.AiTool)
	var order []string
	for _, t := range tools {
		if _, seen := grouped[t.Category]; !seen {
			order = append(order, t.Category)
		}
		grouped[t.Category] = append(grouped[t.Category], t)
	}

	rankings := make([]model.CategoryRanking, 0, len(order))
	for _, category := range order {
		group := grouped[category]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Rating > group[j].Rating
		})
		rankings = append(rankings, model.CategoryRanking{Category: category, Tools: group})
	}
	return rankings, nil
}

const maxTrendingResults = 20

// GetPopular 以评分为基础模拟增长率，返回前 20 个上升最快的工具。
// 高评分工具的基础增长更高，叠加随时间摆动的扰动项，保证增长为正。
func (s *AnalyticsService) GetPopular(now time.Time) ([]model.TrendingTool, error) {
	tools, err := s.ToolRepo.ListAll()
	if err != nil {
		return nil, err
	}

	trending := make([]model.TrendingTool, 0, len(tools))
	for _, t := range tools {
		baseGrowth := math.Max(0, float64(t.Rating-70)/2)
		randomFactor := math.Sin(float64(now.UnixMilli())/25000+float64(t.ID)) * 10
		growth := int(math.Round(baseGrowth + randomFactor + 5))
		if growth < 1 {
			growth = 1
		}
		trending = append(trending, model.TrendingTool{AiTool: t, Growth: growth})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Growth > trending[j].Growth
	})
	if len(trending) > maxTrendingResults {
		trending = trending[:maxTrendingResults]
	}
	for i := range trending {
		trending[i].Rank = i + 1
	}
	return trending, nil
}
