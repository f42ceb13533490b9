package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
)

const (
	maxToolResults   = 10
	maxBundleResults = 5

	// 展示分数的上下限：不出现低于 50% 的"匹配"，也不出现虚假的 100%
	minMatchPercentage = 50
	maxMatchPercentage = 95
)

// RecommendService 把完整答案集合换算成排序后的工具推荐和套餐推荐
type RecommendService struct {
	ToolRepo     *repository.ToolRepository
	BundleRepo   *repository.BundleRepository
	QuestionRepo *repository.QuizQuestionRepository
}

func NewRecommendService(
	toolRepo *repository.ToolRepository,
	bundleRepo *repository.BundleRepository,
	questionRepo *repository.QuizQuestionRepository,
) *RecommendService {
	return &RecommendService{
		ToolRepo:     toolRepo,
		BundleRepo:   bundleRepo,
		QuestionRepo: questionRepo,
	}
}

// RecommendationResult 的 packages 字段名沿用目录域的叫法，含义就是匹配到的套餐
type RecommendationResult struct {
	Tools    []model.ScoredTool `json:"tools"`
	Packages []model.AiBundle   `json:"packages"`
}

// ScoringStrategy 单工具打分策略
type ScoringStrategy interface {
	Score(tool *model.AiTool, answers model.AnswerMap) int
}

// BulkRankingStrategy 全目录排序用：rating 加各槽位奖励，夹在 [50,95]。
// q2 的 +40 与 q1 的 +25 同时命中时原始分经常超出 95 被截断，q2 的
// 额外权重因此多数情况下不可见；这是沿用既有展示行为，调权重需产品确认。
type BulkRankingStrategy struct{}

func (BulkRankingStrategy) Score(tool *model.AiTool, answers model.AnswerMap) int {
	bonus := 0

	if purpose, ok := answers[SlotPurpose]; ok {
		if containsString(purposeCategories[purpose], tool.Category) {
			bonus += purposeBonus
		}
	}
	if task, ok := answers[SlotTask]; ok {
		if target, known := taskCategory[task]; known && target == tool.Category {
			bonus += taskBonus
		}
	}
	if budget, ok := answers[SlotBudget]; ok {
		bonus += budgetBonus(budget, tool.Pricing)
	}
	if exp, ok := answers[SlotExperience]; ok {
		bonus += experienceBonus(exp, tool.Rating)
	}

	return clampScore(tool.Rating + bonus)
}

// TransparencyScoreStrategy 单工具详情页用：六个槽位按 25/25/20/15/10/5
// 归一化成百分比。与 BulkRankingStrategy 对同一输入给出的数字不一致是
// 已知且有意保留的差异，两边调用方不同，不做合并。
type TransparencyScoreStrategy struct{}

func (TransparencyScoreStrategy) Score(tool *model.AiTool, answers model.AnswerMap) int {
	score := 0
	maxScore := 0

	if purpose, ok := answers[SlotPurpose]; ok {
		maxScore += 25
		if containsString(transparencyPurposeCategories[purpose], tool.Category) {
			score += 25
		} else if tool.Category == "텍스트" {
			score += 10 // 文本类工具通用性强，给保底分
		}
	}

	if task, ok := answers[SlotTask]; ok {
		maxScore += 25
		if target, known := taskCategory[task]; known && target == tool.Category {
			score += 25
		} else if tool.Category == "텍스트" && strings.Contains(task, "text") {
			score += 15
		}
	}

	if field, ok := answers[SlotField]; ok {
		maxScore += 20
		target := fieldCategory[field]
		switch {
		case target != "" && tool.Category == target:
			score += 20
		case field == "general":
			score += 15
		case tool.Category == "텍스트" || tool.Category == "생산성":
			score += 8
		}
	}

	if budget, ok := answers[SlotBudget]; ok {
		maxScore += 15
		switch budget {
		case "free":
			if tool.Pricing == "free" {
				score += 15
			}
		case "freemium":
			if tool.Pricing == "free" || tool.Pricing == "freemium" {
				score += 15
			} else {
				score += 3
			}
		case "paid":
			if tool.Pricing != "enterprise" {
				score += 15
			} else {
				score += 8
			}
		case "enterprise":
			score += 15
		}
	}

	if exp, ok := answers[SlotExperience]; ok {
		maxScore += 10
		switch exp {
		case "beginner":
			if tool.Rating >= 85 {
				score += 10
			} else {
				score += 5
			}
		case "intermediate":
			if tool.Rating >= 75 {
				score += 10
			} else {
				score += 7
			}
		case "advanced":
			if tool.Rating >= 70 {
				score += 10
			} else {
				score += 8
			}
		case "expert":
			score += 10
		}
	}

	if priority, ok := answers[SlotPriority]; ok {
		maxScore += 5
		switch priority {
		case "accuracy":
			if tool.Rating >= 85 {
				score += 5
			} else {
				score += 2
			}
		case "speed":
			if tool.Rating >= 80 {
				score += 5
			} else {
				score += 3
			}
		case "ease":
			if tool.Rating >= 75 {
				score += 5
			} else {
				score += 3
			}
		case "customization":
			if tool.Rating >= 70 {
				score += 5
			} else {
				score += 2
			}
		case "integration":
			score += 4
		}
	}

	if maxScore == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// ScoreTools 为目录中每个工具计算匹配度并按匹配度降序返回前 10 个。
// 相同匹配度维持目录原始顺序。纯函数，不修改输入。
func ScoreTools(tools []model.AiTool, answers model.AnswerMap) ([]model.ScoredTool, error) {
	strategy := BulkRankingStrategy{}

	scored := make([]model.ScoredTool, 0, len(tools))
	for i := range tools {
		if err := validateTool(&tools[i]); err != nil {
			return nil, err
		}
		scored = append(scored, model.ScoredTool{
			AiTool:          tools[i],
			MatchPercentage: strategy.Score(&tools[i], answers),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	if len(scored) > maxToolResults {
		scored = scored[:maxToolResults]
	}
	return scored, nil
}

// MatchBundles 按 q1/q2 的谓词表筛选套餐，任一谓词命中即入选，
// 保持目录顺序，最多返回 5 个。没有命中是正常结果，返回空集。
func MatchBundles(bundles []model.AiBundle, answers model.AnswerMap) ([]model.AiBundle, error) {
	matched := make([]model.AiBundle, 0, maxBundleResults)
	for i := range bundles {
		if err := validateBundle(&bundles[i]); err != nil {
			return nil, err
		}
		if bundleMatches(&bundles[i], answers) {
			matched = append(matched, bundles[i])
			if len(matched) == maxBundleResults {
				break
			}
		}
	}
	return matched, nil
}

func bundleMatches(bundle *model.AiBundle, answers model.AnswerMap) bool {
	if purpose, ok := answers[SlotPurpose]; ok {
		if containsString(bundlePurposeCategories[purpose], bundle.Category) {
			return true
		}
	}
	if task, ok := answers[SlotTask]; ok {
		if target, known := bundleTaskCategory[task]; known && target == bundle.Category {
			return true
		}
	}
	return false
}

// Recommend 校验答案后对整个目录打分并筛选套餐
func (s *RecommendService) Recommend(answers model.AnswerMap) (*RecommendationResult, error) {
	questions, err := s.QuestionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if err := ValidateAnswers(questions, answers); err != nil {
		return nil, err
	}

	tools, err := s.ToolRepo.ListAll()
	if err != nil {
		return nil, err
	}
	bundles, err := s.BundleRepo.ListAll()
	if err != nil {
		return nil, err
	}

	scored, err := ScoreTools(tools, answers)
	if err != nil {
		return nil, err
	}
	matched, err := MatchBundles(bundles, answers)
	if err != nil {
		return nil, err
	}

	return &RecommendationResult{Tools: scored, Packages: matched}, nil
}

// MatchForTool 用透明度策略计算单个工具的匹配度，供详情页解释匹配原因
func (s *RecommendService) MatchForTool(toolID uint, answers model.AnswerMap) (int, error) {
	tool, err := s.ToolRepo.FindByID(toolID)
	if err != nil {
		return 0, err
	}
	if err := validateTool(tool); err != nil {
		return 0, err
	}
	return TransparencyScoreStrategy{}.Score(tool, answers), nil
}

func clampScore(raw int) int {
	if raw < minMatchPercentage {
		return minMatchPercentage
	}
	if raw > maxMatchPercentage {
		return maxMatchPercentage
	}
	return raw
}

func validateTool(tool *model.AiTool) error {
	if tool.Rating < 0 || tool.Rating > 100 {
		return fmt.Errorf("tool %d (%s): rating %d out of range [0,100]", tool.ID, tool.Name, tool.Rating)
	}
	if tool.Category == "" {
		return fmt.Errorf("tool %d (%s): missing category", tool.ID, tool.Name)
	}
	switch tool.Pricing {
	case model.PricingFree, model.PricingFreemium, model.PricingPaid, model.PricingEnterprise:
		return nil
	default:
		return fmt.Errorf("tool %d (%s): unknown pricing %q", tool.ID, tool.Name, tool.Pricing)
	}
}

func validateBundle(bundle *model.AiBundle) error {
	if bundle.Category == "" {
		return fmt.Errorf("bundle %d (%s): missing category", bundle.ID, bundle.Name)
	}
	return nil
}
