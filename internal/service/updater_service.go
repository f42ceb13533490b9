package service

import (
	"math/rand"
	"sync"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
	"github.com/Sspung/AIMatchMaker/pkg/logger"

	"go.uber.org/zap"
)

// UpdaterService 周期性把候选池中的新工具补进目录。
// 与推荐引擎完全解耦：只做幂等 upsert，由调度器或管理端触发。
type UpdaterService struct {
	ToolRepo *repository.ToolRepository
	Catalog  *CatalogService

	mu        sync.Mutex
	poolIndex int
}

func NewUpdaterService(toolRepo *repository.ToolRepository, catalog *CatalogService) *UpdaterService {
	return &UpdaterService{ToolRepo: toolRepo, Catalog: catalog}
}

// newToolPool 人工筛选过的候选工具（实际环境中来自外部采集）
var newToolPool = []model.AiTool{
	{
		Name:         "Claude 3 Opus",
		Company:      "Anthropic",
		Description:  "Anthropic의 최신 대화형 AI 모델",
		Category:     "텍스트",
		Pricing:      model.PricingPaid,
		MonthlyUsers: "5M",
		Rating:       96,
		Features:     model.StringList{"대화", "분석", "창작"},
		Pros:         model.StringList{"뛰어난 추론 능력", "긴 컨텍스트 지원"},
		Cons:         model.StringList{"높은 비용", "제한된 무료 사용"},
		URL:          "https://claude.ai",
		IconCategory: "text",
	},
	{
		Name:         "Pika Labs",
		Company:      "Pika Labs",
		Description:  "텍스트에서 비디오 생성하는 AI",
		Category:     "영상",
		Pricing:      model.PricingFreemium,
		MonthlyUsers: "3M",
		Rating:       86,
		Features:     model.StringList{"비디오 생성", "애니메이션", "편집"},
		Pros:         model.StringList{"쉬운 사용법", "빠른 생성"},
		Cons:         model.StringList{"짧은 영상만 가능", "워터마크"},
		URL:          "https://pika.art",
		IconCategory: "video",
	},
	{
		Name:         "Suno AI",
		Company:      "Suno",
		Description:  "AI 음악 생성 플랫폼",
		Category:     "음악",
		Pricing:      model.PricingFreemium,
		MonthlyUsers: "2.5M",
		Rating:       90,
		Features:     model.StringList{"음악 생성", "가사 작성", "보컬 합성"},
		Pros:         model.StringList{"고품질 음악", "다양한 장르"},
		Cons:         model.StringList{"저작권 이슈", "제한된 커스터마이징"},
		URL:          "https://suno.ai",
		IconCategory: "music",
	},
	{
		Name:         "Gamma",
		Company:      "Gamma Technologies",
		Description:  "AI 프레젠테이션 제작 도구",
		Category:     "생산성",
		Pricing:      model.PricingFreemium,
		MonthlyUsers: "4M",
		Rating:       88,
		Features:     model.StringList{"프레젠테이션", "웹사이트", "문서"},
		Pros:         model.StringList{"빠른 제작", "세련된 디자인"},
		Cons:         model.StringList{"제한된 템플릿", "브랜딩 제약"},
		URL:          "https://gamma.app",
		IconCategory: "productivity",
	},
	{
		Name:         "Ideogram",
		Company:      "Ideogram",
		Description:  "텍스트가 포함된 이미지 생성 AI",
		Category:     "이미지",
		Pricing:      model.PricingFreemium,
		MonthlyUsers: "1.5M",
		Rating:       86,
		Features:     model.StringList{"텍스트 이미지", "로고 생성", "포스터"},
		Pros:         model.StringList{"정확한 텍스트", "다양한 스타일"},
		Cons:         model.StringList{"제한된 무료 사용", "느린 생성"},
		URL:          "https://ideogram.ai",
		IconCategory: "image",
	},
	{
		Name:         "Flux AI",
		Company:      "Black Forest Labs",
		Description:  "오픈소스 이미지 생성 모델",
		Category:     "이미지",
		Pricing:      model.PricingFreemium,
		MonthlyUsers: "5M",
		Rating:       92,
		Features:     model.StringList{"고해상도 이미지", "빠른 생성", "스타일 제어"},
		Pros:         model.StringList{"무료 사용", "고품질", "오픈소스"},
		Cons:         model.StringList{"복잡한 설정", "하드웨어 요구사항"},
		URL:          "https://replicate.com/black-forest-labs/flux-1.1-pro",
		IconCategory: "image",
	},
}

type UpdateReport struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// RunOnce 从池里取 1-3 个候选做 upsert。重复执行安全：已存在的只刷新
// 评分等可变字段，不产生重复记录。
func (s *UpdaterService) RunOnce() (*UpdateReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &UpdateReport{}
	batch := rand.Intn(3) + 1

	for i := 0; i < batch && s.poolIndex < len(newToolPool); i++ {
		candidate := newToolPool[s.poolIndex]
		s.poolIndex++

		created, err := s.ToolRepo.Upsert(&candidate)
		if err != nil {
			return report, err
		}
		if created {
			report.Added++
			logger.Log.Info("new ai tool added", zap.String("name", candidate.Name))
		} else {
			report.Updated++
		}
	}
	if s.poolIndex >= len(newToolPool) {
		report.Skipped = batch - report.Added - report.Updated
	}

	if report.Added > 0 || report.Updated > 0 {
		s.Catalog.invalidateCache()
	}
	return report, nil
}
