package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Sspung/AIMatchMaker/internal/model"
)

func makeTool(id uint, name, category, pricing string, rating int) model.AiTool {
	tool := model.AiTool{
		Name:     name,
		Company:  name,
		Category: category,
		Pricing:  pricing,
		Rating:   rating,
		URL:      "https://example.com",
	}
	tool.ID = id
	return tool
}

func TestBulkRankingStrategyScore(t *testing.T) {
	strategy := BulkRankingStrategy{}

	tests := []struct {
		name    string
		tool    model.AiTool
		answers model.AnswerMap
		want    int
	}{
		{
			name:    "no answers returns clamped rating",
			tool:    makeTool(1, "t", "텍스트", model.PricingFree, 80),
			answers: model.AnswerMap{},
			want:    80,
		},
		{
			name:    "purpose category set match adds 25",
			tool:    makeTool(1, "t", "텍스트", model.PricingPaid, 60),
			answers: model.AnswerMap{"q1": "work"},
			want:    85,
		},
		{
			name:    "purpose miss adds nothing",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 60),
			answers: model.AnswerMap{"q1": "work"},
			want:    60,
		},
		{
			name:    "task exact category match adds 40 then clamps",
			tool:    makeTool(1, "t", "텍스트", model.PricingPaid, 60),
			answers: model.AnswerMap{"q2": "work_text"},
			want:    95,
		},
		{
			name:    "free budget with free pricing adds 15",
			tool:    makeTool(1, "t", "건강", model.PricingFree, 70),
			answers: model.AnswerMap{"q4": "free"},
			want:    85,
		},
		{
			name:    "free budget with paid pricing adds nothing",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 70),
			answers: model.AnswerMap{"q4": "free"},
			want:    70,
		},
		{
			name:    "freemium budget accepts free tools",
			tool:    makeTool(1, "t", "건강", model.PricingFree, 70),
			answers: model.AnswerMap{"q4": "freemium"},
			want:    82,
		},
		{
			name:    "paid budget rejects enterprise only",
			tool:    makeTool(1, "t", "건강", model.PricingEnterprise, 70),
			answers: model.AnswerMap{"q4": "paid"},
			want:    70,
		},
		{
			name:    "beginner bonus needs rating 85",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 85),
			answers: model.AnswerMap{"q5": "beginner"},
			want:    95,
		},
		{
			name:    "beginner bonus withheld below 85",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 84),
			answers: model.AnswerMap{"q5": "beginner"},
			want:    84,
		},
		{
			name:    "expert bonus needs rating 70",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 70),
			answers: model.AnswerMap{"q5": "expert"},
			want:    78,
		},
		{
			name:    "low rating clamps up to 50",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 30),
			answers: model.AnswerMap{},
			want:    50,
		},
		{
			name: "stacked bonuses clamp down to 95",
			tool: makeTool(1, "t", "텍스트", model.PricingFree, 90),
			answers: model.AnswerMap{
				"q1": "work", "q2": "work_text", "q4": "free", "q5": "beginner",
			},
			want: 95,
		},
		{
			name:    "field and priority slots are ignored by ranking",
			tool:    makeTool(1, "t", "마케팅", model.PricingPaid, 60),
			answers: model.AnswerMap{"q3": "marketing", "q6": "accuracy"},
			want:    60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strategy.Score(&tt.tool, tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTransparencyScoreStrategy(t *testing.T) {
	strategy := TransparencyScoreStrategy{}

	tests := []struct {
		name    string
		tool    model.AiTool
		answers model.AnswerMap
		want    int
	}{
		{
			name:    "no answers yields zero",
			tool:    makeTool(1, "t", "텍스트", model.PricingFree, 90),
			answers: model.AnswerMap{},
			want:    0,
		},
		{
			name:    "single matching purpose normalizes to 100",
			tool:    makeTool(1, "t", "텍스트", model.PricingFree, 90),
			answers: model.AnswerMap{"q1": "creative"},
			want:    100,
		},
		{
			name:    "text tool gets fallback credit on purpose miss",
			tool:    makeTool(1, "t", "텍스트", model.PricingFree, 90),
			answers: model.AnswerMap{"q1": "personal"},
			want:    40, // 10/25
		},
		{
			name:    "full match across all six slots",
			tool:    makeTool(1, "t", "텍스트", model.PricingFree, 90),
			answers: model.AnswerMap{"q1": "work", "q2": "work_text", "q3": "general", "q4": "free", "q5": "beginner", "q6": "accuracy"},
			want:    95, // (25+25+15+15+10+5)/100
		},
		{
			name:    "marketing category misses work purpose in transparency table",
			tool:    makeTool(1, "t", "마케팅", model.PricingFree, 90),
			answers: model.AnswerMap{"q1": "work"},
			want:    0,
		},
		{
			name:    "field slot exact category match",
			tool:    makeTool(1, "t", "마케팅", model.PricingFree, 90),
			answers: model.AnswerMap{"q3": "marketing"},
			want:    100, // 20/20
		},
		{
			name:    "versatile categories get partial field credit",
			tool:    makeTool(1, "t", "생산성", model.PricingFree, 90),
			answers: model.AnswerMap{"q3": "travel"},
			want:    40, // 8/20
		},
		{
			name:    "freemium budget gives partial credit to paid tools",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 90),
			answers: model.AnswerMap{"q4": "freemium"},
			want:    20, // 3/15
		},
		{
			name:    "intermediate credit below threshold",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 74),
			answers: model.AnswerMap{"q5": "intermediate"},
			want:    70, // 7/10
		},
		{
			name:    "integration priority is flat",
			tool:    makeTool(1, "t", "건강", model.PricingPaid, 60),
			answers: model.AnswerMap{"q6": "integration"},
			want:    80, // 4/5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strategy.Score(&tt.tool, tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreTools(t *testing.T) {
	answers := model.AnswerMap{"q1": "work"}

	t.Run("sorts descending and keeps catalog order for ties", func(t *testing.T) {
		tools := []model.AiTool{
			makeTool(1, "low", "건강", model.PricingPaid, 60),
			makeTool(2, "high", "텍스트", model.PricingPaid, 60), // 60+25=85
			makeTool(3, "tie-a", "건강", model.PricingPaid, 70),
			makeTool(4, "tie-b", "여행", model.PricingPaid, 70),
		}

		scored, err := ScoreTools(tools, answers)
		if err != nil {
			t.Fatalf("ScoreTools() error = %v", err)
		}

		wantOrder := []uint{2, 3, 4, 1}
		for i, want := range wantOrder {
			if scored[i].ID != want {
				t.Errorf("position %d: got tool %d, want %d", i, scored[i].ID, want)
			}
		}
	})

	t.Run("truncates to ten results", func(t *testing.T) {
		var tools []model.AiTool
		for i := 1; i <= 14; i++ {
			tools = append(tools, makeTool(uint(i), fmt.Sprintf("t%d", i), "건강", model.PricingPaid, 50+i))
		}

		scored, err := ScoreTools(tools, answers)
		if err != nil {
			t.Fatalf("ScoreTools() error = %v", err)
		}
		if len(scored) != 10 {
			t.Errorf("len = %d, want 10", len(scored))
		}
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		scored, err := ScoreTools(nil, answers)
		if err != nil {
			t.Fatalf("ScoreTools() error = %v", err)
		}
		if len(scored) != 0 {
			t.Errorf("len = %d, want 0", len(scored))
		}
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		tools := []model.AiTool{makeTool(1, "bad", "건강", model.PricingPaid, 101)}
		if _, err := ScoreTools(tools, answers); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("rejects unknown pricing", func(t *testing.T) {
		tools := []model.AiTool{makeTool(1, "bad", "건강", "subscription", 80)}
		if _, err := ScoreTools(tools, answers); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("all scores stay within display bounds", func(t *testing.T) {
		tools := []model.AiTool{
			makeTool(1, "min", "건강", model.PricingPaid, 0),
			makeTool(2, "max", "텍스트", model.PricingFree, 100),
		}
		full := model.AnswerMap{"q1": "work", "q2": "work_text", "q4": "free", "q5": "beginner"}

		scored, err := ScoreTools(tools, full)
		if err != nil {
			t.Fatalf("ScoreTools() error = %v", err)
		}
		for _, s := range scored {
			if s.MatchPercentage < 50 || s.MatchPercentage > 95 {
				t.Errorf("tool %d: match %d outside [50,95]", s.ID, s.MatchPercentage)
			}
		}
	})
}

func makeBundle(id uint, name, category string) model.AiBundle {
	b := model.AiBundle{
		Name:        name,
		Description: name,
		Category:    category,
	}
	b.ID = id
	return b
}

func TestMatchBundles(t *testing.T) {
	bundles := []model.AiBundle{
		makeBundle(1, "video", "영상 제작"),
		makeBundle(2, "content", "콘텐츠 제작"),
		makeBundle(3, "data", "데이터 분석"),
		makeBundle(4, "marketing", "마케팅"),
		makeBundle(5, "design", "디자인"),
		makeBundle(6, "travel", "여행"),
	}

	tests := []struct {
		name    string
		answers model.AnswerMap
		want    []uint
	}{
		{
			name:    "creative purpose matches video and design",
			answers: model.AnswerMap{"q1": "creative"},
			want:    []uint{1, 5},
		},
		{
			name:    "work purpose matches marketing",
			answers: model.AnswerMap{"q1": "work"},
			want:    []uint{4},
		},
		{
			name:    "task predicate matches travel bundle",
			answers: model.AnswerMap{"q1": "personal", "q2": "personal_travel"},
			want:    []uint{6},
		},
		{
			name:    "either predicate suffices",
			answers: model.AnswerMap{"q1": "creative", "q2": "work_marketing"},
			want:    []uint{1, 4, 5},
		},
		{
			name:    "no predicates hit yields empty set",
			answers: model.AnswerMap{"q1": "learning"},
			want:    []uint{},
		},
		{
			name:    "no answers yields empty set",
			answers: model.AnswerMap{},
			want:    []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := MatchBundles(bundles, tt.answers)
			if err != nil {
				t.Fatalf("MatchBundles() error = %v", err)
			}
			got := make([]uint, 0, len(matched))
			for _, b := range matched {
				got = append(got, b.ID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("MatchBundles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MatchBundles() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestMatchBundlesCap(t *testing.T) {
	var bundles []model.AiBundle
	for i := 1; i <= 8; i++ {
		bundles = append(bundles, makeBundle(uint(i), fmt.Sprintf("b%d", i), "마케팅"))
	}

	matched, err := MatchBundles(bundles, model.AnswerMap{"q1": "work"})
	if err != nil {
		t.Fatalf("MatchBundles() error = %v", err)
	}
	if len(matched) != 5 {
		t.Errorf("len = %d, want 5", len(matched))
	}
	for i, b := range matched {
		if b.ID != uint(i+1) {
			t.Errorf("position %d: got bundle %d, catalog order not preserved", i, b.ID)
		}
	}
}

func TestMatchBundlesValidation(t *testing.T) {
	bundles := []model.AiBundle{makeBundle(1, "bad", "")}
	if _, err := MatchBundles(bundles, model.AnswerMap{"q1": "work"}); err == nil {
		t.Error("expected validation error for missing category")
	}
}

func TestBudgetBonus(t *testing.T) {
	tests := []struct {
		answer  string
		pricing string
		want    int
	}{
		{"free", "free", 15},
		{"free", "freemium", 0},
		{"freemium", "free", 12},
		{"freemium", "freemium", 12},
		{"freemium", "paid", 0},
		{"paid", "free", 8},
		{"paid", "paid", 8},
		{"paid", "enterprise", 0},
		{"enterprise", "enterprise", 0},
		{"", "free", 0},
	}

	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.pricing, func(t *testing.T) {
			if got := budgetBonus(tt.answer, tt.pricing); got != tt.want {
				t.Errorf("budgetBonus(%q, %q) = %d, want %d", tt.answer, tt.pricing, got, tt.want)
			}
		})
	}
}

func TestExperienceBonus(t *testing.T) {
	tests := []struct {
		answer string
		rating int
		want   int
	}{
		{"beginner", 85, 10},
		{"beginner", 84, 0},
		{"expert", 70, 8},
		{"expert", 69, 0},
		{"intermediate", 100, 0},
		{"advanced", 100, 0},
		{"", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if got := experienceBonus(tt.answer, tt.rating); got != tt.want {
				t.Errorf("experienceBonus(%q, %d) = %d, want %d", tt.answer, tt.rating, got, tt.want)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{-10, 50},
		{0, 50},
		{49, 50},
		{50, 50},
		{72, 72},
		{95, 95},
		{96, 95},
		{140, 95},
	}

	for _, tt := range tests {
		if got := clampScore(tt.raw); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestTaskCategoryTargetsExistInPurposeSets(t *testing.T) {
	// 每个细分任务的目标类别都应出现在对应目的的类别集合里，
	// 否则 q2 加分会指向 q1 永远选不到的类别。
	for task, target := range taskCategory {
		purpose := task[:strings.Index(task, "_")]
		set, ok := purposeCategories[purpose]
		if !ok {
			t.Errorf("task %q: no purpose set for %q", task, purpose)
			continue
		}
		if !containsString(set, target) {
			t.Errorf("task %q: target %q not in purpose set for %q", task, target, purpose)
		}
	}
}
