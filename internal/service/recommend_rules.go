package service

// 答案槽位键。q3/q6 只参与单工具透明度评分，不参与批量排序。
const (
	SlotPurpose    = "q1"
	SlotTask       = "q2"
	SlotField      = "q3"
	SlotBudget     = "q4"
	SlotExperience = "q5"
	SlotPriority   = "q6"
)

const (
	purposeBonus = 25
	taskBonus    = 40
)

// purposeCategories 目的答案到相关工具类别集合的映射（批量排序用）
var purposeCategories = map[string][]string{
	"work":     {"텍스트", "생산성", "데이터분석", "코딩", "마케팅"},
	"creative": {"이미지", "영상", "음악", "디자인", "텍스트"},
	"learning": {"텍스트", "교육", "코딩", "데이터분석"},
	"personal": {"건강", "여행", "엔터테인먼트", "생산성"},
	"finance":  {"금융", "데이터분석", "텍스트"},
}

// taskCategory 细分任务答案到唯一目标类别的映射
var taskCategory = map[string]string{
	// 업무
	"work_text":       "텍스트",
	"work_analysis":   "데이터분석",
	"work_automation": "생산성",
	"work_coding":     "코딩",
	"work_marketing":  "마케팅",
	// 창작
	"creative_visual":  "이미지",
	"creative_video":   "영상",
	"creative_music":   "음악",
	"creative_writing": "텍스트",
	"creative_design":  "디자인",
	// 학습
	"learning_language": "텍스트",
	"learning_tech":     "코딩",
	"learning_research": "텍스트",
	"learning_skill":    "교육",
	"learning_academic": "교육",
	// 일상
	"personal_health":        "건강",
	"personal_travel":        "여행",
	"personal_entertainment": "엔터테인먼트",
	"personal_productivity":  "생산성",
	"personal_home":          "생산성",
	// 재정
	"finance_investment": "금융",
	"finance_budgeting":  "금융",
	"finance_business":   "금융",
	"finance_crypto":     "금융",
	"finance_planning":   "금융",
}

// budgetBonus 预算答案与定价模式的加分规则
func budgetBonus(answer, pricing string) int {
	switch answer {
	case "free":
		if pricing == "free" {
			return 15
		}
	case "freemium":
		if pricing == "free" || pricing == "freemium" {
			return 12
		}
	case "paid":
		if pricing != "enterprise" {
			return 8
		}
	}
	return 0
}

// experienceBonus 经验水平与评分门槛的加分规则
func experienceBonus(answer string, rating int) int {
	switch answer {
	case "beginner":
		if rating >= 85 {
			return 10
		}
	case "expert":
		if rating >= 70 {
			return 8
		}
	}
	return 0
}

// bundlePurposeCategories 目的答案命中的套餐类别集合
var bundlePurposeCategories = map[string][]string{
	"creative": {"영상 제작", "디자인", "크리에이터", "소셜미디어"},
	"work":     {"비즈니스", "마케팅", "개발자", "생산성"},
	"personal": {"건강 관리", "여행", "소셜미디어", "엔터테인먼트"},
	"finance":  {"투자", "금융", "비즈니스"},
	"learning": {"교육", "학습", "개발자"},
}

// bundleTaskCategory 细分任务答案命中的单一套餐类别
var bundleTaskCategory = map[string]string{
	"personal_health": "건강 관리",
	"personal_travel": "여행",
	"creative_video":  "영상 제작",
	"work_marketing":  "마케팅",
}

// 以下映射只被透明度评分使用，权重与集合跟批量排序刻意不同步。

// transparencyPurposeCategories 注意 work 不含 마케팅，与批量排序表不同
var transparencyPurposeCategories = map[string][]string{
	"work":     {"텍스트", "생산성", "데이터분석", "코딩"},
	"creative": {"이미지", "영상", "음악", "디자인", "텍스트"},
	"learning": {"텍스트", "교육", "코딩", "데이터분석"},
	"personal": {"건강", "여행", "엔터테인먼트", "생산성"},
	"finance":  {"금융", "데이터분석", "텍스트"},
}

// fieldCategory 使用领域答案到类别的映射，general 不指向具体类别
var fieldCategory = map[string]string{
	"marketing":     "마케팅",
	"productivity":  "생산성",
	"health":        "건강",
	"travel":        "여행",
	"education":     "교육",
	"entertainment": "엔터테인먼트",
	"realestate":    "부동산",
	"general":       "",
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
