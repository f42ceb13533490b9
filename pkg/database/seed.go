package database

import (
	"log"

	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

// seedDefaults 在空表时写入默认目录数据，已有数据时不做任何事
func seedDefaults(db *gorm.DB) error {
	if err := seedQuizQuestions(db); err != nil {
		return err
	}
	if err := seedTools(db); err != nil {
		return err
	}
	if err := seedBundles(db); err != nil {
		return err
	}
	return seedUsageStats(db)
}

func seedQuizQuestions(db *gorm.DB) error {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return nil
	}

	questions := []model.QuizQuestion{
		{
			Question:   "어떤 목적으로 AI를 활용하고 싶으신가요?",
			QuestionEn: "What purpose do you want to use AI for?",
			Options: model.QuestionOptionList{
				{Value: "work", Label: "업무/비즈니스", LabelEn: "Work/Business", Description: "업무 효율성, 프로젝트 관리, 고객 대응 등", DescriptionEn: "Work efficiency, project management, customer service, etc."},
				{Value: "creative", Label: "창작 활동", LabelEn: "Creative Work", Description: "콘텐츠 제작, 예술, 디자인, 음악 등", DescriptionEn: "Content creation, art, design, music, etc."},
				{Value: "learning", Label: "학습/교육", LabelEn: "Learning/Education", Description: "공부, 연구, 기술 습득, 언어 학습 등", DescriptionEn: "Study, research, skill acquisition, language learning, etc."},
				{Value: "personal", Label: "일상생활", LabelEn: "Daily Life", Description: "개인 관리, 건강, 여행 계획, 취미 등", DescriptionEn: "Personal management, health, travel planning, hobbies, etc."},
				{Value: "finance", Label: "재정 관리", LabelEn: "Financial Management", Description: "투자, 예산 관리, 경제 분석 등", DescriptionEn: "Investment, budget management, economic analysis, etc."},
			},
			Order: 1,
		},
		{
			Question:   "구체적으로 어떤 업무에 도움이 필요하신가요?",
			QuestionEn: "What specific work tasks do you need help with?",
			Options: model.QuestionOptionList{
				{Value: "work_text", Label: "문서 작성 및 커뮤니케이션", LabelEn: "Document writing & communication", Description: "보고서, 이메일, 제안서, 회의록 작성", DescriptionEn: "Reports, emails, proposals, meeting minutes"},
				{Value: "work_analysis", Label: "데이터 분석 및 인사이트", LabelEn: "Data analysis & insights", Description: "비즈니스 분석, 시장 조사, 통계 처리", DescriptionEn: "Business analysis, market research, statistics"},
				{Value: "work_automation", Label: "업무 자동화 및 효율성", LabelEn: "Work automation & efficiency", Description: "반복 작업 자동화, 워크플로우 최적화", DescriptionEn: "Automating repetitive tasks, workflow optimization"},
				{Value: "work_coding", Label: "개발 및 프로그래밍", LabelEn: "Development & programming", Description: "코드 작성, 디버깅, 시스템 개발", DescriptionEn: "Code writing, debugging, system development"},
				{Value: "work_marketing", Label: "마케팅 및 고객 대응", LabelEn: "Marketing & customer service", Description: "광고 문구, SNS 콘텐츠, 고객 서비스", DescriptionEn: "Ad copy, social media content, customer service"},
			},
			Order:        2,
			ParentOption: "work",
		},
		{
			Question:   "어떤 종류의 창작을 하고 싶으신가요?",
			QuestionEn: "What type of creative work do you want to do?",
			Options: model.QuestionOptionList{
				{Value: "creative_visual", Label: "시각적 콘텐츠", LabelEn: "Visual content", Description: "이미지, 일러스트, 로고, 포스터 제작", DescriptionEn: "Images, illustrations, logos, poster creation"},
				{Value: "creative_video", Label: "영상 및 애니메이션", LabelEn: "Video & animation", Description: "영상 편집, 애니메이션, 모션 그래픽", DescriptionEn: "Video editing, animation, motion graphics"},
				{Value: "creative_music", Label: "음악 및 오디오", LabelEn: "Music & audio", Description: "작곡, 사운드 디자인, 팟캐스트 제작", DescriptionEn: "Composition, sound design, podcast creation"},
				{Value: "creative_writing", Label: "글쓰기 및 스토리텔링", LabelEn: "Writing & storytelling", Description: "소설, 시나리오, 블로그, 카피라이팅", DescriptionEn: "Novels, scripts, blogs, copywriting"},
				{Value: "creative_design", Label: "디자인 및 아트", LabelEn: "Design & art", Description: "UI/UX 디자인, 아트워크, 브랜딩", DescriptionEn: "UI/UX design, artwork, branding"},
			},
			Order:        2,
			ParentOption: "creative",
		},
		{
			Question:   "어떤 분야의 학습을 원하시나요?",
			QuestionEn: "What field do you want to learn about?",
			Options: model.QuestionOptionList{
				{Value: "learning_language", Label: "언어 학습", LabelEn: "Language learning", Description: "외국어, 번역, 언어 교환, 발음 연습", DescriptionEn: "Foreign languages, translation, language exchange, pronunciation"},
				{Value: "learning_tech", Label: "기술 및 프로그래밍", LabelEn: "Technology & programming", Description: "코딩, 소프트웨어 개발, IT 기술", DescriptionEn: "Coding, software development, IT skills"},
				{Value: "learning_research", Label: "연구 및 조사", LabelEn: "Research & investigation", Description: "논문 작성, 자료 수집, 문헌 검토", DescriptionEn: "Paper writing, data collection, literature review"},
				{Value: "learning_skill", Label: "새로운 기술 습득", LabelEn: "New skill acquisition", Description: "취미, 전문 기술, 자격증 준비", DescriptionEn: "Hobbies, professional skills, certification prep"},
				{Value: "learning_academic", Label: "학업 지원", LabelEn: "Academic support", Description: "숙제, 시험 준비, 과제 도움", DescriptionEn: "Homework, exam prep, assignment help"},
			},
			Order:        2,
			ParentOption: "learning",
		},
		{
			Question:   "일상생활에서 어떤 도움이 필요하신가요?",
			QuestionEn: "What kind of daily life assistance do you need?",
			Options: model.QuestionOptionList{
				{Value: "personal_health", Label: "건강 및 웰니스", LabelEn: "Health & wellness", Description: "운동 계획, 식단 관리, 건강 추적", DescriptionEn: "Exercise planning, diet management, health tracking"},
				{Value: "personal_travel", Label: "여행 및 계획", LabelEn: "Travel & planning", Description: "여행 계획, 숙박 예약, 맛집 추천", DescriptionEn: "Trip planning, accommodation booking, restaurant recommendations"},
				{Value: "personal_entertainment", Label: "엔터테인먼트", LabelEn: "Entertainment", Description: "게임, 영화 추천, 취미 활동", DescriptionEn: "Games, movie recommendations, hobby activities"},
				{Value: "personal_productivity", Label: "개인 생산성", LabelEn: "Personal productivity", Description: "일정 관리, 할 일 정리, 목표 설정", DescriptionEn: "Schedule management, to-do organization, goal setting"},
				{Value: "personal_home", Label: "홈 관리", LabelEn: "Home management", Description: "요리, 청소, 집안 정리, 인테리어", DescriptionEn: "Cooking, cleaning, home organization, interior design"},
			},
			Order:        2,
			ParentOption: "personal",
		},
		{
			Question:   "재정 관리에서 어떤 부분에 집중하고 싶으신가요?",
			QuestionEn: "What aspect of financial management do you want to focus on?",
			Options: model.QuestionOptionList{
				{Value: "finance_investment", Label: "투자 및 자산 관리", LabelEn: "Investment & asset management", Description: "주식, 부동산, 포트폴리오 분석", DescriptionEn: "Stocks, real estate, portfolio analysis"},
				{Value: "finance_budgeting", Label: "예산 관리 및 가계부", LabelEn: "Budgeting & expense tracking", Description: "지출 분석, 저축 계획, 가계부 관리", DescriptionEn: "Expense analysis, savings planning, household budgeting"},
				{Value: "finance_business", Label: "비즈니스 재무", LabelEn: "Business finance", Description: "회계, 세무, 비즈니스 분석", DescriptionEn: "Accounting, tax planning, business analysis"},
				{Value: "finance_crypto", Label: "암호화폐 및 디파이", LabelEn: "Cryptocurrency & DeFi", Description: "암호화폐 분석, 블록체인, 디파이", DescriptionEn: "Crypto analysis, blockchain, DeFi"},
				{Value: "finance_planning", Label: "재정 계획", LabelEn: "Financial planning", Description: "은퇴 계획, 보험, 재정 목표 설정", DescriptionEn: "Retirement planning, insurance, financial goal setting"},
			},
			Order:        2,
			ParentOption: "finance",
		},
		{
			Question:   "어떤 분야의 AI가 필요하신가요?",
			QuestionEn: "What field of AI do you need?",
			Options: model.QuestionOptionList{
				{Value: "marketing", Label: "마케팅/광고", LabelEn: "Marketing/Advertising", Description: "SNS 콘텐츠, 광고 문구, 브랜딩 등", DescriptionEn: "Social media content, ad copy, branding, etc."},
				{Value: "productivity", Label: "생산성 향상", LabelEn: "Productivity", Description: "일정 관리, 업무 자동화, 노트 정리 등", DescriptionEn: "Schedule management, work automation, note organization, etc."},
				{Value: "health", Label: "건강/웰니스", LabelEn: "Health/Wellness", Description: "운동 계획, 식단 관리, 건강 추적 등", DescriptionEn: "Exercise planning, diet management, health tracking, etc."},
				{Value: "travel", Label: "여행/계획", LabelEn: "Travel/Planning", Description: "여행 계획, 숙박 검색, 맛집 추천 등", DescriptionEn: "Travel planning, accommodation search, restaurant recommendations, etc."},
				{Value: "education", Label: "교육/학습", LabelEn: "Education/Learning", Description: "언어 학습, 온라인 강의, 시험 준비 등", DescriptionEn: "Language learning, online courses, exam preparation, etc."},
				{Value: "entertainment", Label: "엔터테인먼트", LabelEn: "Entertainment", Description: "게임, 영화 추천, 소설 창작 등", DescriptionEn: "Games, movie recommendations, novel writing, etc."},
				{Value: "realestate", Label: "부동산", LabelEn: "Real Estate", Description: "부동산 검색, 시세 분석, 투자 조언 등", DescriptionEn: "Property search, market analysis, investment advice, etc."},
				{Value: "general", Label: "범용적 사용", LabelEn: "General use", Description: "다양한 분야에서 광범위하게 사용", DescriptionEn: "Wide range of applications across various fields"},
			},
			Order: 3,
		},
		{
			Question:   "예산은 얼마나 고려하시나요?",
			QuestionEn: "How much do you consider budget?",
			Options: model.QuestionOptionList{
				{Value: "free", Label: "무료만 사용", LabelEn: "Free only", Description: "완전 무료 도구만 찾고 있어요", DescriptionEn: "Looking for completely free tools only"},
				{Value: "freemium", Label: "일부 기능은 유료여도 괜찮아요", LabelEn: "Some paid features are okay", Description: "기본 기능은 무료, 고급 기능은 유료", DescriptionEn: "Basic features free, advanced features paid"},
				{Value: "paid", Label: "필요하면 유료 도구도 사용", LabelEn: "Will use paid tools if necessary", Description: "품질 좋은 도구라면 비용 지불 의향", DescriptionEn: "Willing to pay for quality tools"},
				{Value: "enterprise", Label: "기업용 고급 도구", LabelEn: "Enterprise-grade tools", Description: "최고급 기능과 지원이 필요해요", DescriptionEn: "Need premium features and support"},
			},
			Order: 4,
		},
		{
			Question:   "AI 도구 사용 경험은 어느 정도인가요?",
			QuestionEn: "How much experience do you have using AI tools?",
			Options: model.QuestionOptionList{
				{Value: "beginner", Label: "초보자", LabelEn: "Beginner", Description: "AI 도구를 처음 사용해봐요", DescriptionEn: "First time using AI tools"},
				{Value: "intermediate", Label: "중급자", LabelEn: "Intermediate", Description: "몇 가지 도구를 사용해본 적이 있어요", DescriptionEn: "Have used a few tools before"},
				{Value: "advanced", Label: "고급자", LabelEn: "Advanced", Description: "다양한 AI 도구를 자주 사용해요", DescriptionEn: "Frequently use various AI tools"},
				{Value: "expert", Label: "전문가", LabelEn: "Expert", Description: "AI 도구의 고급 기능까지 활용해요", DescriptionEn: "Utilize advanced features of AI tools"},
			},
			Order: 5,
		},
		{
			Question:   "AI 도구에서 가장 중요하게 생각하는 요소는?",
			QuestionEn: "What is the most important factor in AI tools for you?",
			Options: model.QuestionOptionList{
				{Value: "accuracy", Label: "정확성", LabelEn: "Accuracy", Description: "결과의 정확도와 신뢰성", DescriptionEn: "Accuracy and reliability of results"},
				{Value: "speed", Label: "속도", LabelEn: "Speed", Description: "빠른 처리와 응답 시간", DescriptionEn: "Fast processing and response time"},
				{Value: "ease", Label: "사용 편의성", LabelEn: "Ease of Use", Description: "직관적이고 쉬운 인터페이스", DescriptionEn: "Intuitive and easy interface"},
				{Value: "customization", Label: "커스터마이징", LabelEn: "Customization", Description: "세부 설정과 개인화 옵션", DescriptionEn: "Detailed settings and personalization options"},
				{Value: "integration", Label: "통합성", LabelEn: "Integration", Description: "다른 도구들과의 연동", DescriptionEn: "Integration with other tools"},
			},
			Order: 6,
		},
	}

	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d quiz questions", len(questions))
	return nil
}

func seedTools(db *gorm.DB) error {
	var count int64
	db.Model(&model.AiTool{}).Count(&count)
	if count > 0 {
		return nil
	}

	tools := []model.AiTool{
		{
			Name: "ChatGPT", Company: "OpenAI",
			Description:   "대화형 AI로 질문 답변, 글쓰기, 코딩 등 다양한 작업 수행",
			DescriptionEn: "Conversational AI for Q&A, writing, coding and various tasks",
			Category:      "텍스트", Pricing: model.PricingFreemium, MonthlyUsers: "180M+", Rating: 95,
			Pros:     model.StringList{"자연스러운 대화", "다양한 작업 지원", "높은 정확도"},
			Cons:     model.StringList{"실시간 정보 제한", "이미지 생성 불가", "사용량 제한"},
			Features: model.StringList{"텍스트 생성", "코드 작성", "번역", "요약"},
			URL:      "https://chat.openai.com", IconCategory: "comment-alt",
		},
		{
			Name: "Claude", Company: "Anthropic",
			Description:   "안전하고 도움이 되는 AI 어시스턴트, 긴 문서 분석에 특화",
			DescriptionEn: "Safe and helpful AI assistant, specialized in long document analysis",
			Category:      "텍스트", Pricing: model.PricingFree, MonthlyUsers: "25M+", Rating: 99,
			Pros:     model.StringList{"긴 문맥 처리", "높은 안전성", "정확한 분석"},
			Cons:     model.StringList{"제한된 기능", "느린 응답", "지역 제한"},
			Features: model.StringList{"문서 분석", "코드 리뷰", "창작 지원"},
			URL:      "https://claude.ai", IconCategory: "comment-alt",
		},
		{
			Name: "Gemini", Company: "Google",
			Description:   "Google의 최신 대화형 AI, 멀티모달 기능 지원",
			DescriptionEn: "Google's latest conversational AI with multimodal capabilities",
			Category:      "텍스트", Pricing: model.PricingFreemium, MonthlyUsers: "45M+", Rating: 93,
			Pros:     model.StringList{"실시간 검색", "이미지 분석", "빠른 응답"},
			Cons:     model.StringList{"일부 지역 제한", "창의성 부족", "편향성"},
			Features: model.StringList{"대화형 AI", "이미지 분석", "실시간 검색"},
			URL:      "https://gemini.google.com", IconCategory: "comment-alt",
		},
		{
			Name: "Perplexity", Company: "Perplexity AI",
			Description:   "실시간 검색 기반 AI 답변 서비스",
			DescriptionEn: "Real-time search-based AI answering service",
			Category:      "텍스트", Pricing: model.PricingFreemium, MonthlyUsers: "10M+", Rating: 87,
			Pros:     model.StringList{"정확한 출처", "실시간 정보", "깔끔한 UI"},
			Cons:     model.StringList{"제한된 무료", "느린 응답", "복잡한 질문 한계"},
			Features: model.StringList{"검색 기반 답변", "출처 제공", "요약"},
			URL:      "https://perplexity.ai", IconCategory: "comment-alt",
		},
		{
			Name: "DeepL", Company: "DeepL",
			Description: "AI 기반 고품질 번역 서비스",
			Category:    "텍스트", Pricing: model.PricingFreemium, MonthlyUsers: "20M+", Rating: 94,
			Pros:     model.StringList{"정확한 번역", "자연스러운 문체", "빠른 속도"},
			Cons:     model.StringList{"제한된 언어", "유료 기능", "API 비용"},
			Features: model.StringList{"번역", "문서 번역", "용어집"},
			URL:      "https://deepl.com", IconCategory: "comment-alt",
		},
		{
			Name: "Midjourney", Company: "Midjourney Inc.",
			Description: "텍스트 프롬프트로 고품질 아트워크와 이미지 생성",
			Category:    "이미지", Pricing: model.PricingPaid, MonthlyUsers: "15M+", Rating: 98,
			Pros:     model.StringList{"뛰어난 이미지 품질", "예술적 스타일", "활발한 커뮤니티"},
			Cons:     model.StringList{"디스코드 필수", "높은 가격", "학습 곡선"},
			Features: model.StringList{"이미지 생성", "스타일 조정", "고해상도 출력"},
			URL:      "https://midjourney.com", IconCategory: "image",
		},
		{
			Name: "Canva AI", Company: "Canva",
			Description: "AI 디자인 어시스턴트",
			Category:    "디자인", Pricing: model.PricingFreemium, MonthlyUsers: "8M+", Rating: 88,
			Pros:     model.StringList{"사용 편의성", "템플릿 다양", "무료 플랜"},
			Cons:     model.StringList{"세밀한 제어 부족", "프리미엄 요소", "제한된 출력"},
			Features: model.StringList{"디자인 생성", "이미지 편집", "템플릿"},
			URL:      "https://canva.com", IconCategory: "design",
		},
		{
			Name: "Runway ML", Company: "Runway",
			Description: "AI 기반 영상 편집 및 생성 도구",
			Category:    "영상", Pricing: model.PricingFreemium, MonthlyUsers: "8M+", Rating: 85,
			Pros:     model.StringList{"다양한 영상 도구", "사용자 친화적", "빠른 처리"},
			Cons:     model.StringList{"높은 구독료", "제한된 무료", "인터넷 필수"},
			Features: model.StringList{"영상 생성", "배경 제거", "모션 트래킹"},
			URL:      "https://runwayml.com", IconCategory: "video",
		},
		{
			Name: "ElevenLabs", Company: "ElevenLabs",
			Description: "자연스러운 AI 음성 생성 및 음성 복제",
			Category:    "음성", Pricing: model.PricingFreemium, MonthlyUsers: "5M+", Rating: 92,
			Pros:     model.StringList{"자연스러운 음성", "다양한 언어", "음성 복제"},
			Cons:     model.StringList{"제한된 무료", "긴 처리 시간", "윤리적 우려"},
			Features: model.StringList{"음성 생성", "음성 복제", "다국어 지원"},
			URL:      "https://elevenlabs.io", IconCategory: "microphone",
		},
		{
			Name: "GitHub Copilot", Company: "GitHub",
			Description: "AI 기반 코드 자동완성 및 생성 도구",
			Category:    "코딩", Pricing: model.PricingPaid, MonthlyUsers: "1M+", Rating: 88,
			Pros:     model.StringList{"빠른 코딩", "다양한 언어", "IDE 통합"},
			Cons:     model.StringList{"구독 필수", "의존성 증가", "보안 우려"},
			Features: model.StringList{"코드 완성", "버그 수정", "테스트 생성"},
			URL:      "https://github.com/features/copilot", IconCategory: "code",
		},
		{
			Name: "Notion AI", Company: "Notion",
			Description:   "스마트 노트 및 문서 작성",
			DescriptionEn: "Smart note-taking and document writing",
			Category:      "생산성", Pricing: model.PricingFreemium, MonthlyUsers: "4M+", Rating: 89,
			Pros:     model.StringList{"올인원 워크스페이스", "AI 글쓰기", "협업"},
			Cons:     model.StringList{"복잡한 UI", "학습 곡선", "느린 로딩"},
			Features: model.StringList{"노트 작성", "프로젝트 관리", "협업", "템플릿"},
			URL:      "https://notion.so", IconCategory: "productivity",
		},
		{
			Name: "HubSpot AI", Company: "HubSpot",
			Description:   "마케팅 자동화 플랫폼",
			DescriptionEn: "Marketing automation platform",
			Category:      "마케팅", Pricing: model.PricingFreemium, MonthlyUsers: "3M+", Rating: 87,
			Pros:     model.StringList{"올인원 플랫폼", "CRM 통합", "무료 시작"},
			Cons:     model.StringList{"복잡한 설정", "높은 가격", "학습 곡선"},
			Features: model.StringList{"마케팅 자동화", "CRM", "이메일", "분석"},
			URL:      "https://hubspot.com", IconCategory: "marketing",
		},
		{
			Name: "Power BI", Company: "Microsoft",
			Description: "비즈니스 인텔리전스 도구",
			Category:    "데이터분석", Pricing: model.PricingPaid, MonthlyUsers: "2M+", Rating: 85,
			Pros:     model.StringList{"강력한 시각화", "Office 통합", "대규모 데이터"},
			Cons:     model.StringList{"학습 곡선", "Windows 중심", "라이선스 비용"},
			Features: model.StringList{"대시보드", "리포트", "데이터 모델링"},
			URL:      "https://powerbi.microsoft.com", IconCategory: "analytics",
		},
		{
			Name: "H2O.ai", Company: "H2O.ai",
			Description: "오픈소스 AI 플랫폼",
			Category:    "데이터분석", Pricing: model.PricingFreemium, MonthlyUsers: "800K+", Rating: 87,
			Pros:     model.StringList{"오픈소스", "자동 ML", "확장성"},
			Cons:     model.StringList{"전문 지식 필요", "복잡한 설정", "문서 부족"},
			Features: model.StringList{"자동 머신러닝", "모델 해석", "배포"},
			URL:      "https://h2o.ai", IconCategory: "analytics",
		},
		{
			Name: "Synthesia", Company: "Synthesia",
			Description: "AI 아바타 영상 제작 플랫폼",
			Category:    "영상", Pricing: model.PricingPaid, MonthlyUsers: "2M+", Rating: 84,
			Pros:     model.StringList{"AI 아바타", "다국어 지원", "쉬운 제작"},
			Cons:     model.StringList{"높은 가격", "부자연스러움", "커스텀 제한"},
			Features: model.StringList{"아바타 영상", "음성 합성", "템플릿"},
			URL:      "https://synthesia.io", IconCategory: "video",
		},
		{
			Name: "Grammarly", Company: "Grammarly",
			Description: "AI 기반 영문법 검사 및 글쓰기 개선 도구",
			Category:    "텍스트", Pricing: model.PricingFreemium, MonthlyUsers: "30M+", Rating: 91,
			Pros:     model.StringList{"정확한 문법 검사", "스타일 개선", "플러그인 지원"},
			Cons:     model.StringList{"영어 전용", "비싼 프리미엄", "과도한 제안"},
			Features: model.StringList{"문법 검사", "스타일 개선", "표절 검사"},
			URL:      "https://grammarly.com", IconCategory: "comment-alt",
		},
	}

	for i := range tools {
		if err := db.Create(&tools[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d ai tools", len(tools))
	return nil
}

func seedBundles(db *gorm.DB) error {
	var count int64
	db.Model(&model.AiBundle{}).Count(&count)
	if count > 0 {
		return nil
	}

	bundles := []model.AiBundle{
		{
			Name: "영상 제작 패키지", NameEn: "Video Production Package",
			Description: "완전한 영상 제작 워크플로우", DescriptionEn: "Complete video production workflow",
			Category: "영상 제작",
			Tools: model.BundleToolList{
				{ID: 8, Name: "Runway ML", Role: "영상 생성", Pricing: model.PricingFreemium},
				{ID: 9, Name: "ElevenLabs", Role: "음성 생성", Pricing: model.PricingFreemium},
				{ID: 15, Name: "Synthesia", Role: "아바타 영상", Pricing: model.PricingPaid},
			},
			EstimatedCost: "$45-80", Color: "red", Icon: "video",
		},
		{
			Name: "콘텐츠 제작 패키지", NameEn: "Content Creation Package",
			Description: "블로그부터 SNS까지 완벽 커버", DescriptionEn: "Perfect coverage from blogs to SNS",
			Category: "콘텐츠 제작",
			Tools: model.BundleToolList{
				{ID: 1, Name: "ChatGPT", Role: "텍스트 생성", Pricing: model.PricingFreemium},
				{ID: 6, Name: "Midjourney", Role: "이미지 생성", Pricing: model.PricingPaid},
				{ID: 7, Name: "Canva AI", Role: "디자인", Pricing: model.PricingFreemium},
			},
			EstimatedCost: "$30-50", Color: "blue", Icon: "pen-fancy",
		},
		{
			Name: "데이터 분석 패키지", NameEn: "Data Analysis Package",
			Description: "데이터에서 인사이트까지", DescriptionEn: "From data to insights",
			Category: "데이터 분석",
			Tools: model.BundleToolList{
				{ID: 2, Name: "Claude", Role: "문서 분석", Pricing: model.PricingFree},
				{ID: 13, Name: "Power BI", Role: "시각화", Pricing: model.PricingPaid},
				{ID: 14, Name: "H2O.ai", Role: "머신러닝", Pricing: model.PricingFreemium},
			},
			EstimatedCost: "$20-40", Color: "green", Icon: "chart-bar",
		},
		{
			Name: "마케팅 자동화 패키지", NameEn: "Marketing Automation Package",
			Description: "SNS부터 이메일까지 마케팅 자동화", DescriptionEn: "Marketing automation from SNS to email",
			Category: "마케팅",
			Tools: model.BundleToolList{
				{ID: 1, Name: "ChatGPT", Role: "콘텐츠 기획", Pricing: model.PricingFreemium},
				{ID: 7, Name: "Canva AI", Role: "디자인", Pricing: model.PricingFreemium},
				{ID: 12, Name: "HubSpot AI", Role: "캠페인 관리", Pricing: model.PricingFreemium},
			},
			EstimatedCost: "$40-70", Color: "orange", Icon: "megaphone",
		},
		{
			Name: "디자인 스튜디오 패키지", NameEn: "Design Studio Package",
			Description: "로고부터 웹디자인까지", DescriptionEn: "From logo to web design",
			Category: "디자인",
			Tools: model.BundleToolList{
				{ID: 6, Name: "Midjourney", Role: "이미지 생성", Pricing: model.PricingPaid},
				{ID: 7, Name: "Canva AI", Role: "디자인 편집", Pricing: model.PricingFreemium},
			},
			EstimatedCost: "$35-60", Color: "pink", Icon: "palette",
		},
		{
			Name: "개발자 패키지", NameEn: "Developer Package",
			Description: "코딩부터 문서화까지 개발 워크플로우", DescriptionEn: "Development workflow from coding to documentation",
			Category: "개발",
			Tools: model.BundleToolList{
				{ID: 10, Name: "GitHub Copilot", Role: "코드 생성", Pricing: model.PricingPaid},
				{ID: 2, Name: "Claude", Role: "코드 리뷰", Pricing: model.PricingFree},
				{ID: 11, Name: "Notion AI", Role: "문서화", Pricing: model.PricingFreemium},
			},
			EstimatedCost: "$25-45", Color: "indigo", Icon: "code",
		},
	}

	for i := range bundles {
		if err := db.Create(&bundles[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d ai bundles", len(bundles))
	return nil
}

func seedUsageStats(db *gorm.DB) error {
	var count int64
	db.Model(&model.UsageStat{}).Count(&count)
	if count > 0 {
		return nil
	}

	stats := []model.UsageStat{
		{AiToolID: 1, TotalUsers: 180000000, DailyActiveUsers: 486000, AvgSessionTime: 24, SatisfactionScore: 47, MonthlyGrowth: 520, Category: "텍스트"},
		{AiToolID: 6, TotalUsers: 15000000, DailyActiveUsers: 125000, AvgSessionTime: 18, SatisfactionScore: 49, MonthlyGrowth: 810, Category: "이미지"},
		{AiToolID: 2, TotalUsers: 25000000, DailyActiveUsers: 220000, AvgSessionTime: 32, SatisfactionScore: 48, MonthlyGrowth: 1280, Category: "텍스트"},
	}

	for i := range stats {
		if err := db.Create(&stats[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
