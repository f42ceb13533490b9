package model

import "database/sql/driver"

// QuestionOption 单个选项，value 在同一题内唯一
type QuestionOption struct {
	Value         string `json:"value"`
	Label         string `json:"label"`
	LabelEn       string `json:"labelEn,omitempty"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
}

type QuestionOptionList []QuestionOption

func (l QuestionOptionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return marshalJSONValue([]QuestionOption(l))
}

func (l *QuestionOptionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	Question   string             `gorm:"type:text;not null" json:"question"`
	QuestionEn string             `gorm:"type:text" json:"questionEn,omitempty"`
	Options    QuestionOptionList `gorm:"type:json;not null" json:"options"`
	Order      int                `gorm:"column:order;not null;default:0" json:"order"`
	// ParentOption 非空时，本题只在上一题选中该值后出现
	ParentOption string `gorm:"size:50" json:"parentOption,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// HasOption 判断 value 是否是本题声明的选项之一
func (q *QuizQuestion) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// AnswerMap 槽位键("q1"、"q2"…)到所选选项值的映射
type AnswerMap map[string]string
