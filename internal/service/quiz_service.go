package service

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/repository"
)

// RootSlot 根问题固定占用的槽位键
const RootSlot = "q1"

type QuizService struct {
	QuestionRepo *repository.QuizQuestionRepository
}

func NewQuizService(questionRepo *repository.QuizQuestionRepository) *QuizService {
	return &QuizService{QuestionRepo: questionRepo}
}

func (s *QuizService) Questions() ([]model.QuizQuestion, error) {
	return s.QuestionRepo.ListAll()
}

// Sequence 根据当前答案返回本次会话应呈现的问题序列
func (s *QuizService) Sequence(answers model.AnswerMap) ([]model.QuizQuestion, error) {
	questions, err := s.QuestionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if err := ValidateAnswers(questions, answers); err != nil {
		return nil, err
	}
	return ActiveSequence(questions, answers), nil
}

// Next 返回下一题的 id。submit 为 true 表示当前已是最后一题，该提交了。
// currentID 在重算后的序列中不存在时两者都为零值，调用方原地不动。
func (s *QuizService) Next(answers model.AnswerMap, currentID uint) (nextID uint, submit bool, err error) {
	seq, err := s.Sequence(answers)
	if err != nil {
		return 0, false, err
	}
	nextID, submit = NextQuestionID(seq, currentID)
	return nextID, submit, nil
}

// Previous 返回上一题的 id，已在首题或 currentID 失效时 ok 为 false
func (s *QuizService) Previous(answers model.AnswerMap, currentID uint) (prevID uint, ok bool, err error) {
	seq, err := s.Sequence(answers)
	if err != nil {
		return 0, false, err
	}
	prevID, ok = PreviousQuestionID(seq, currentID)
	return prevID, ok, nil
}

// ActiveSequence 计算当前会话的有效问题序列：
// 根问题（无 parentOption 且 order 最小）永远排第一；若根问题已作答，
// parentOption 等于该答案的条件问题插入第二位；其余无条件问题按 order
// 升序附加。parentOption 不匹配的条件问题整体排除。
// 对固定的(题库, 答案)输入结果是确定的。
func ActiveSequence(questions []model.QuizQuestion, answers model.AnswerMap) []model.QuizQuestion {
	if len(questions) == 0 {
		return []model.QuizQuestion{}
	}

	root, ok := rootQuestion(questions)
	if !ok {
		return []model.QuizQuestion{}
	}

	seq := []model.QuizQuestion{root}

	if rootAnswer := answers[RootSlot]; rootAnswer != "" {
		if cond, found := conditionalFor(questions, rootAnswer); found {
			seq = append(seq, cond)
		}
	}

	var rest []model.QuizQuestion
	for _, q := range questions {
		if q.ParentOption == "" && q.Order > root.Order {
			rest = append(rest, q)
		}
	}
	sortByOrder(rest)

	return append(seq, rest...)
}

// NextQuestionID 在序列中查找 currentID 的后继。submit 为 true 表示已到末尾。
func NextQuestionID(seq []model.QuizQuestion, currentID uint) (nextID uint, submit bool) {
	idx := indexOf(seq, currentID)
	if idx < 0 {
		return 0, false
	}
	if idx == len(seq)-1 {
		return 0, true
	}
	return seq[idx+1].ID, false
}

// PreviousQuestionID 在序列中查找 currentID 的前驱
func PreviousQuestionID(seq []model.QuizQuestion, currentID uint) (prevID uint, ok bool) {
	idx := indexOf(seq, currentID)
	if idx <= 0 {
		return 0, false
	}
	return seq[idx-1].ID, true
}

// SlotKey 序列中第 i 题（从 0 计）对应的答案槽位键
func SlotKey(i int) string {
	return "q" + strconv.Itoa(i+1)
}

// ValidateAnswers 校验每个槽位的值确实是对应问题声明的选项之一。
// 序列之外的槽位键不参与校验，留给后续纯展示型问题使用。
func ValidateAnswers(questions []model.QuizQuestion, answers model.AnswerMap) error {
	seq := ActiveSequence(questions, answers)
	for i, q := range seq {
		slot := SlotKey(i)
		value, answered := answers[slot]
		if !answered || value == "" {
			continue
		}
		if !q.HasOption(value) {
			return fmt.Errorf("answer %q is not a declared option of question %d (slot %s)", value, q.ID, slot)
		}
	}
	return nil
}

func rootQuestion(questions []model.QuizQuestion) (model.QuizQuestion, bool) {
	var root model.QuizQuestion
	found := false
	for _, q := range questions {
		if q.ParentOption != "" {
			continue
		}
		if !found || q.Order < root.Order || (q.Order == root.Order && q.ID < root.ID) {
			root = q
			found = true
		}
	}
	return root, found
}

func conditionalFor(questions []model.QuizQuestion, rootAnswer string) (model.QuizQuestion, bool) {
	var matches []model.QuizQuestion
	for _, q := range questions {
		if q.ParentOption == rootAnswer {
			matches = append(matches, q)
		}
	}
	if len(matches) == 0 {
		return model.QuizQuestion{}, false
	}
	sortByOrder(matches)
	return matches[0], true
}

func sortByOrder(qs []model.QuizQuestion) {
	sort.SliceStable(qs, func(i, j int) bool {
		if qs[i].Order != qs[j].Order {
			return qs[i].Order < qs[j].Order
		}
		return qs[i].ID < qs[j].ID
	})
}

func indexOf(seq []model.QuizQuestion, id uint) int {
	for i, q := range seq {
		if q.ID == id {
			return i
		}
	}
	return -1
}
