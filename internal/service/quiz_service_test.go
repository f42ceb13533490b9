package service

import (
	"testing"

	"github.com/Sspung/AIMatchMaker/internal/model"
)

// testQuestions 构造与默认题库形状一致的题目集合：
// 一个根问题、按不同目的分支的条件问题、三个共同的后续问题。
func testQuestions() []model.QuizQuestion {
	q := func(id uint, order int, parent string, values ...string) model.QuizQuestion {
		opts := make(model.QuestionOptionList, 0, len(values))
		for _, v := range values {
			opts = append(opts, model.QuestionOption{Value: v, Label: v})
		}
		question := model.QuizQuestion{
			Question:     "question",
			Options:      opts,
			Order:        order,
			ParentOption: parent,
		}
		question.ID = id
		return question
	}

	return []model.QuizQuestion{
		q(1, 1, "", "work", "creative", "learning", "personal", "finance"),
		q(2, 2, "work", "work_text", "work_analysis", "work_coding", "work_marketing"),
		q(3, 2, "creative", "creative_visual", "creative_video", "creative_music"),
		q(4, 2, "learning", "learning_language", "learning_tech"),
		q(5, 3, "", "marketing", "productivity", "general"),
		q(6, 4, "", "free", "freemium", "paid", "enterprise"),
		q(7, 5, "", "beginner", "intermediate", "advanced", "expert"),
	}
}

func ids(seq []model.QuizQuestion) []uint {
	out := make([]uint, 0, len(seq))
	for _, q := range seq {
		out = append(out, q.ID)
	}
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestActiveSequence(t *testing.T) {
	questions := testQuestions()

	tests := []struct {
		name    string
		answers model.AnswerMap
		want    []uint
	}{
		{
			name:    "no answers yields root plus unconditional tail",
			answers: model.AnswerMap{},
			want:    []uint{1, 5, 6, 7},
		},
		{
			name:    "work branch inserts work conditional second",
			answers: model.AnswerMap{"q1": "work"},
			want:    []uint{1, 2, 5, 6, 7},
		},
		{
			name:    "creative branch excludes other conditionals",
			answers: model.AnswerMap{"q1": "creative"},
			want:    []uint{1, 3, 5, 6, 7},
		},
		{
			name:    "root answer without conditional keeps base sequence",
			answers: model.AnswerMap{"q1": "finance"},
			want:    []uint{1, 5, 6, 7},
		},
		{
			name:    "later answers do not change the sequence shape",
			answers: model.AnswerMap{"q1": "learning", "q2": "learning_tech", "q3": "general"},
			want:    []uint{1, 4, 5, 6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ActiveSequence(questions, tt.answers))
			if !equalIDs(got, tt.want) {
				t.Errorf("ActiveSequence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActiveSequenceDeterministic(t *testing.T) {
	questions := testQuestions()
	answers := model.AnswerMap{"q1": "work", "q2": "work_text"}

	first := ids(ActiveSequence(questions, answers))
	for i := 0; i < 10; i++ {
		if got := ids(ActiveSequence(questions, answers)); !equalIDs(got, first) {
			t.Fatalf("sequence changed between runs: %v vs %v", got, first)
		}
	}
}

func TestActiveSequenceEmptyCatalog(t *testing.T) {
	if got := ActiveSequence(nil, model.AnswerMap{"q1": "work"}); len(got) != 0 {
		t.Errorf("expected empty sequence, got %d questions", len(got))
	}
}

func TestRootQuestionTieBreaksOnID(t *testing.T) {
	a := model.QuizQuestion{Order: 1}
	a.ID = 9
	b := model.QuizQuestion{Order: 1}
	b.ID = 4

	root, ok := rootQuestion([]model.QuizQuestion{a, b})
	if !ok {
		t.Fatal("expected a root question")
	}
	if root.ID != 4 {
		t.Errorf("root ID = %d, want 4", root.ID)
	}
}

func TestNextQuestionID(t *testing.T) {
	seq := ActiveSequence(testQuestions(), model.AnswerMap{"q1": "work"})

	tests := []struct {
		name       string
		currentID  uint
		wantNext   uint
		wantSubmit bool
	}{
		{"root advances to conditional", 1, 2, false},
		{"conditional advances to field question", 2, 5, false},
		{"last question signals submit", 7, 0, true},
		{"stale id stays put", 99, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, submit := NextQuestionID(seq, tt.currentID)
			if next != tt.wantNext || submit != tt.wantSubmit {
				t.Errorf("NextQuestionID(%d) = (%d, %v), want (%d, %v)",
					tt.currentID, next, submit, tt.wantNext, tt.wantSubmit)
			}
		})
	}
}

// 换分支后旧条件题的 id 不在新序列里，导航必须按失效处理。
func TestNextQuestionIDAfterBranchSwitch(t *testing.T) {
	questions := testQuestions()
	seq := ActiveSequence(questions, model.AnswerMap{"q1": "creative"})

	next, submit := NextQuestionID(seq, 2)
	if next != 0 || submit {
		t.Errorf("stale conditional id: got (%d, %v), want (0, false)", next, submit)
	}
}

func TestPreviousQuestionID(t *testing.T) {
	seq := ActiveSequence(testQuestions(), model.AnswerMap{"q1": "work"})

	tests := []struct {
		name      string
		currentID uint
		wantPrev  uint
		wantOK    bool
	}{
		{"first question has no previous", 1, 0, false},
		{"conditional goes back to root", 2, 1, true},
		{"tail goes back through conditional", 5, 2, true},
		{"stale id fails closed", 42, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, ok := PreviousQuestionID(seq, tt.currentID)
			if prev != tt.wantPrev || ok != tt.wantOK {
				t.Errorf("PreviousQuestionID(%d) = (%d, %v), want (%d, %v)",
					tt.currentID, prev, ok, tt.wantPrev, tt.wantOK)
			}
		})
	}
}

func TestSlotKey(t *testing.T) {
	for i, want := range []string{"q1", "q2", "q3", "q4", "q5", "q6"} {
		if got := SlotKey(i); got != want {
			t.Errorf("SlotKey(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestValidateAnswers(t *testing.T) {
	questions := testQuestions()

	tests := []struct {
		name    string
		answers model.AnswerMap
		wantErr bool
	}{
		{
			name:    "complete valid answers",
			answers: model.AnswerMap{"q1": "work", "q2": "work_text", "q3": "general", "q4": "free", "q5": "beginner"},
			wantErr: false,
		},
		{
			name:    "value not among question options",
			answers: model.AnswerMap{"q1": "work", "q2": "creative_visual"},
			wantErr: true,
		},
		{
			name:    "unknown slot is ignored",
			answers: model.AnswerMap{"q1": "work", "q9": "whatever"},
			wantErr: false,
		},
		{
			name:    "empty value is treated as unanswered",
			answers: model.AnswerMap{"q1": "work", "q3": ""},
			wantErr: false,
		},
		{
			name:    "no answers at all",
			answers: model.AnswerMap{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers(questions, tt.answers)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswers() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
