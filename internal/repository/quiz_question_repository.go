package repository

import (
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/gorm"
)

type QuizQuestionRepository struct {
	DB *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) *QuizQuestionRepository {
	return &QuizQuestionRepository{DB: db}
}

func (r *QuizQuestionRepository) Create(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizQuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuizQuestionRepository) ListAll() ([]model.QuizQuestion, error) {
	var qs []model.QuizQuestion
	err := r.DB.Order("`order` asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *QuizQuestionRepository) Update(q *model.QuizQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuizQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.QuizQuestion{}, id).Error
}
