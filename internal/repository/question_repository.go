package repository

import (
	"github.com/quangdng/talentgate/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByFormID(formID uint) ([]model.Question, error)
	DeleteByFormID(formID uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("form_id = ?", formID).Order("question_order ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DeleteByFormID(formID uint) error {
	return r.db.Where("form_id = ?", formID).Delete(&model.Question{}).Error
}
