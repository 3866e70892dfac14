package repository

import (
	"github.com/quangdng/talentgate/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByIDWithQuestions(id uint) (*model.Form, error)
	FindAllWithQuestionCount() ([]FormWithQuestionCount, error)
	Delete(id uint) error
}

// FormWithQuestionCount backs the feed listing.
type FormWithQuestionCount struct {
	model.Form
	QuestionCount int
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByIDWithQuestions(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.question_order ASC")
	}).First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAllWithQuestionCount() ([]FormWithQuestionCount, error) {
	var results []FormWithQuestionCount
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count").
		Where("forms.deleted_at IS NULL").
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Delete(&model.Form{}, id).Error
}
