package repository

import (
	"time"

	"github.com/quangdng/talentgate/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByApplicantAndQuestionIDs(applicantID uint, questionIDs []uint) ([]model.Answer, error)
	FindEntriesByQuestionIDs(questionIDs []uint) ([]EntryRow, error)
}

// EntryRow is one applicant's submission to a form, collapsed from their
// answer rows (earliest answer timestamp counts as the submission time).
type EntryRow struct {
	ApplicantID uint
	SubmittedAt time.Time
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByApplicantAndQuestionIDs(applicantID uint, questionIDs []uint) ([]model.Answer, error) {
	var answers []model.Answer
	if len(questionIDs) == 0 {
		return answers, nil
	}
	err := r.db.
		Where("applicant_id = ? AND question_id IN ?", applicantID, questionIDs).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindEntriesByQuestionIDs(questionIDs []uint) ([]EntryRow, error) {
	var rows []EntryRow
	if len(questionIDs) == 0 {
		return rows, nil
	}
	err := r.db.Model(&model.Answer{}).
		Select("applicant_id, MIN(created_at) as submitted_at").
		Where("question_id IN ?", questionIDs).
		Group("applicant_id").
		Order("submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}
