package repository

import (
	"github.com/quangdng/talentgate/internal/model"
	"gorm.io/gorm"
)

type ApplicantRepository interface {
	Create(applicant *model.Applicant) error
	FindByID(id uint) (*model.Applicant, error)
	FindByIDs(ids []uint) ([]model.Applicant, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(applicant *model.Applicant) error {
	return r.db.Create(applicant).Error
}

func (r *applicantRepository) FindByID(id uint) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.First(&applicant, id).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) FindByIDs(ids []uint) ([]model.Applicant, error) {
	var applicants []model.Applicant
	if len(ids) == 0 {
		return applicants, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&applicants).Error; err != nil {
		return nil, err
	}
	return applicants, nil
}
