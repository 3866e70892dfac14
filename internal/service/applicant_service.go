package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
)

type ApplicantService interface {
	CreateApplicant(req dto.CreateApplicantRequest) (*dto.ApplicantResponse, error)
}

type applicantService struct {
	applicantRepo repository.ApplicantRepository
}

func NewApplicantService(applicantRepo repository.ApplicantRepository) ApplicantService {
	return &applicantService{applicantRepo: applicantRepo}
}

func (s *applicantService) CreateApplicant(req dto.CreateApplicantRequest) (*dto.ApplicantResponse, error) {
	applicant := model.Applicant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.applicantRepo.Create(&applicant); err != nil {
		log.Error().Err(err).Msg("Failed to insert applicant")
		return nil, fmt.Errorf("database error creating applicant: %w", err)
	}

	var resp dto.ApplicantResponse
	if err := copier.Copy(&resp, &applicant); err != nil {
		return nil, fmt.Errorf("error preparing applicant response: %w", err)
	}
	return &resp, nil
}
