package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
)

// ApplicationService handles the public intake path. Every submission creates
// a new row; duplicates are not detected.
type ApplicationService interface {
	SubmitApplication(req dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
}

func NewApplicationService(applicationRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo}
}

func (s *applicationService) SubmitApplication(req dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	application := model.Application{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.applicationRepo.Create(&application); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to insert application")
		return nil, fmt.Errorf("database error creating application: %w", err)
	}

	var resp dto.ApplicationResponse
	if err := copier.Copy(&resp, &application); err != nil {
		return nil, fmt.Errorf("error preparing application response: %w", err)
	}
	return &resp, nil
}
