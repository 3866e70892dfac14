package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
)

// FormService is the staff authoring surface. Creating a form and adding its
// questions are independent inserts with no enclosing transaction; a partial
// failure leaves a partial question set.
type FormService interface {
	CreateForm(req dto.CreateFormRequest) (*dto.FormResponse, error)
	AddQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteForm(id uint) error
}

type formService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
}

func NewFormService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository) FormService {
	return &formService{formRepo: formRepo, questionRepo: questionRepo}
}

func (s *formService) CreateForm(req dto.CreateFormRequest) (*dto.FormResponse, error) {
	form := model.Form{
		StaffID:     req.StaffID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Str("staffID", req.StaffID).Msg("Failed to create form")
		return nil, fmt.Errorf("database error creating form: %w", err)
	}

	var resp dto.FormResponse
	if err := copier.Copy(&resp, &form); err != nil {
		return nil, fmt.Errorf("error preparing form response: %w", err)
	}
	return &resp, nil
}

func (s *formService) AddQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.formRepo.FindByID(req.FormID); err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", req.FormID, err)
	}

	existing, err := s.questionRepo.FindByFormID(req.FormID)
	if err != nil {
		return nil, fmt.Errorf("error loading questions for form %d: %w", req.FormID, err)
	}
	for _, q := range existing {
		if q.QuestionOrder == req.QuestionOrder {
			return nil, fmt.Errorf("%w: order %d", ErrDuplicateQuestionOrder, req.QuestionOrder)
		}
	}

	question := model.Question{
		FormID:        req.FormID,
		QuestionText:  req.QuestionText,
		QuestionType:  req.QuestionType,
		QuestionOrder: req.QuestionOrder,
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("formID", req.FormID).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *formService) DeleteForm(id uint) error {
	if _, err := s.formRepo.FindByID(id); err != nil {
		return fmt.Errorf("form not found with ID %d: %w", id, err)
	}

	// Questions first, then the form. Sequential deletes, same discipline as
	// the create path.
	if err := s.questionRepo.DeleteByFormID(id); err != nil {
		log.Error().Err(err).Uint("formID", id).Msg("Failed to delete form questions")
		return fmt.Errorf("database error deleting questions for form %d: %w", id, err)
	}
	if err := s.formRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("formID", id).Msg("Failed to delete form")
		return fmt.Errorf("database error deleting form %d: %w", id, err)
	}
	return nil
}
