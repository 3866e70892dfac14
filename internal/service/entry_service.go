package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
)

// EntryService persists one applicant's answer set for a form. Answers are
// written as N sequential inserts with no transaction; a failure part-way
// through surfaces as an error and leaves the earlier rows in place.
type EntryService interface {
	SubmitEntry(formID uint, req dto.SubmitEntryRequest) (*dto.EntryDetailResponse, error)
}

type entryService struct {
	formRepo      repository.FormRepository
	applicantRepo repository.ApplicantRepository
	answerRepo    repository.AnswerRepository
	reviewSvc     ReviewService
}

func NewEntryService(
	formRepo repository.FormRepository,
	applicantRepo repository.ApplicantRepository,
	answerRepo repository.AnswerRepository,
	reviewSvc ReviewService,
) EntryService {
	return &entryService{
		formRepo:      formRepo,
		applicantRepo: applicantRepo,
		answerRepo:    answerRepo,
		reviewSvc:     reviewSvc,
	}
}

func (s *entryService) SubmitEntry(formID uint, req dto.SubmitEntryRequest) (*dto.EntryDetailResponse, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	if _, err := s.applicantRepo.FindByID(req.ApplicantID); err != nil {
		return nil, fmt.Errorf("applicant not found with ID %d: %w", req.ApplicantID, err)
	}

	questionByID := make(map[uint]model.Question, len(form.Questions))
	for _, q := range form.Questions {
		questionByID[q.ID] = q
	}

	// Validate the whole set before the first insert so a malformed payload
	// causes zero writes.
	for _, a := range req.Answers {
		question, ok := questionByID[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: question %d, form %d", ErrQuestionNotInForm, a.QuestionID, formID)
		}
		if a.AnswerType != question.QuestionType {
			return nil, fmt.Errorf("%w: question %d expects %q, got %q",
				ErrAnswerTypeMismatch, a.QuestionID, question.QuestionType, a.AnswerType)
		}
		if err := validateAnswerPayload(a); err != nil {
			return nil, err
		}
	}

	for _, a := range req.Answers {
		answer := model.Answer{
			ApplicantID:  req.ApplicantID,
			QuestionID:   a.QuestionID,
			AnswerType:   a.AnswerType,
			ResponseText: a.ResponseText,
			VideoID:      a.VideoID,
		}
		if err := s.answerRepo.Create(&answer); err != nil {
			log.Error().Err(err).Uint("formID", formID).Uint("applicantID", req.ApplicantID).
				Uint("questionID", a.QuestionID).Msg("Failed to insert answer")
			return nil, fmt.Errorf("database error saving answer for question %d: %w", a.QuestionID, err)
		}
	}

	return s.reviewSvc.GetEntry(formID, req.ApplicantID)
}

func validateAnswerPayload(a dto.AnswerSubmissionDTO) error {
	hasText := a.ResponseText != nil && *a.ResponseText != ""
	hasVideo := a.VideoID != nil && *a.VideoID != ""

	switch a.AnswerType {
	case model.QuestionTypeText:
		if !hasText || hasVideo {
			return fmt.Errorf("%w: question %d", ErrAnswerPayloadInvalid, a.QuestionID)
		}
	case model.QuestionTypeVideo:
		if !hasVideo || hasText {
			return fmt.Errorf("%w: question %d", ErrAnswerPayloadInvalid, a.QuestionID)
		}
	}
	return nil
}
