package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/repository"
)

// ReviewService is the staff-facing read surface over forms, questions and
// answers. No pagination, sorting or filtering happens server-side.
type ReviewService interface {
	GetFormFeed() ([]dto.FormSummary, error)
	GetForm(id uint) (*dto.FormResponse, error)
	ListEntries(formID uint) ([]dto.EntrySummary, error)
	GetEntry(formID, applicantID uint) (*dto.EntryDetailResponse, error)
}

type reviewService struct {
	formRepo      repository.FormRepository
	applicantRepo repository.ApplicantRepository
	answerRepo    repository.AnswerRepository
}

func NewReviewService(
	formRepo repository.FormRepository,
	applicantRepo repository.ApplicantRepository,
	answerRepo repository.AnswerRepository,
) ReviewService {
	return &reviewService{
		formRepo:      formRepo,
		applicantRepo: applicantRepo,
		answerRepo:    answerRepo,
	}
}

func (s *reviewService) GetFormFeed() ([]dto.FormSummary, error) {
	formsWithCount, err := s.formRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load form feed")
		return nil, fmt.Errorf("error fetching forms: %w", err)
	}

	summaries := make([]dto.FormSummary, 0, len(formsWithCount))
	for _, fwc := range formsWithCount {
		summaries = append(summaries, dto.FormSummary{
			ID:            fwc.Form.ID,
			StaffID:       fwc.Form.StaffID,
			Title:         fwc.Form.Title,
			Description:   fwc.Form.Description,
			QuestionCount: fwc.QuestionCount,
			CreatedAt:     fwc.Form.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *reviewService) GetForm(id uint) (*dto.FormResponse, error) {
	form, err := s.formRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", id, err)
	}

	var resp dto.FormResponse
	if err := copier.Copy(&resp, form); err != nil {
		return nil, fmt.Errorf("error preparing form response: %w", err)
	}
	return &resp, nil
}

func (s *reviewService) ListEntries(formID uint) ([]dto.EntrySummary, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	questionIDs := make([]uint, 0, len(form.Questions))
	for _, q := range form.Questions {
		questionIDs = append(questionIDs, q.ID)
	}

	rows, err := s.answerRepo.FindEntriesByQuestionIDs(questionIDs)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to list form entries")
		return nil, fmt.Errorf("error fetching entries for form %d: %w", formID, err)
	}

	applicantIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		applicantIDs = append(applicantIDs, row.ApplicantID)
	}
	applicants, err := s.applicantRepo.FindByIDs(applicantIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching applicants for form %d: %w", formID, err)
	}
	applicantByID := make(map[uint]int, len(applicants))
	for i, a := range applicants {
		applicantByID[a.ID] = i
	}

	summaries := make([]dto.EntrySummary, 0, len(rows))
	for _, row := range rows {
		summary := dto.EntrySummary{
			ApplicantID: row.ApplicantID,
			SubmittedAt: row.SubmittedAt,
		}
		if i, ok := applicantByID[row.ApplicantID]; ok {
			summary.FirstName = applicants[i].FirstName
			summary.LastName = applicants[i].LastName
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetEntry builds the denormalized review view: every question of the form in
// display order, each paired with the applicant's answer or the no-answer
// placeholder. A question is never omitted.
func (s *reviewService) GetEntry(formID, applicantID uint) (*dto.EntryDetailResponse, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	applicant, err := s.applicantRepo.FindByID(applicantID)
	if err != nil {
		return nil, fmt.Errorf("applicant not found with ID %d: %w", applicantID, err)
	}

	questionIDs := make([]uint, 0, len(form.Questions))
	for _, q := range form.Questions {
		questionIDs = append(questionIDs, q.ID)
	}

	answers, err := s.answerRepo.FindByApplicantAndQuestionIDs(applicantID, questionIDs)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Uint("applicantID", applicantID).Msg("Failed to load answers for entry")
		return nil, fmt.Errorf("error fetching answers: %w", err)
	}
	answerByQuestionID := make(map[uint]int, len(answers))
	for i, a := range answers {
		answerByQuestionID[a.QuestionID] = i
	}

	resp := dto.EntryDetailResponse{}
	if err := copier.Copy(&resp.Form, form); err != nil {
		return nil, fmt.Errorf("error preparing entry form data: %w", err)
	}
	if err := copier.Copy(&resp.Applicant, applicant); err != nil {
		return nil, fmt.Errorf("error preparing entry applicant data: %w", err)
	}

	resp.Answers = make([]dto.EntryAnswerDTO, 0, len(form.Questions))
	for _, q := range form.Questions {
		item := dto.EntryAnswerDTO{}
		if err := copier.Copy(&item.Question, &q); err != nil {
			return nil, fmt.Errorf("error preparing entry question data: %w", err)
		}

		if i, ok := answerByQuestionID[q.ID]; ok {
			ans := answers[i]
			item.Answered = true
			item.AnswerType = ans.AnswerType
			if ans.ResponseText != nil {
				item.ResponseText = *ans.ResponseText
			}
			item.VideoID = ans.VideoID
		} else {
			item.ResponseText = dto.NoAnswerPlaceholder
		}
		resp.Answers = append(resp.Answers, item)
	}

	return &resp, nil
}
