package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/model"
)

func seedFormWithQuestions(formRepo *fakeFormRepo) model.Form {
	form := model.Form{
		ID:      1,
		StaffID: "staff-42",
		Title:   "Engineering Cycle 2026",
		Questions: []model.Question{
			{ID: 10, FormID: 1, QuestionText: "Tell us about yourself", QuestionType: model.QuestionTypeText, QuestionOrder: 1},
			{ID: 11, FormID: 1, QuestionText: "Record a short introduction", QuestionType: model.QuestionTypeVideo, QuestionOrder: 2},
			{ID: 12, FormID: 1, QuestionText: "Why this team?", QuestionType: model.QuestionTypeText, QuestionOrder: 3},
		},
	}
	formRepo.forms[form.ID] = form
	formRepo.nextID = form.ID
	return form
}

func newEntryFixture() (*fakeFormRepo, *fakeApplicantRepo, *fakeAnswerRepo, EntryService) {
	formRepo := newFakeFormRepo()
	applicantRepo := newFakeApplicantRepo()
	answerRepo := &fakeAnswerRepo{}
	reviewSvc := NewReviewService(formRepo, applicantRepo, answerRepo)
	entrySvc := NewEntryService(formRepo, applicantRepo, answerRepo, reviewSvc)
	return formRepo, applicantRepo, answerRepo, entrySvc
}

func TestEntryService_SubmitEntry(t *testing.T) {
	formRepo, applicantRepo, answerRepo, svc := newEntryFixture()
	seedFormWithQuestions(formRepo)
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	videoID := "vid-8f2a"
	resp, err := svc.SubmitEntry(1, dto.SubmitEntryRequest{
		ApplicantID: 1,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: 10, AnswerType: model.QuestionTypeText, ResponseText: strPtr("I build backends.")},
			{QuestionID: 11, AnswerType: model.QuestionTypeVideo, VideoID: &videoID},
		},
	})

	require.NoError(t, err)
	assert.Len(t, answerRepo.answers, 2)

	// Response is the review view: all 3 questions, the unanswered one carries
	// the placeholder.
	require.Len(t, resp.Answers, 3)
	assert.True(t, resp.Answers[0].Answered)
	assert.Equal(t, "I build backends.", resp.Answers[0].ResponseText)
	assert.True(t, resp.Answers[1].Answered)
	assert.Equal(t, &videoID, resp.Answers[1].VideoID)
	assert.False(t, resp.Answers[2].Answered)
	assert.Equal(t, dto.NoAnswerPlaceholder, resp.Answers[2].ResponseText)
}

func TestEntryService_SubmitEntry_TypeMismatchRejectedBeforeAnyWrite(t *testing.T) {
	formRepo, applicantRepo, answerRepo, svc := newEntryFixture()
	seedFormWithQuestions(formRepo)
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	_, err := svc.SubmitEntry(1, dto.SubmitEntryRequest{
		ApplicantID: 1,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: 10, AnswerType: model.QuestionTypeText, ResponseText: strPtr("fine")},
			// question 11 is a video question
			{QuestionID: 11, AnswerType: model.QuestionTypeText, ResponseText: strPtr("wrong type")},
		},
	})

	assert.ErrorIs(t, err, ErrAnswerTypeMismatch)
	assert.Empty(t, answerRepo.answers)
}

func TestEntryService_SubmitEntry_UnknownQuestionRejected(t *testing.T) {
	formRepo, applicantRepo, answerRepo, svc := newEntryFixture()
	seedFormWithQuestions(formRepo)
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	_, err := svc.SubmitEntry(1, dto.SubmitEntryRequest{
		ApplicantID: 1,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: 999, AnswerType: model.QuestionTypeText, ResponseText: strPtr("orphan")},
		},
	})

	assert.ErrorIs(t, err, ErrQuestionNotInForm)
	assert.Empty(t, answerRepo.answers)
}

func TestEntryService_SubmitEntry_PayloadShapeValidated(t *testing.T) {
	formRepo, applicantRepo, answerRepo, svc := newEntryFixture()
	seedFormWithQuestions(formRepo)
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	videoID := "vid-8f2a"
	cases := []struct {
		name   string
		answer dto.AnswerSubmissionDTO
	}{
		{"text answer without text", dto.AnswerSubmissionDTO{QuestionID: 10, AnswerType: model.QuestionTypeText}},
		{"text answer with video id", dto.AnswerSubmissionDTO{QuestionID: 10, AnswerType: model.QuestionTypeText, ResponseText: strPtr("x"), VideoID: &videoID}},
		{"video answer without video id", dto.AnswerSubmissionDTO{QuestionID: 11, AnswerType: model.QuestionTypeVideo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitEntry(1, dto.SubmitEntryRequest{
				ApplicantID: 1,
				Answers:     []dto.AnswerSubmissionDTO{tc.answer},
			})
			assert.ErrorIs(t, err, ErrAnswerPayloadInvalid)
		})
	}
	assert.Empty(t, answerRepo.answers)
}

func TestEntryService_SubmitEntry_PartialFailureLeavesEarlierRows(t *testing.T) {
	formRepo, applicantRepo, _, _ := newEntryFixture()
	seedFormWithQuestions(formRepo)
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	dbErr := errors.New("pq: connection refused")
	answerRepo := &fakeAnswerRepo{failAt: 2, createErr: dbErr}
	reviewSvc := NewReviewService(formRepo, applicantRepo, answerRepo)
	svc := NewEntryService(formRepo, applicantRepo, answerRepo, reviewSvc)

	videoID := "vid-8f2a"
	_, err := svc.SubmitEntry(1, dto.SubmitEntryRequest{
		ApplicantID: 1,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: 10, AnswerType: model.QuestionTypeText, ResponseText: strPtr("kept")},
			{QuestionID: 11, AnswerType: model.QuestionTypeVideo, VideoID: &videoID},
		},
	})

	// No transaction across answers: the first row stays, the error surfaces.
	assert.ErrorIs(t, err, dbErr)
	assert.Len(t, answerRepo.answers, 1)
}

func TestEntryService_SubmitEntry_FormNotFound(t *testing.T) {
	_, applicantRepo, _, svc := newEntryFixture()
	require.NoError(t, applicantRepo.Create(&model.Applicant{FirstName: "Jane", LastName: "Doe"}))

	_, err := svc.SubmitEntry(42, dto.SubmitEntryRequest{
		ApplicantID: 1,
		Answers:     []dto.AnswerSubmissionDTO{{QuestionID: 10, AnswerType: model.QuestionTypeText, ResponseText: strPtr("x")}},
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func strPtr(s string) *string { return &s }
