package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/service"
)

type fakeEntryService struct {
	entry *dto.EntryDetailResponse
	err   error
	calls int
}

func (f *fakeEntryService) SubmitEntry(formID uint, req dto.SubmitEntryRequest) (*dto.EntryDetailResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entry, nil
}

func newEntryRouter(svc *fakeEntryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewEntryController(svc)
	r.POST("/api/forms/:id/entries", ctrl.SubmitEntry)
	return r
}

const validEntryBody = `{
	"applicant_id": 3,
	"answers": [
		{"question_id": 10, "answer_type": "text", "response_text": "Five years of Go."}
	]
}`

func TestSubmitEntry_Created(t *testing.T) {
	svc := &fakeEntryService{entry: &dto.EntryDetailResponse{
		Form:      dto.FormResponse{ID: 1, Title: "Engineering Cycle 2026"},
		Applicant: dto.ApplicantResponse{ID: 3, FirstName: "Jane", LastName: "Doe"},
		Answers: []dto.EntryAnswerDTO{
			{Question: dto.QuestionResponse{ID: 10, QuestionOrder: 1}, Answered: true,
				AnswerType: "text", ResponseText: "Five years of Go."},
			{Question: dto.QuestionResponse{ID: 11, QuestionOrder: 2},
				ResponseText: dto.NoAnswerPlaceholder},
		},
	}}
	r := newEntryRouter(svc)

	w := postJSON(t, r, "/api/forms/1/entries", validEntryBody)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got dto.EntryDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Answers, 2)
	assert.True(t, got.Answers[0].Answered)
	assert.Equal(t, dto.NoAnswerPlaceholder, got.Answers[1].ResponseText)
}

func TestSubmitEntry_InvalidFormID(t *testing.T) {
	svc := &fakeEntryService{}
	r := newEntryRouter(svc)

	w := postJSON(t, r, "/api/forms/abc/entries", validEntryBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestSubmitEntry_EmptyAnswers(t *testing.T) {
	svc := &fakeEntryService{}
	r := newEntryRouter(svc)

	w := postJSON(t, r, "/api/forms/1/entries", `{"applicant_id":3,"answers":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Missing required fields."}`, w.Body.String())
	assert.Equal(t, 0, svc.calls)
}

func TestSubmitEntry_FormNotFound(t *testing.T) {
	svc := &fakeEntryService{err: fmt.Errorf("form not found with ID 1: %w", gorm.ErrRecordNotFound)}
	r := newEntryRouter(svc)

	w := postJSON(t, r, "/api/forms/1/entries", validEntryBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitEntry_AnswerErrorsMapToBadRequest(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"question not in form", fmt.Errorf("question 99: %w", service.ErrQuestionNotInForm)},
		{"type mismatch", fmt.Errorf("question 10: %w", service.ErrAnswerTypeMismatch)},
		{"bad payload", fmt.Errorf("question 10: %w", service.ErrAnswerPayloadInvalid)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEntryRouter(&fakeEntryService{err: tc.err})

			w := postJSON(t, r, "/api/forms/1/entries", validEntryBody)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitEntry_PersistenceError(t *testing.T) {
	svc := &fakeEntryService{err: fmt.Errorf("failed to save answer: connection reset")}
	r := newEntryRouter(svc)

	w := postJSON(t, r, "/api/forms/1/entries", validEntryBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to submit entry."}`, w.Body.String())
}
