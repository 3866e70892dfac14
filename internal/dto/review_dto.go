package dto

import "time"

// NoAnswerPlaceholder is rendered for questions the applicant left blank, so
// the review page always shows all N questions of a form.
const NoAnswerPlaceholder = "No answer provided."

// EntryAnswerDTO pairs one question with the applicant's answer, or with the
// explicit placeholder when no answer exists.
type EntryAnswerDTO struct {
	Question     QuestionResponse `json:"question"`
	Answered     bool             `json:"answered"`
	AnswerType   string           `json:"answer_type,omitempty"`
	ResponseText string           `json:"response_text"`
	VideoID      *string          `json:"video_id,omitempty"`
}

// EntryDetailResponse is the denormalized staff review view: the form, its
// ordered questions, and one applicant's answers aligned by question ID.
type EntryDetailResponse struct {
	Form      FormResponse      `json:"form"`
	Applicant ApplicantResponse `json:"applicant"`
	Answers   []EntryAnswerDTO  `json:"answers"`
}

// EntrySummary identifies one applicant who has submitted answers to a form.
type EntrySummary struct {
	ApplicantID uint      `json:"applicant_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	SubmittedAt time.Time `json:"submitted_at"`
}
