package dto

// SubmitApplicationRequest is the public intake payload. All three fields are
// required; a bind failure maps to the fixed "Missing required fields." body.
type SubmitApplicationRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type CreateApplicantRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// CreateFormRequest creates the form shell only; questions are added by
// separate CreateQuestionRequest calls, each an independent insert.
type CreateFormRequest struct {
	StaffID     string `json:"staff_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateQuestionRequest struct {
	FormID        uint   `json:"form_id" binding:"required"`
	QuestionText  string `json:"question_text" binding:"required"`
	QuestionType  string `json:"question_type" binding:"required,oneof=text video"`
	QuestionOrder int    `json:"question_order" binding:"required,min=1"`
}

// AnswerSubmissionDTO is a single answer inside an entry submission.
type AnswerSubmissionDTO struct {
	QuestionID   uint    `json:"question_id" binding:"required"`
	AnswerType   string  `json:"answer_type" binding:"required,oneof=text video"`
	ResponseText *string `json:"response_text"`
	VideoID      *string `json:"video_id"`
}

// SubmitEntryRequest carries one applicant's answers for a form.
type SubmitEntryRequest struct {
	ApplicantID uint                  `json:"applicant_id" binding:"required"`
	Answers     []AnswerSubmissionDTO `json:"answers" binding:"required,min=1,dive"`
}
