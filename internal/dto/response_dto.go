package dto

import "time"

type ApplicationResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicantResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateApplicantResponse is the 201 body for applicant creation:
// {message, applicant}.
type CreateApplicantResponse struct {
	Message   string            `json:"message"`
	Applicant ApplicantResponse `json:"applicant"`
}

type QuestionResponse struct {
	ID            uint   `json:"question_id"`
	FormID        uint   `json:"form_id"`
	QuestionText  string `json:"question_text"`
	QuestionType  string `json:"question_type"`
	QuestionOrder int    `json:"question_order"`
}

type FormResponse struct {
	ID          uint               `json:"id"`
	StaffID     string             `json:"staff_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// FormSummary is used by the feed listing.
type FormSummary struct {
	ID            uint      `json:"id"`
	StaffID       string    `json:"staff_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrorResponse is the error body for every endpoint. Err carries the
// underlying error text only for applicant creation failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}
