package service

import "errors"

// Validation failures surfaced to controllers as 400s. Persistence errors are
// wrapped with %w instead so gorm.ErrRecordNotFound stays matchable for 404s.
var (
	ErrDuplicateQuestionOrder = errors.New("question_order already used in this form")
	ErrQuestionNotInForm      = errors.New("question does not belong to this form")
	ErrAnswerTypeMismatch     = errors.New("answer_type does not match the question's type")
	ErrAnswerPayloadInvalid   = errors.New("exactly one of response_text or video_id must be set, matching answer_type")
)
