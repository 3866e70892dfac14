package model

import (
	"time"
)

// Answer is one applicant's response to one question. Exactly one of
// ResponseText/VideoID is populated, matching AnswerType, which in turn must
// match the parent question's type.
type Answer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ApplicantID  uint      `json:"user_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Question     Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerType   string    `json:"answer_type" gorm:"not null"` // "text", "video"
	ResponseText *string   `json:"response_text,omitempty" gorm:"type:text"`
	VideoID      *string   `json:"video_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
