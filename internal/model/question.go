package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeText  = "text"
	QuestionTypeVideo = "video"
)

// Question belongs to exactly one Form. QuestionOrder drives display sequence
// and must be unique within a form.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"question_id"`
	FormID        uint           `json:"form_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  string         `json:"question_type" gorm:"not null"` // "text", "video"
	QuestionOrder int            `json:"question_order" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
