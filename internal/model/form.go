package model

import (
	"time"

	"gorm.io/gorm"
)

// Form is a staff-authored, reusable question set for a recruitment cycle.
// StaffID references the external identity provider's subject; there is no
// staff table in this service.
type Form struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	StaffID     string         `json:"staff_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:FormID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
