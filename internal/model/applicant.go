package model

import (
	"time"
)

// Applicant is created once on submission and never mutated afterwards.
type Applicant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
