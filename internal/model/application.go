package model

import (
	"time"
)

// Application is the stored record of one candidacy submission. There is no
// update or delete path; resubmitting the same payload creates a second row.
type Application struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
