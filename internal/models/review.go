package models

import "time"

// Review is a customer rating of a pandit, written after a booking.
type Review struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PanditID string `gorm:"index" json:"panditId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"` // 1..5
	Comment  string `json:"comment"`
}
