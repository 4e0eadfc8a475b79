package models

import "time"

// Message is a direct message between two participants. Messages are
// append-only: nothing in the API updates or deletes them.
type Message struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	SenderID   string    `gorm:"index" json:"senderId"`
	ReceiverID string    `gorm:"index" json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}
