package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingRejected  BookingStatus = "Rejected"
)

// Booking is a customer's request for a ritual with a specific pandit.
// Names are denormalized so lists render without joins, matching the API shape.
type Booking struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID     string `gorm:"index" json:"userId"` // the customer
	UserName   string `json:"userName"`
	PanditID   string `gorm:"index" json:"panditId"` // the pandit's user id
	PanditName string `json:"panditName"`

	PujaName string `json:"pujaName"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Address  string `json:"address"`

	Status BookingStatus `gorm:"type:text;default:'Pending'" json:"status"`
}
