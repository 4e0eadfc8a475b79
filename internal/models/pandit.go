package models

import (
	"time"

	"github.com/lib/pq"
)

// Pandit is a provider profile, linked 1:1 to the owning User account.
type Pandit struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID         string         `gorm:"uniqueIndex" json:"userId"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Location       string         `json:"location"`
	Bio            string         `json:"bio"`
	Experience     string         `json:"experience"`
	Languages      pq.StringArray `gorm:"type:text[]" json:"languages"`
	Image          string         `json:"image"` // CDN / object storage URL
	Rating         float64        `gorm:"default:0" json:"rating"`
}
