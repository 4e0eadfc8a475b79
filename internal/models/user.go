package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RolePandit Role = "pandit"
	RoleAdmin  Role = "admin"
)

// User is an account in the marketplace: a customer, a pandit, or the admin.
// Pandits additionally own a PanditProfile keyed by their user id.
type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Phone string `json:"phone"`

	Role Role `gorm:"type:text;default:'user'" json:"role"`

	Password string `json:"-"`
}
