package seeds

import (
	"github.com/google/uuid"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUsers inserts a couple of demo customer accounts for local
// development. Idempotent.
func SeedUsers(db *gorm.DB) error {
	password, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	samples := []models.User{
		{Name: "Priya Verma", Email: "priya.verma@example.com", Role: models.RoleUser},
		{Name: "Amit Kulkarni", Email: "amit.kulkarni@example.com", Role: models.RoleUser},
	}

	for _, u := range samples {
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			continue
		}

		u.ID = uuid.New().String()
		u.Password = string(password)
		if err := db.Create(&u).Error; err != nil {
			return err
		}

		logger.Info().Str("email", u.Email).Msg("Seeded user")
	}

	return nil
}
