package seeds

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedPandit struct {
	user    models.User
	profile models.Pandit
}

// SeedPandits inserts the demo provider accounts and their profiles.
// Idempotent: existing emails are left untouched.
func SeedPandits(db *gorm.DB) error {
	password, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	samples := []seedPandit{
		{
			user: models.User{
				Name:  "Pandit Rajesh Sharma",
				Email: "rajesh.sharma@poojaconnect.in",
				Role:  models.RolePandit,
			},
			profile: models.Pandit{
				Name:           "Pandit Rajesh Sharma",
				Specialization: "Vedic Rituals & Astrology",
				Experience:     "15+ Years",
				Location:       "Varanasi",
				Languages:      pq.StringArray{"Hindi", "Sanskrit"},
				Rating:         4.9,
				Bio:            "Specialist in Satyanarayan Katha and personal Horoscope.",
			},
		},
		{
			user: models.User{
				Name:  "Acharya Ankit Iyer",
				Email: "ankit.iyer@poojaconnect.in",
				Role:  models.RolePandit,
			},
			profile: models.Pandit{
				Name:           "Acharya Ankit Iyer",
				Specialization: "Marriage & Griha Pravesh",
				Experience:     "10 Years",
				Location:       "Mumbai",
				Languages:      pq.StringArray{"English", "Tamil", "Hindi"},
				Rating:         4.8,
				Bio:            "Expert in South Indian Vedic wedding traditions.",
			},
		},
	}

	for _, s := range samples {
		var existing models.User
		if err := db.Where("email = ?", s.user.Email).First(&existing).Error; err == nil {
			continue
		}

		s.user.ID = uuid.New().String()
		s.user.Password = string(password)
		if err := db.Create(&s.user).Error; err != nil {
			return err
		}

		s.profile.ID = uuid.New().String()
		s.profile.UserID = s.user.ID
		if err := db.Create(&s.profile).Error; err != nil {
			return err
		}

		logger.Info().Str("name", s.profile.Name).Msg("Seeded pandit")
	}

	return nil
}
