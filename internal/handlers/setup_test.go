package handlers

import (
	"github.com/mishrashubham1104/PoojaConnect/internal/config"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing and wires
// the chat services onto it. Tests use unique row ids because the shared
// cache keeps data alive across calls.
func SetupTestDB() {
	logger.Init("test")
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@poojaconnect.in",
		AdminPassword: "admin-pass",
	}

	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Pandit{},
		&models.Booking{},
		&models.Review{},
		&models.Message{},
	)

	InitChat(db)
}
