package main

import (
	"os"

	"github.com/mishrashubham1104/PoojaConnect/internal/config"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/internal/seeds"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	database.Connect()

	if err := database.DB.AutoMigrate(&models.User{}, &models.Pandit{}); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}

	if err := seeds.SeedPandits(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("Pandit seeding failed")
	}
	if err := seeds.SeedUsers(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("User seeding failed")
	}

	logger.Info().Msg("Seeding complete")
}
