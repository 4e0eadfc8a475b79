package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
)

const panditListCacheKey = "pandits:list"

// ListPandits returns every provider profile. The list is the landing
// page query, so it is cached in Redis for a few minutes.
func ListPandits(c *gin.Context) {
	var pandits []models.Pandit

	if err := database.CacheGet(panditListCacheKey, &pandits); err == nil {
		c.JSON(http.StatusOK, pandits)
		return
	}

	if err := database.DB.Find(&pandits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pandits"})
		return
	}

	if err := database.CacheSet(panditListCacheKey, pandits, 5*time.Minute); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache pandit list")
	}

	c.JSON(http.StatusOK, pandits)
}

// GetPandit returns a single provider profile by id
func GetPandit(c *gin.Context) {
	var pandit models.Pandit
	if err := database.DB.First(&pandit, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, pandit)
}

type AddPanditInput struct {
	UserID         string   `json:"userId" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Bio            string   `json:"bio" binding:"required"`
	Experience     string   `json:"experience" binding:"required"`
	Languages      []string `json:"languages"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
}

// AddPandit creates a provider profile (admin back-office)
func AddPandit(c *gin.Context) {
	var input AddPanditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	pandit := models.Pandit{
		ID:             uuid.New().String(),
		UserID:         input.UserID,
		Name:           input.Name,
		Specialization: input.Specialization,
		Location:       input.Location,
		Bio:            input.Bio,
		Experience:     input.Experience,
		Languages:      pq.StringArray(input.Languages),
		Image:          input.Image,
		Rating:         input.Rating,
	}

	if err := database.DB.Create(&pandit).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create pandit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	database.CacheInvalidate(panditListCacheKey)
	c.JSON(http.StatusCreated, gin.H{"message": "Pandit added successfully!", "newPandit": pandit})
}

type UpsertProfileInput struct {
	UserID         string   `json:"userId" binding:"required"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	Experience     string   `json:"experience"`
	Languages      []string `json:"languages"`
	Image          string   `json:"image"`
}

// UpsertProfile lets a pandit create or update their own profile,
// keyed by the owning user id.
func UpsertProfile(c *gin.Context) {
	var input UpsertProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	var pandit models.Pandit
	err := database.DB.Where("user_id = ?", input.UserID).First(&pandit).Error
	if err != nil {
		pandit = models.Pandit{
			ID:     uuid.New().String(),
			UserID: input.UserID,
		}
	}

	pandit.Name = input.Name
	pandit.Specialization = input.Specialization
	pandit.Location = input.Location
	pandit.Bio = input.Bio
	pandit.Experience = input.Experience
	pandit.Languages = pq.StringArray(input.Languages)
	pandit.Image = input.Image

	if err := database.DB.Save(&pandit).Error; err != nil {
		logger.Error().Err(err).Str("user_id", input.UserID).Msg("Profile save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile save failed"})
		return
	}

	database.CacheInvalidate(panditListCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated!", "profile": pandit})
}

// DeletePandit removes a provider profile (admin back-office)
func DeletePandit(c *gin.Context) {
	result := database.DB.Delete(&models.Pandit{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	database.CacheInvalidate(panditListCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Pandit deleted successfully!"})
}

// GetPanditReviews returns a pandit's reviews with the aggregate rating.
// Providers with no reviews present a 5.0 default rather than zero.
func GetPanditReviews(c *gin.Context) {
	panditID := c.Param("panditId")

	var reviews []models.Review
	if err := database.DB.Where("pandit_id = ?", panditID).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reviews failed"})
		return
	}

	average := 5.0
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		average = float64(total) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": average,
		"totalReviews":  len(reviews),
	})
}
