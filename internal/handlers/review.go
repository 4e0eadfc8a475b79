package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
)

type CreateReviewInput struct {
	PanditID string `json:"panditId" binding:"required"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// CreateReview stores a customer rating for a pandit
func CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review failed"})
		return
	}

	review := models.Review{
		ID:       uuid.New().String(),
		PanditID: input.PanditID,
		UserID:   input.UserID,
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		logger.Error().Err(err).Msg("Review create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Review failed"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviews returns reviews for a pandit, newest first
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := database.DB.Where("pandit_id = ?", c.Param("panditId")).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
