package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
)

// GetAdminStats returns headline counts for the back-office dashboard
func GetAdminStats(c *gin.Context) {
	var pandits, users, bookings int64

	if err := database.DB.Model(&models.Pandit{}).Count(&pandits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stats failed"})
		return
	}
	if err := database.DB.Model(&models.User{}).
		Where("role = ?", models.RoleUser).Count(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stats failed"})
		return
	}
	if err := database.DB.Model(&models.Booking{}).Count(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stats failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pandits":  pandits,
		"users":    users,
		"bookings": bookings,
	})
}
