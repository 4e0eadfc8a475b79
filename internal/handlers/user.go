package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
)

// GetUserName is the public directory lookup: id -> display name.
// The chat UI calls it to label conversation headers.
func GetUserName(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := database.DB.Select("id", "name").First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}

// ListUsers returns all customer accounts, password hashes excluded.
// Admin only.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Where("role = ?", models.RoleUser).
		Omit("password").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
