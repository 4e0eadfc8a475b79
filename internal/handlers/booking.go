package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
)

type CreateBookingInput struct {
	UserID     string `json:"userId" binding:"required"`
	UserName   string `json:"userName"`
	PanditID   string `json:"panditId" binding:"required"`
	PanditName string `json:"panditName"`
	PujaName   string `json:"pujaName"`
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	Address    string `json:"address"`
}

// CreateBooking files a booking request. Every booking starts Pending;
// only the pandit (or admin) moves it to Confirmed or Rejected.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing IDs"})
		return
	}

	booking := models.Booking{
		ID:         uuid.New().String(),
		UserID:     input.UserID,
		UserName:   input.UserName,
		PanditID:   input.PanditID,
		PanditName: input.PanditName,
		PujaName:   input.PujaName,
		Date:       input.Date,
		TimeSlot:   input.TimeSlot,
		Address:    input.Address,
		Status:     models.BookingPending,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		logger.Error().Err(err).Msg("Booking create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListUserBookings returns a customer's bookings, newest first
func ListUserBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", c.Param("userId")).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListPanditBookings returns the requests addressed to a pandit, newest first
func ListPanditBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Where("pandit_id = ?", c.Param("panditId")).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type UpdateBookingInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus moves a booking through the Pending -> Confirmed /
// Rejected workflow
func UpdateBookingStatus(c *gin.Context) {
	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed"})
		return
	}

	switch input.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed"})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Update failed"})
		return
	}

	booking.Status = input.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListAllBookings returns every booking for the back-office, newest first.
// Admin only.
func ListAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
