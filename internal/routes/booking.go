package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
	"github.com/mishrashubham1104/PoojaConnect/internal/middleware"
)

func RegisterBookingRoutes(r gin.IRouter) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), handlers.ListAllBookings)
		bookings.POST("/create", handlers.CreateBooking)
		bookings.GET("/user/:userId", handlers.ListUserBookings)
		bookings.GET("/pandit/:panditId", handlers.ListPanditBookings)
		bookings.PUT("/:id", handlers.UpdateBookingStatus)
	}
}
