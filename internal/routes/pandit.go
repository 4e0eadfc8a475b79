package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
	"github.com/mishrashubham1104/PoojaConnect/internal/middleware"
)

func RegisterPanditRoutes(r gin.IRouter) {
	pandits := r.Group("/pandits")
	{
		pandits.GET("", handlers.ListPandits)
		pandits.GET("/reviews/:panditId", handlers.GetPanditReviews)
		pandits.POST("/add", middleware.AuthMiddleware(), middleware.AdminMiddleware(), handlers.AddPandit)
		pandits.POST("/profile", middleware.AuthMiddleware(), handlers.UpsertProfile)
		pandits.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), handlers.DeletePandit)
		// Keep the wildcard last so /reviews and /add resolve first
		pandits.GET("/:id", handlers.GetPandit)
	}
}
