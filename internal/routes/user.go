package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
	"github.com/mishrashubham1104/PoojaConnect/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), handlers.ListUsers)
		users.GET("/:id", handlers.GetUserName)
	}
}
