package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
	"github.com/mishrashubham1104/PoojaConnect/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/stats", handlers.GetAdminStats)
	}
}
