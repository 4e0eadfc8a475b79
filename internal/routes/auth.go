package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/admin-login", handlers.AdminLogin)
}
