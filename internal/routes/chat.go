package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
)

func RegisterChatRoutes(r gin.IRouter) {
	r.GET("/chat/inbox/:userId", handlers.GetInbox)
	r.GET("/messages/:user1/:user2", handlers.GetHistory)
}
