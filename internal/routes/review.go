package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/handlers"
)

func RegisterReviewRoutes(r gin.IRouter) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", handlers.CreateReview)
		reviews.GET("/:panditId", handlers.ListReviews)
	}
}
