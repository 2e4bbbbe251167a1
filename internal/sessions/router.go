package sessions

import (
	"github.com/gin-gonic/gin"
)

func SetupSessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	seatMap := rg.Group("/seat-map/sessions")
	{
		seatMap.POST("", controller.Open)
		seatMap.GET("/:id", controller.Summary)
		seatMap.GET("/:id/svg", controller.Render)
		seatMap.POST("/:id/click", controller.Click)
		seatMap.POST("/:id/seats/:seatId/toggle", controller.Toggle)
		seatMap.POST("/:id/checkout", controller.Checkout)
		seatMap.DELETE("/:id", controller.Close)
	}
}
