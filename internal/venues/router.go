package venues

import (
	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.ListVenues)                        // GET /api/venues
		venues.GET("/:venueId/event/:eventId", controller.GetLayout) // GET /api/venues/:venueId/event/:eventId
	}

	admin := rg.Group("/admin/venues")
	{
		admin.POST("", controller.CreateVenue)       // POST /api/admin/venues
		admin.GET("/:id", controller.GetVenue)       // GET /api/admin/venues/:id
		admin.PUT("/:id", controller.UpdateVenue)    // PUT /api/admin/venues/:id
		admin.DELETE("/:id", controller.DeleteVenue) // DELETE /api/admin/venues/:id
	}
}
