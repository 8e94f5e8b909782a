package routes

import (
	"time"

	"bookie/handlers"
	"bookie/middleware"
	"bookie/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoomRoutes registers room and availability endpoints.
func RegisterRoomRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	rooms := api.Group("/rooms")
	{
		rooms.GET("", hb.GetRoomsHandler)
		rooms.GET("/:id", hb.GetRoomHandler)
		rooms.GET("/:id/availability", hb.GetAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	{
		bookings.GET("", hb.GetBookingsHandler)
		bookings.GET("/:id", hb.GetBookingHandler)

		// Writes need to know who is asking.
		protected := bookings.Group("")
		protected.Use(middleware.UserIdentityMiddleware())
		protected.POST("", hb.CreateBookingHandler)
		protected.DELETE("", hb.DeleteBookingsHandler)
		protected.PUT("/:id", hb.UpdateBookingHandler)
		protected.DELETE("/:id", hb.DeleteBookingHandler)
	}
	api.GET("/users/:id/bookings", hb.GetUserBookingsHandler)
}

// RegisterSelectionRoutes registers the slot selection flow.
func RegisterSelectionRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	selections := api.Group("/selections")
	{
		selections.Use(middleware.UserIdentityMiddleware())
		selections.POST("", hb.StartSelectionHandler)
		selections.GET("/:id", hb.GetSelectionHandler)
		selections.POST("/:id/click", hb.ClickSlotHandler)
		selections.DELETE("/:id/slots", hb.ClearSelectionHandler)
		selections.PUT("/:id/date", hb.ChangeDateHandler)
		selections.POST("/:id/submit", hb.SubmitSelectionHandler)
		selections.DELETE("/:id", hb.CancelSelectionHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.UserIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(allowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)

	api := r.Group(utils.APIVersion)
	RegisterRoomRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterSelectionRoutes(api, hb)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
