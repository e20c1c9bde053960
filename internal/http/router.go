package api

import (
	"log"
	stdhttp "net/http"

	"tourism/internal/booking"
	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	h "tourism/internal/http/handlers"
	"tourism/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, drafts *booking.Store) *gin.Engine {
	h.SetDraftStore(drafts)
	h.SetJWTSecret([]byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))
	staff := middleware.RequireRoles(domain.RoleStaff, domain.RoleAdmin)
	admin := middleware.RequireRoles(domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Destinations (public read, staff write)
		destinations := api.Group("/destinations")
		destinations.GET("", middleware.AuthOptional([]byte(env.JWTSecret)), h.GetDestinations)
		destinations.GET("/:id", h.GetDestinationByID)
		destinations.POST("", auth, staff, h.CreateDestination)
		destinations.PUT("/:id", auth, staff, h.UpdateDestination)
		destinations.DELETE("/:id", auth, admin, h.DeleteDestination)

		// Booking flow (drafts) and bookings
		bookings := api.Group("/bookings", auth)
		{
			draftsGroup := bookings.Group("/drafts")
			draftsGroup.POST("", h.CreateDraft)
			draftsGroup.GET("/:token", h.GetDraft)
			draftsGroup.PUT("/:token", h.UpdateDraft)
			draftsGroup.POST("/:token/guests", h.AdjustDraftGuests)
			draftsGroup.POST("/:token/continue", h.ContinueDraft)
			draftsGroup.POST("/:token/back", h.BackDraft)

			bookings.GET("", h.GetBookings)
			bookings.GET("/:id", h.GetBookingByID)
			bookings.GET("/:id/voucher", h.GetBookingVoucher)
			bookings.POST("/:id/rating", h.RateBooking)
			bookings.PUT("/:id/confirm", staff, h.ConfirmBooking)
			bookings.PUT("/:id/cancel", staff, h.CancelBooking)
			bookings.DELETE("/:id", staff, h.DeleteBooking)
		}

		// Wishlist
		wishlist := api.Group("/wishlist", auth)
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/:destinationId", h.AddToWishlist)
		wishlist.DELETE("/:destinationId", h.RemoveFromWishlist)

		// Notifications
		notifications := api.Group("/notifications", auth)
		notifications.GET("", h.GetNotifications)
		notifications.PUT("/:id/read", h.MarkNotificationRead)

		// Reports
		reports := api.Group("/reports", auth, staff)
		reports.GET("/dashboard", h.GetDashboardReport)

		// Users admin
		users := api.Group("/users", auth, admin)
		users.GET("", h.GetUsers)
		users.PUT("/:id/role", h.UpdateUserRole)
	}

	return r
}
