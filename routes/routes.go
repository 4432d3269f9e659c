package routes

import (
	"internal-portal-api/controllers"
	"internal-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

// Page-level allow-lists. The role gate is presentational: it decides
// who sees a view, while the data-access layer underneath stays
// role-agnostic.
var (
	travelRoles  = []string{"Managers", "Travel", "Finance"}
	hrRoles      = []string{"Managers", "Human Resources"}
	financeRoles = []string{"Managers", "Finance"}
	staffRoles   = []string{"Managers", "Human Resources", "Finance", "Travel", "Staff"}
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Internal Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Dashboard
			protected.GET("/dashboard/stats", middleware.RequireAnyRole(staffRoles...), controllers.GetDashboardStats)

			// Provider lookups (any staff role)
			lookups := protected.Group("", middleware.RequireAnyRole(staffRoles...))
			{
				lookups.GET("/airlines", controllers.GetAirlines)
				lookups.GET("/hotel-chains", controllers.GetHotelChains)
				lookups.GET("/rental-vendors", controllers.GetRentalVendors)
				lookups.GET("/approval-statuses", controllers.GetApprovalStatuses)
			}

			// Provider management (travel desk)
			providerAdmin := protected.Group("", middleware.RequireAnyRole(travelRoles...))
			{
				providerAdmin.POST("/airlines", controllers.CreateAirline)
				providerAdmin.POST("/hotel-chains", controllers.CreateHotelChain)
				providerAdmin.POST("/rental-vendors", controllers.CreateRentalVendor)
			}

			// Members (HR pages)
			members := protected.Group("/members", middleware.RequireAnyRole(hrRoles...))
			{
				members.GET("", controllers.GetMembers)
				members.GET("/:id", controllers.GetMember)
				members.POST("", controllers.CreateMember)
				members.PUT("/:id", controllers.UpdateMember)
				members.PATCH("/:id/active", controllers.SetMemberActive)
				members.GET("/:id/approvals", controllers.GetMemberApprovals)
			}

			// Projects
			projects := protected.Group("/projects", middleware.RequireAnyRole(staffRoles...))
			{
				projects.GET("", controllers.GetProjects)
				projects.GET("/:id", controllers.GetProject)
				projects.POST("", middleware.RequireAnyRole(hrRoles...), controllers.CreateProject)
				projects.PUT("/:id", middleware.RequireAnyRole(hrRoles...), controllers.UpdateProject)
				projects.POST("/:id/assignments", middleware.RequireAnyRole(hrRoles...), controllers.AssignMember)
				projects.DELETE("/assignments/:assignment_id", middleware.RequireAnyRole(hrRoles...), controllers.RemoveAssignment)
			}

			// Flights
			flights := protected.Group("/flights", middleware.RequireAnyRole(travelRoles...))
			{
				flights.GET("", controllers.GetFlights)
				flights.GET("/:confirmation", controllers.GetFlight)
				flights.POST("", controllers.CreateFlight)
				flights.PUT("/:confirmation", controllers.UpdateFlight)
				flights.PATCH("/:confirmation/flags", controllers.SetFlightFlags)
			}

			// Flight credits (finance pages)
			credits := protected.Group("", middleware.RequireAnyRole(financeRoles...))
			{
				credits.GET("/members/:id/credits", controllers.GetMemberCredits)
				credits.POST("/credit-grants", controllers.CreateCreditGrant)
				credits.GET("/flight-records/:id/balance", controllers.GetFlightBalance)
				credits.POST("/flight-records/:id/apply-credit", controllers.ApplyCredit)
			}

			// Hotels
			hotels := protected.Group("/hotels", middleware.RequireAnyRole(travelRoles...))
			{
				hotels.GET("", controllers.GetHotels)
				hotels.GET("/:confirmation", controllers.GetHotel)
				hotels.POST("", controllers.CreateHotel)
				hotels.PUT("/:confirmation", controllers.UpdateHotel)
				hotels.PATCH("/:confirmation/flags", controllers.SetHotelFlags)
			}

			// Rentals
			rentals := protected.Group("/rentals", middleware.RequireAnyRole(travelRoles...))
			{
				rentals.GET("", controllers.GetRentals)
				rentals.GET("/:confirmation", controllers.GetRental)
				rentals.POST("", controllers.CreateRental)
				rentals.PUT("/:confirmation", controllers.UpdateRental)
				rentals.PATCH("/:confirmation/flags", controllers.SetRentalFlags)
			}

			// Notes & attachments
			notes := protected.Group("", middleware.RequireAnyRole(staffRoles...))
			{
				notes.GET("/notes/:parent_type/:parent_id", controllers.GetNotes)
				notes.POST("/notes", controllers.CreateNote)
				notes.DELETE("/notes/:id", middleware.RequireAnyRole(hrRoles...), controllers.DeleteNote)

				notes.GET("/attachments/:parent_type/:parent_id", controllers.GetAttachments)
				notes.POST("/attachments", controllers.UploadAttachment)
				notes.DELETE("/attachments/:id", middleware.RequireAnyRole(hrRoles...), controllers.DeleteAttachment)
			}

			// Approvals (HR pages)
			approvals := protected.Group("/approvals", middleware.RequireAnyRole(hrRoles...))
			{
				approvals.POST("", controllers.CreateApproval)
				approvals.PUT("/:id", controllers.UpdateApproval)
			}

			// Project site map
			protected.POST("/map/geocode", middleware.RequireAnyRole(staffRoles...), controllers.GeocodeAddresses)
		}
	}
}
