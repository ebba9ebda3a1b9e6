package routes

import "github.com/gin-gonic/gin"

const (
	PathBookings  = "/bookings"
	PathPayments  = "/payments"
	PathDecorator = "/decorator"
	PathAdmin     = "/admin"
)

func addBookingRoutes(rg *gin.RouterGroup, h handlerSet) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.optionalIdentity, h.bookings.Create)
		bookings.GET("", h.requireIdentity, h.bookings.ListForUser)
		bookings.GET("/:id", h.requireIdentity, h.bookings.Get)
		// Cancel is open to anyone holding the booking id.
		bookings.DELETE("/:id", h.optionalIdentity, h.bookings.Cancel)
		bookings.PATCH("/:id/assign", h.requireIdentity, h.bookings.AssignDecorator)
		bookings.PATCH("/:id/decorator-status", h.requireIdentity, h.bookings.UpdateDecoratorStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/checkout", h.optionalIdentity, h.payments.CreateCheckoutSession)
		payments.PATCH("/:id/success", h.optionalIdentity, h.bookings.MarkPaid)
		payments.GET("/history", h.requireIdentity, h.bookings.PaymentHistory)
	}

	decorator := rg.Group(PathDecorator, h.requireIdentity)
	{
		decorator.GET("/bookings", h.bookings.ListAssigned)
		decorator.GET("/today", h.bookings.TodaySchedule)
		decorator.GET("/earnings", h.analytics.ProviderEarnings)
		decorator.GET("/services", h.services.ListByProvider)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h handlerSet) {
	admin := rg.Group(PathAdmin, h.requireIdentity)
	{
		admin.GET("/users", h.accounts.List)
		admin.PATCH("/users/:email/status", h.accounts.UpdateStatus)
		admin.PATCH("/users/:email/role", h.accounts.UpdateRole)
		admin.GET("/decorators", h.accounts.ListDecorators)
		admin.GET("/bookings", h.bookings.ListAll)
		admin.GET("/stats", h.analytics.AdminStats)
	}
}
