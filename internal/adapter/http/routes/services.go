package routes

import "github.com/gin-gonic/gin"

const PathServices = "/services"

func addServiceRoutes(rg *gin.RouterGroup, h handlerSet) {
	services := rg.Group(PathServices)
	{
		// Anonymous callers see the active catalog.
		services.GET("", h.optionalIdentity, h.services.List)
		services.GET("/:id", h.optionalIdentity, h.services.Get)

		services.POST("", h.requireIdentity, h.services.Create)
		services.PUT("/:id", h.requireIdentity, h.services.Update)
		services.DELETE("/:id", h.requireIdentity, h.services.Delete)
	}
}
