package routes

import "github.com/gin-gonic/gin"

const (
	PathUsers = "/users"
	PathJWT   = "/jwt"
)

func addAccountRoutes(rg *gin.RouterGroup, h handlerSet) {
	rg.POST(PathJWT, h.identity.IssueToken)

	users := rg.Group(PathUsers)
	{
		users.POST("", h.accounts.Signup)
		users.GET("/:email/role", h.accounts.GetRole)
		users.GET("/profile", h.requireIdentity, h.accounts.GetProfile)
		users.PATCH("/profile", h.requireIdentity, h.accounts.UpdateProfile)
	}
}
