package middleware

import (
	"log"
	"net/http"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
	"shajghor/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var (
	errMissingAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized Access first check", http.StatusUnauthorized)
	errInvalidAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized Access second check", http.StatusUnauthorized)
)

// RequireIdentity rejects requests without a valid bearer assertion.
func RequireIdentity(auth usecase.IIdentityUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			c.AbortWithStatusJSON(errMissingAuthorization.HTTPStatus, errMissingAuthorization.ToHTTPError())
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), bearerToken(header))
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidAuthorization.HTTPStatus, errInvalidAuthorization.ToHTTPError())
			return
		}

		SetIdentity(c, id)
		c.Next()
	}
}

// OptionalIdentity attaches an identity when a valid assertion is presented
// and lets the request through as anonymous otherwise.
func OptionalIdentity(auth usecase.IIdentityUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) != "" {
			if id, err := auth.Authenticate(c.Request.Context(), bearerToken(header)); err == nil {
				SetIdentity(c, id)
			}
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, id entities.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller attached by one of the middlewares, or the
// anonymous identity.
func IdentityFrom(c *gin.Context) entities.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}
	}
	id, _ := v.(entities.Identity)
	return id
}

// bearerToken takes the second space-separated field of the header.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
