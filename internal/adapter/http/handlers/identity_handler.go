package handlers

import (
	"log"
	"net/http"
	"strings"

	request "shajghor/internal/adapter/http/dto/request"
	response "shajghor/internal/adapter/http/dto/response"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
)

// IdentityHandler issues identity assertions.
type IdentityHandler struct {
	usecase usecase.IIdentityUseCase
}

func NewIdentityHandler(uc usecase.IIdentityUseCase) *IdentityHandler {
	return &IdentityHandler{usecase: uc}
}

// IssueToken signs a token for the given email. Disabled accounts get 403.
//
// @Summary  Issue an identity token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      request.TokenRequest  true  "Email"
// @Success  200   {object}  response.TokenResponse
// @Failure  403   {object}  pkg.HTTPError
// @Router   /jwt [post]
func (h *IdentityHandler) IssueToken(c *gin.Context) {
	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Email) == "" {
		writeAppError(c, errInvalidPayload)
		return
	}

	token, _, err := h.usecase.IssueToken(c.Request.Context(), strings.TrimSpace(payload.Email))
	if err != nil {
		log.Printf("[auth][handler] issue failed email=%s err=%v", payload.Email, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// Ping godoc
//
// @Summary  Liveness check
// @Tags     ops
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}
