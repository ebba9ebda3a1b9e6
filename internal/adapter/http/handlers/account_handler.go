package handlers

import (
	"log"
	"net/http"
	"strings"

	request "shajghor/internal/adapter/http/dto/request"
	response "shajghor/internal/adapter/http/dto/response"
	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for the account directory.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// Signup registers a new account. A repeated email is acknowledged with a
// message and a null insertedId.
//
// @Summary  Register an account
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      request.SignupRequest  true  "Account"
// @Success  200   {object}  response.InsertResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /users [post]
func (h *AccountHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Signup(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[account][handler] signup failed email=%s err=%v", payload.Email, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSignup(res))
}

// GetRole answers the role of an account. Unknown emails are 404.
//
// @Summary  Role of an account
// @Tags     users
// @Produce  json
// @Param    email  path      string  true  "Account email"
// @Success  200    {object}  response.RoleResponse
// @Failure  404    {object}  pkg.HTTPError
// @Router   /users/{email}/role [get]
func (h *AccountHandler) GetRole(c *gin.Context) {
	role, err := h.usecase.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RoleResponse{Role: string(role)})
}

// @Summary   Own profile
// @Tags      users
// @Produce   json
// @Security  Bearer
// @Param     email  query     string  true  "Account email"
// @Success   200    {object}  entities.Account
// @Router    /users/profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	acc, err := h.usecase.GetProfile(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// @Summary   Update own profile
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     email  query     string                        true  "Account email"
// @Param     body   body      request.ProfileUpdateRequest  true  "Fields to change"
// @Success   200    {object}  entities.Account
// @Router    /users/profile [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	email := c.Query("email")
	acc, err := h.usecase.UpdateProfile(c.Request.Context(), middleware.IdentityFrom(c), email, payload.ToUpdate())
	if err != nil {
		log.Printf("[account][handler] update profile failed email=%s err=%v", email, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// @Summary   List accounts
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {array}  entities.Account
// @Router    /admin/users [get]
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.usecase.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilAccounts(accounts))
}

// @Summary   List decorators
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {array}  entities.Account
// @Router    /admin/decorators [get]
func (h *AccountHandler) ListDecorators(c *gin.Context) {
	accounts, err := h.usecase.ListDecorators(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilAccounts(accounts))
}

// @Summary   Enable or disable an account
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     email  path      string                        true  "Account email"
// @Param     body   body      request.AccountStatusRequest  true  "active or disabled"
// @Success   200    {object}  entities.Account
// @Router    /admin/users/{email}/status [patch]
func (h *AccountHandler) UpdateStatus(c *gin.Context) {
	var payload request.AccountStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	email := c.Param("email")
	status := entities.AccountStatus(strings.TrimSpace(payload.Status))
	acc, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.IdentityFrom(c), email, status)
	if err != nil {
		log.Printf("[account][handler] update status failed email=%s status=%s err=%v", email, status, err)
		writeError(c, err)
		return
	}
	log.Printf("[account][handler] update status success email=%s status=%s", email, status)
	c.JSON(http.StatusOK, acc)
}

// @Summary   Change the role of an account
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     email  path      string                      true  "Account email"
// @Param     body   body      request.AccountRoleRequest  true  "user, decorator or admin"
// @Success   200    {object}  entities.Account
// @Router    /admin/users/{email}/role [patch]
func (h *AccountHandler) UpdateRole(c *gin.Context) {
	var payload request.AccountRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	email := c.Param("email")
	role := entities.Role(strings.TrimSpace(payload.Role))
	acc, err := h.usecase.UpdateRole(c.Request.Context(), middleware.IdentityFrom(c), email, role)
	if err != nil {
		log.Printf("[account][handler] update role failed email=%s role=%s err=%v", email, role, err)
		writeError(c, err)
		return
	}
	log.Printf("[account][handler] update role success email=%s role=%s", email, role)
	c.JSON(http.StatusOK, acc)
}

func nonNilAccounts(accounts []entities.Account) []entities.Account {
	if accounts == nil {
		return []entities.Account{}
	}
	return accounts
}
