package handlers

import (
	"log"
	"net/http"

	request "shajghor/internal/adapter/http/dto/request"
	response "shajghor/internal/adapter/http/dto/response"
	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceHandler(uc usecase.IServiceCatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// Create adds a service on behalf of a decorator or admin.
//
// @Summary   Add a service
// @Tags      services
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.ServiceRequest  true  "Service"
// @Success   201   {object}  response.InsertResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Router    /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	caller := middleware.IdentityFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), caller, payload.ToInput())
	if err != nil {
		log.Printf("[service][handler] create failed caller=%s err=%v", caller.Email, err)
		writeError(c, err)
		return
	}
	log.Printf("[service][handler] create success id=%s", created.ID)
	c.JSON(http.StatusCreated, response.Inserted(created.ID))
}

// List returns the catalog. Inactive services are only listed for admins.
//
// @Summary  List services
// @Tags     services
// @Produce  json
// @Success  200  {array}  entities.Service
// @Router   /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilServices(services))
}

// @Summary  Service details
// @Tags     services
// @Produce  json
// @Param    id   path      string  true  "Service id"
// @Success  200  {object}  entities.Service
// @Failure  404  {object}  pkg.HTTPError
// @Router   /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.usecase.Get(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary   Services added by a decorator
// @Tags      decorator
// @Produce   json
// @Security  Bearer
// @Param     email  query  string  true  "Decorator email"
// @Success   200    {array}  entities.Service
// @Router    /decorator/services [get]
func (h *ServiceHandler) ListByProvider(c *gin.Context) {
	services, err := h.usecase.ListByProvider(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilServices(services))
}

// @Summary   Replace a service
// @Tags      services
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                  true  "Service id"
// @Param     body  body      request.ServiceRequest  true  "Service"
// @Success   200   {object}  entities.Service
// @Router    /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	svc, err := h.usecase.Update(c.Request.Context(), middleware.IdentityFrom(c), id, payload.ToInput())
	if err != nil {
		log.Printf("[service][handler] update failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary   Delete a service
// @Tags      services
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Service id"
// @Success   200  {object}  response.DeleteResponse
// @Router    /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		log.Printf("[service][handler] delete failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Deleted())
}

func nonNilServices(services []entities.Service) []entities.Service {
	if services == nil {
		return []entities.Service{}
	}
	return services
}
