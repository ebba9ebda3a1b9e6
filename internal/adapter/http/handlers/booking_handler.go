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

// BookingHandler handles HTTP requests for the booking lifecycle, including
// the payment success callback that marks a booking paid.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Create stores a booking in its initial state.
//
// @Summary  Create a booking
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body  body      request.BookingRequest  true  "Booking"
// @Success  201   {object}  response.InsertResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  500   {object}  pkg.HTTPError
// @Router   /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[booking][handler] invalid payload err=%v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	id, err := h.usecase.Create(c.Request.Context(), middleware.IdentityFrom(c), payload.ToInput())
	if err != nil {
		log.Printf("[booking][handler] create failed user=%s err=%v", payload.UserEmail, err)
		writeError(c, err)
		return
	}
	log.Printf("[booking][handler] create success id=%s", id)
	c.JSON(http.StatusCreated, response.Inserted(id))
}

// @Summary   Booking details
// @Tags      bookings
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Booking id"
// @Success   200  {object}  entities.Booking
// @Failure   404  {object}  pkg.HTTPError
// @Router    /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListForUser returns one page of the caller's bookings with the total count.
//
// @Summary   List own bookings
// @Tags      bookings
// @Produce   json
// @Security  Bearer
// @Param     email  query     string  true   "User email"
// @Param     page   query     int     false  "Page, from 1"
// @Param     size   query     int     false  "Page size"
// @Param     sort   query     string  false  "date, price or paymentStatus"
// @Success   200    {object}  entities.BookingPage
// @Router    /bookings [get]
func (h *BookingHandler) ListForUser(c *gin.Context) {
	var q request.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	page, err := h.usecase.ListForUser(c.Request.Context(), middleware.IdentityFrom(c), q.Email, q.ToQuery())
	if err != nil {
		writeError(c, err)
		return
	}
	if page.Result == nil {
		page.Result = []entities.Booking{}
	}
	c.JSON(http.StatusOK, page)
}

// @Summary   List all bookings
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {array}  entities.Booking
// @Router    /admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.usecase.ListAll(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilBookings(bookings))
}

// @Summary  Cancel a booking
// @Tags     bookings
// @Produce  json
// @Param    id   path      string  true  "Booking id"
// @Success  200  {object}  response.DeleteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Cancel(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		log.Printf("[booking][handler] cancel failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[booking][handler] cancel success id=%s", id)
	c.JSON(http.StatusOK, response.Deleted())
}

// AssignDecorator reads only decoratorEmail and status from the body.
//
// @Summary   Assign a decorator
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                     true  "Booking id"
// @Param     body  body      request.AssignmentRequest  true  "Assignment"
// @Success   200   {object}  entities.Booking
// @Router    /bookings/{id}/assign [patch]
func (h *BookingHandler) AssignDecorator(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	b, err := h.usecase.AssignDecorator(c.Request.Context(), middleware.IdentityFrom(c), id, payload.ToAssignment())
	if err != nil {
		log.Printf("[booking][handler] assign failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[booking][handler] assign success id=%s decorator=%s", id, payload.DecoratorEmail)
	c.JSON(http.StatusOK, b)
}

// @Summary   Bookings assigned to a decorator
// @Tags      decorator
// @Produce   json
// @Security  Bearer
// @Param     email  query  string  true  "Decorator email"
// @Success   200    {array}  entities.Booking
// @Router    /decorator/bookings [get]
func (h *BookingHandler) ListAssigned(c *gin.Context) {
	bookings, err := h.usecase.ListAssigned(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilBookings(bookings))
}

// @Summary   Report decorator progress
// @Tags      decorator
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id    path      string                          true  "Booking id"
// @Param     body  body      request.DecoratorStatusRequest  true  "Progress"
// @Success   200   {object}  entities.Booking
// @Router    /bookings/{id}/decorator-status [patch]
func (h *BookingHandler) UpdateDecoratorStatus(c *gin.Context) {
	var payload request.DecoratorStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	status := payload.ResolveStatus()
	b, err := h.usecase.UpdateDecoratorStatus(c.Request.Context(), middleware.IdentityFrom(c), id, status)
	if err != nil {
		log.Printf("[booking][handler] decorator status failed id=%s status=%s err=%v", id, status, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary   Today's schedule for a decorator
// @Tags      decorator
// @Produce   json
// @Security  Bearer
// @Param     email  query  string  true  "Decorator email"
// @Success   200    {array}  entities.Booking
// @Router    /decorator/today [get]
func (h *BookingHandler) TodaySchedule(c *gin.Context) {
	bookings, err := h.usecase.TodaySchedule(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilBookings(bookings))
}

// MarkPaid is the checkout success callback. Repeating it is harmless.
//
// @Summary  Mark a booking paid
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Booking id"
// @Success  200  {object}  entities.Booking
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payments/{id}/success [patch]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id := c.Param("id")
	b, err := h.usecase.MarkPaid(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		log.Printf("[payment][handler] mark paid failed id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[payment][handler] mark paid success id=%s", id)
	c.JSON(http.StatusOK, b)
}

// @Summary   Paid bookings of a user
// @Tags      payments
// @Produce   json
// @Security  Bearer
// @Param     email  query  string  true  "User email"
// @Success   200    {array}  entities.Booking
// @Router    /payments/history [get]
func (h *BookingHandler) PaymentHistory(c *gin.Context) {
	bookings, err := h.usecase.PaymentHistory(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilBookings(bookings))
}

func nonNilBookings(bookings []entities.Booking) []entities.Booking {
	if bookings == nil {
		return []entities.Booking{}
	}
	return bookings
}
